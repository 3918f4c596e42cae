package assimp

/*
#include <stdlib.h>
#include <assimp/cimport.h>
#include <assimp/scene.h>
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

// ImportError is returned when the native library rejects a file. Message
// carries the native diagnostic captured right after the failed call.
type ImportError struct {
	Path    string
	Message string
}

func (e *ImportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("assimp: import failed: %s", e.Message)
	}
	return fmt.Sprintf("assimp: import %s: %s", e.Path, e.Message)
}

// Importer accumulates post-processing steps and typed import properties,
// then produces one Scene per read call.
//
// An Importer exclusively owns a native property store. It is movable but
// must not be copied; Close releases the store and is safe to call more
// than once. A finalizer backs up Close for importers that go out of scope
// without an explicit call, but relying on it delays the native release
// until the next garbage collection.
type Importer struct {
	store *C.struct_aiPropertyStore
	steps PostProcess
}

// NewImporter allocates a native property store with no accumulated
// post-processing steps. Allocation failure in the native library is not
// recoverable and panics.
func NewImporter() *Importer {
	store := C.aiCreatePropertyStore()
	if store == nil {
		panic("assimp: aiCreatePropertyStore returned NULL")
	}
	imp := &Importer{store: store}
	runtime.SetFinalizer(imp, (*Importer).Close)
	return imp
}

// Close releases the native property store. Subsequent reads fail;
// repeated calls are no-ops.
func (imp *Importer) Close() {
	if imp.store != nil {
		C.aiReleasePropertyStore(imp.store)
		imp.store = nil
	}
}

// AddProcessingSteps ORs the given steps into the accumulated flag word.
// Adding a step twice has no further effect.
func (imp *Importer) AddProcessingSteps(steps PostProcess) {
	imp.steps |= steps
}

// RemoveProcessingSteps clears the given steps from the accumulated flag
// word. Removing a step that was never added is a no-op.
func (imp *Importer) RemoveProcessingSteps(steps PostProcess) {
	imp.steps &^= steps
}

// ProcessingSteps returns the currently accumulated flag word.
func (imp *Importer) ProcessingSteps() PostProcess {
	return imp.steps
}

// SetProperty writes one typed import property into the owned store,
// dispatching to the native setter matching the property's primitive kind.
// The last write for a given key wins.
func (imp *Importer) SetProperty(p ImportProperty) {
	cname := C.CString(p.name)
	defer C.free(unsafe.Pointer(cname))

	switch p.kind {
	case propInt, propBool:
		C.aiSetImportPropertyInteger(imp.store, cname, C.int(p.i))
	case propFloat:
		C.aiSetImportPropertyFloat(imp.store, cname, C.ai_real(p.f))
	case propString:
		var s C.struct_aiString
		setAiString(&s, p.s)
		C.aiSetImportPropertyString(imp.store, cname, &s)
	default:
		panic(fmt.Sprintf("assimp: invalid import property %q", p.name))
	}
}

// SetProperties writes several properties in order.
func (imp *Importer) SetProperties(props ...ImportProperty) {
	for _, p := range props {
		imp.SetProperty(p)
	}
}

// ResetProperties discards all previously set properties by replacing the
// native store with a fresh one. Accumulated processing steps are tracked
// locally and unaffected.
func (imp *Importer) ResetProperties() {
	C.aiReleasePropertyStore(imp.store)
	imp.store = C.aiCreatePropertyStore()
	if imp.store == nil {
		panic("assimp: aiCreatePropertyStore returned NULL")
	}
}

// ReadFile imports the given file with the accumulated processing steps
// and properties. The returned Scene owns the native scene data; release
// it when done. On failure the returned *ImportError carries the native
// diagnostic.
//
// The call blocks until the native import completes; there is no
// cancellation and no internal retry.
func (imp *Importer) ReadFile(path string) (*Scene, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	raw := C.aiImportFileExWithProperties(cpath, C.uint(imp.steps), nil, imp.store)
	if raw == nil {
		return nil, &ImportError{Path: path, Message: ErrorString()}
	}
	return newScene(raw), nil
}

// ReadFileFromMemory imports a model from an in-memory buffer. hint may
// name the file extension (without dot) to steer loader selection; pass ""
// to let the native library probe the content. Formats that spread data
// across multiple files (OBJ+MTL, MD3 shaders, ...) resolve only the
// buffer itself.
func (imp *Importer) ReadFileFromMemory(data []byte, hint string) (*Scene, error) {
	if len(data) == 0 {
		return nil, &ImportError{Message: "empty buffer"}
	}
	chint := C.CString(hint)
	defer C.free(unsafe.Pointer(chint))

	raw := C.aiImportFileFromMemoryWithProperties(
		(*C.char)(unsafe.Pointer(&data[0])),
		C.uint(len(data)),
		C.uint(imp.steps),
		chint,
		imp.store,
	)
	if raw == nil {
		return nil, &ImportError{Message: ErrorString()}
	}
	return newScene(raw), nil
}
