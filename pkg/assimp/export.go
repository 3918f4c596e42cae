package assimp

/*
#include <stdlib.h>
#include <assimp/cexport.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// ExportFormat describes one file format the native library can write.
type ExportFormat struct {
	// ID is the format identifier passed to Export, e.g. "objnomtl".
	ID string
	// Description is a human readable format name.
	Description string
	// FileExtension is the preferred extension, without the dot.
	FileExtension string
}

// ExportFormats lists every output format supported by the native
// library.
func ExportFormats() []ExportFormat {
	n := int(C.aiGetExportFormatCount())
	formats := make([]ExportFormat, 0, n)
	for i := 0; i < n; i++ {
		desc := C.aiGetExportFormatDescription(C.size_t(i))
		if desc == nil {
			continue
		}
		formats = append(formats, ExportFormat{
			ID:            C.GoString(desc.id),
			Description:   C.GoString(desc.description),
			FileExtension: C.GoString(desc.fileExtension),
		})
		C.aiReleaseExportFormatDescription(desc)
	}
	return formats
}

// Export writes the scene to path in the given format, optionally
// running additional post processing steps first. The scene itself is
// left untouched.
func (s *Scene) Export(formatID, path string, steps PostProcess) error {
	if err := s.err(); err != nil {
		return err
	}
	cformat := C.CString(formatID)
	defer C.free(unsafe.Pointer(cformat))
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	if C.aiExportScene(s.c, cformat, cpath, C.uint(steps)) != C.aiReturn_SUCCESS {
		return fmt.Errorf("export %q as %s: %s", path, formatID, ErrorString())
	}
	return nil
}

// ExportToBlob converts the scene to the given format in memory and
// returns the encoded bytes. Formats that produce multiple files (such
// as obj with a material library) return only the primary blob.
func (s *Scene) ExportToBlob(formatID string, steps PostProcess) ([]byte, error) {
	if err := s.err(); err != nil {
		return nil, err
	}
	cformat := C.CString(formatID)
	defer C.free(unsafe.Pointer(cformat))

	blob := C.aiExportSceneToBlob(s.c, cformat, C.uint(steps))
	if blob == nil {
		return nil, fmt.Errorf("export as %s: %s", formatID, ErrorString())
	}
	defer C.aiReleaseExportBlob(blob)

	return C.GoBytes(blob.data, C.int(blob.size)), nil
}
