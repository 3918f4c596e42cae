// Package assimp is a cgo binding for the Open Asset Import Library.
//
// The native library does all the heavy lifting: it parses several dozen
// 3D file formats, builds a scene graph and optionally runs post-processing
// steps (triangulation, normal generation, mesh optimization, ...). This
// package only mirrors the C data structures, manages the lifetime of the
// two native handles (the import property store and the imported scene) and
// exposes read-only slice views over foreign-owned arrays without copying.
//
// All cgo code lives in this package; no other package in the repository
// imports "C". The native library is not thread-safe with respect to its
// global error state, and this binding does not add locking: use one
// Importer per goroutine and query ErrorString right after a failed call.
package assimp

/*
#cgo pkg-config: assimp

#include <stdlib.h>
#include <assimp/cimport.h>
#include <assimp/scene.h>
#include <assimp/version.h>
*/
import "C"

import "unsafe"

// Version returns the native library version as (major, minor, revision).
func Version() (major, minor, revision uint) {
	return uint(C.aiGetVersionMajor()),
		uint(C.aiGetVersionMinor()),
		uint(C.aiGetVersionRevision())
}

// BranchName returns the source branch the native library was built from,
// e.g. "master".
func BranchName() string {
	return C.GoString(C.aiGetBranchName())
}

// LegalString returns the license/legal text embedded in the native library.
func LegalString() string {
	return C.GoString(C.aiGetLegalString())
}

// CompileFlags describes how the native library was built.
type CompileFlags uint32

const (
	CompileFlagShared         CompileFlags = 0x1 // built as a shared object / DLL
	CompileFlagSTLport        CompileFlags = 0x2
	CompileFlagDebug          CompileFlags = 0x4
	CompileFlagNoBoost        CompileFlags = 0x8
	CompileFlagSingleThreaded CompileFlags = 0x10
)

// GetCompileFlags returns the native library's compile-time flags.
func GetCompileFlags() CompileFlags {
	return CompileFlags(C.aiGetCompileFlags())
}

// ExtensionList returns the supported file extensions in the native
// semicolon-separated form, e.g. "*.3ds;*.obj;*.dae".
func ExtensionList() string {
	var s C.struct_aiString
	C.aiGetExtensionList(&s)
	return goString(&s)
}

// IsExtensionSupported reports whether the native library has an importer
// registered for the given extension. The extension must include the
// leading dot, e.g. ".obj".
func IsExtensionSupported(ext string) bool {
	cext := C.CString(ext)
	defer C.free(unsafe.Pointer(cext))
	return C.aiIsExtensionSupported(cext) != 0
}

// ErrorString returns the native library's diagnostic for the last failed
// import or post-processing call, or "" if there was none.
//
// The underlying state is process-global and mutated by every import; the
// result is only meaningful immediately after a failed call and is never
// cached by this binding.
func ErrorString() string {
	cs := C.aiGetErrorString()
	if cs == nil {
		return ""
	}
	return C.GoString(cs)
}

// goString converts a native length-prefixed aiString to a Go string.
func goString(s *C.struct_aiString) string {
	if s == nil || s.length == 0 {
		return ""
	}
	return C.GoStringN(&s.data[0], C.int(s.length))
}

// setAiString fills a native aiString from a Go string, truncating to the
// fixed native buffer size if necessary.
func setAiString(dst *C.struct_aiString, s string) {
	n := len(s)
	if n > len(dst.data)-1 {
		n = len(dst.data) - 1
	}
	for i := 0; i < n; i++ {
		dst.data[i] = C.char(s[i])
	}
	dst.data[n] = 0
	dst.length = C.ai_uint32(n)
}
