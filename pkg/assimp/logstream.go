package assimp

/*
#include <stdlib.h>
#include <assimp/cimport.h>
*/
import "C"

import "unsafe"

// LogStream is an attached destination for the native library's own log
// output. Streams are process-global: once attached, every import from
// any Importer reports into them until detached.
type LogStream struct {
	c C.struct_aiLogStream
}

// LogStreamStdout returns a stream writing to standard output.
func LogStreamStdout() *LogStream {
	return &LogStream{c: C.aiGetPredefinedLogStream(C.aiDefaultLogStream_STDOUT, nil)}
}

// LogStreamStderr returns a stream writing to standard error.
func LogStreamStderr() *LogStream {
	return &LogStream{c: C.aiGetPredefinedLogStream(C.aiDefaultLogStream_STDERR, nil)}
}

// LogStreamFile returns a stream appending to the named file.
func LogStreamFile(path string) *LogStream {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return &LogStream{c: C.aiGetPredefinedLogStream(C.aiDefaultLogStream_FILE, cpath)}
}

// Attach registers the stream with the native logger.
func (ls *LogStream) Attach() {
	C.aiAttachLogStream(&ls.c)
}

// Detach removes the stream from the native logger. Returns false if
// the stream was not attached.
func (ls *LogStream) Detach() bool {
	return C.aiDetachLogStream(&ls.c) == C.aiReturn_SUCCESS
}

// DetachAllLogStreams removes every attached stream.
func DetachAllLogStreams() {
	C.aiDetachAllLogStreams()
}

// EnableVerboseLogging switches the native logger between normal and
// debug verbosity for all attached streams.
func EnableVerboseLogging(enable bool) {
	v := C.aiBool(C.AI_FALSE)
	if enable {
		v = C.aiBool(C.AI_TRUE)
	}
	C.aiEnableVerboseLogging(v)
}
