package assimp

/*
#include <assimp/scene.h>
*/
import "C"

import "unsafe"

// Texel is one BGRA pixel of an uncompressed embedded texture.
type Texel struct {
	B, G, R, A uint8
}

// Texture is a non-owning view of one embedded texture. A texture is
// either uncompressed (Height > 0, pixel data through Data) or a
// compressed image file kept verbatim in memory (Height == 0, bytes
// through CompressedData, format named by FormatHint).
type Texture C.struct_aiTexture

// Width returns the width in pixels, or the compressed data size in
// bytes when Height is zero.
func (t *Texture) Width() uint32 { return uint32(t.mWidth) }

// Height returns the height in pixels, or zero for compressed textures.
func (t *Texture) Height() uint32 { return uint32(t.mHeight) }

// FormatHint names the compressed format ("jpg", "png", ...) or encodes
// the channel layout of uncompressed data.
func (t *Texture) FormatHint() string {
	return C.GoString(&t.achFormatHint[0])
}

// Filename returns the original path of the texture, if the importer
// preserved it.
func (t *Texture) Filename() string { return goString(&t.mFilename) }

// Data returns the uncompressed pixel data, or nil for compressed
// textures.
func (t *Texture) Data() []Texel {
	if t.mHeight == 0 {
		return nil
	}
	return span[Texel](unsafe.Pointer(t.pcData), uint32(t.mWidth)*uint32(t.mHeight))
}

// CompressedData returns the raw image file bytes, or nil for
// uncompressed textures.
func (t *Texture) CompressedData() []byte {
	if t.mHeight != 0 {
		return nil
	}
	return span[byte](unsafe.Pointer(t.pcData), uint32(t.mWidth))
}
