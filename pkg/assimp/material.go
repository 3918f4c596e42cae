package assimp

/*
#include <stdlib.h>
#include <assimp/scene.h>
#include <assimp/material.h>
*/
import "C"

import "unsafe"

// TextureType describes the purpose of a material texture. The values
// match aiTextureType.
type TextureType uint32

const (
	TextureTypeNone         TextureType = 0x0
	TextureTypeDiffuse      TextureType = 0x1
	TextureTypeSpecular     TextureType = 0x2
	TextureTypeAmbient      TextureType = 0x3
	TextureTypeEmissive     TextureType = 0x4
	TextureTypeHeight       TextureType = 0x5
	TextureTypeNormals      TextureType = 0x6
	TextureTypeShininess    TextureType = 0x7
	TextureTypeOpacity      TextureType = 0x8
	TextureTypeDisplacement TextureType = 0x9
	TextureTypeLightmap     TextureType = 0xA
	TextureTypeReflection   TextureType = 0xB
	TextureTypeUnknown      TextureType = 0xC
)

// TextureOp defines how the Nth texture of a type is combined with the
// result of the previous layers. The values match aiTextureOp.
type TextureOp uint32

const (
	TextureOpMultiply  TextureOp = 0x0
	TextureOpAdd       TextureOp = 0x1
	TextureOpSubtract  TextureOp = 0x2
	TextureOpDivide    TextureOp = 0x3
	TextureOpSmoothAdd TextureOp = 0x4
	TextureOpSignedAdd TextureOp = 0x5
)

// TextureMapMode defines how UV coordinates outside [0,1] are handled.
// The values match aiTextureMapMode.
type TextureMapMode uint32

const (
	TextureMapModeWrap   TextureMapMode = 0x0
	TextureMapModeClamp  TextureMapMode = 0x1
	TextureMapModeMirror TextureMapMode = 0x2
	TextureMapModeDecal  TextureMapMode = 0x3
)

// TextureMapping defines how mapping coordinates are generated. The
// values match aiTextureMapping.
type TextureMapping uint32

const (
	TextureMappingUV       TextureMapping = 0x0
	TextureMappingSphere   TextureMapping = 0x1
	TextureMappingCylinder TextureMapping = 0x2
	TextureMappingBox      TextureMapping = 0x3
	TextureMappingPlane    TextureMapping = 0x4
	TextureMappingOther    TextureMapping = 0x5
)

// ShadingMode is the shading model hint stored by loaders. The values
// match aiShadingMode.
type ShadingMode uint32

const (
	ShadingModeFlat         ShadingMode = 0x1
	ShadingModeGouraud      ShadingMode = 0x2
	ShadingModePhong        ShadingMode = 0x3
	ShadingModeBlinn        ShadingMode = 0x4
	ShadingModeToon         ShadingMode = 0x5
	ShadingModeOrenNayar    ShadingMode = 0x6
	ShadingModeMinnaert     ShadingMode = 0x7
	ShadingModeCookTorrance ShadingMode = 0x8
	ShadingModeNoShading    ShadingMode = 0x9
	ShadingModeFresnel      ShadingMode = 0xA
)

// BlendMode defines how a transparent material is blended over the
// framebuffer. The values match aiBlendMode.
type BlendMode uint32

const (
	BlendModeDefault  BlendMode = 0x0
	BlendModeAdditive BlendMode = 0x1
)

// MatKey names a material property. The constants cover the stock
// AI_MATKEY keys; texture-stack properties are reached through the
// Texture accessor instead.
type MatKey string

const (
	MatKeyName            MatKey = "?mat.name"
	MatKeyTwoSided        MatKey = "$mat.twosided"
	MatKeyShadingModel    MatKey = "$mat.shadingm"
	MatKeyEnableWireframe MatKey = "$mat.wireframe"
	MatKeyBlendFunc       MatKey = "$mat.blend"
	MatKeyOpacity         MatKey = "$mat.opacity"
	MatKeyBumpScaling     MatKey = "$mat.bumpscaling"
	MatKeyShininess       MatKey = "$mat.shininess"
	MatKeyReflectivity    MatKey = "$mat.reflectivity"
	MatKeyShininessStr    MatKey = "$mat.shinpercent"
	MatKeyRefractIndex    MatKey = "$mat.refracti"

	MatKeyColorDiffuse     MatKey = "$clr.diffuse"
	MatKeyColorAmbient     MatKey = "$clr.ambient"
	MatKeyColorSpecular    MatKey = "$clr.specular"
	MatKeyColorEmissive    MatKey = "$clr.emissive"
	MatKeyColorTransparent MatKey = "$clr.transparent"
	MatKeyColorReflective  MatKey = "$clr.reflective"
)

// Material is a non-owning view of one material: a bag of typed
// properties queried through the native lookup calls. Lookups return
// (value, true) when the property exists with a convertible type.
type Material C.struct_aiMaterial

func matKeyCString(key MatKey) *C.char {
	return C.CString(string(key))
}

// Color looks up a color property such as MatKeyColorDiffuse.
func (m *Material) Color(key MatKey) (Color4, bool) {
	ckey := matKeyCString(key)
	defer C.free(unsafe.Pointer(ckey))

	var out C.struct_aiColor4D
	if C.aiGetMaterialColor((*C.struct_aiMaterial)(m), ckey, 0, 0, &out) != C.aiReturn_SUCCESS {
		return Color4{}, false
	}
	return Color4{R: float32(out.r), G: float32(out.g), B: float32(out.b), A: float32(out.a)}, true
}

// Float looks up a scalar float property such as MatKeyOpacity.
func (m *Material) Float(key MatKey) (float32, bool) {
	ckey := matKeyCString(key)
	defer C.free(unsafe.Pointer(ckey))

	var out C.ai_real
	var n C.uint = 1
	if C.aiGetMaterialFloatArray((*C.struct_aiMaterial)(m), ckey, 0, 0, &out, &n) != C.aiReturn_SUCCESS {
		return 0, false
	}
	return float32(out), true
}

// Int looks up a scalar integer property such as MatKeyTwoSided.
func (m *Material) Int(key MatKey) (int32, bool) {
	ckey := matKeyCString(key)
	defer C.free(unsafe.Pointer(ckey))

	var out C.int
	var n C.uint = 1
	if C.aiGetMaterialIntegerArray((*C.struct_aiMaterial)(m), ckey, 0, 0, &out, &n) != C.aiReturn_SUCCESS {
		return 0, false
	}
	return int32(out), true
}

// String looks up a string property such as MatKeyName.
func (m *Material) String(key MatKey) (string, bool) {
	ckey := matKeyCString(key)
	defer C.free(unsafe.Pointer(ckey))

	var out C.struct_aiString
	if C.aiGetMaterialString((*C.struct_aiMaterial)(m), ckey, 0, 0, &out) != C.aiReturn_SUCCESS {
		return "", false
	}
	return goString(&out), true
}

// Name returns the material name, or "" if unnamed.
func (m *Material) Name() string {
	name, _ := m.String(MatKeyName)
	return name
}

// TextureCount returns the number of textures stacked for the given type.
func (m *Material) TextureCount(tt TextureType) int {
	return int(C.aiGetMaterialTextureCount((*C.struct_aiMaterial)(m), C.enum_aiTextureType(tt)))
}

// TextureInfo describes one entry of a material's texture stack. Path is
// either an external file reference or a "*<index>" reference to an
// embedded scene texture.
type TextureInfo struct {
	Path    string
	Mapping TextureMapping
	UVIndex uint32
	Blend   float32
	Op      TextureOp
	MapMode [2]TextureMapMode // u, v
	Flags   uint32
}

// Texture looks up the index-th texture of the given type, filling all
// related stack properties in one native call.
func (m *Material) Texture(tt TextureType, index int) (TextureInfo, bool) {
	var (
		path    C.struct_aiString
		mapping C.enum_aiTextureMapping
		uvindex C.uint
		blend   C.ai_real
		op      C.enum_aiTextureOp
		mapmode [2]C.enum_aiTextureMapMode
		flags   C.uint
	)
	ok := C.aiGetMaterialTexture(
		(*C.struct_aiMaterial)(m),
		C.enum_aiTextureType(tt),
		C.uint(index),
		&path,
		&mapping,
		&uvindex,
		&blend,
		&op,
		&mapmode[0],
		&flags,
	)
	if ok != C.aiReturn_SUCCESS {
		return TextureInfo{}, false
	}
	return TextureInfo{
		Path:    goString(&path),
		Mapping: TextureMapping(mapping),
		UVIndex: uint32(uvindex),
		Blend:   float32(blend),
		Op:      TextureOp(op),
		MapMode: [2]TextureMapMode{TextureMapMode(mapmode[0]), TextureMapMode(mapmode[1])},
		Flags:   uint32(flags),
	}, true
}
