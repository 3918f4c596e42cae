package assimp

/*
#include <assimp/scene.h>
*/
import "C"

// LightSourceType classifies a light source. The values match
// aiLightSourceType.
type LightSourceType uint32

const (
	LightSourceUndefined   LightSourceType = 0x0
	LightSourceDirectional LightSourceType = 0x1
	LightSourcePoint       LightSourceType = 0x2
	LightSourceSpot        LightSourceType = 0x3
	LightSourceAmbient     LightSourceType = 0x4
	LightSourceArea        LightSourceType = 0x5
)

// Light is a non-owning view of one light source. Position and
// direction are relative to the coordinate space of the scene node
// carrying the light's name.
type Light C.struct_aiLight

// Name returns the light name, matching a node in the scene graph.
func (l *Light) Name() string { return goString(&l.mName) }

// Type returns the kind of light source.
func (l *Light) Type() LightSourceType { return LightSourceType(l.mType) }

// Position returns the light position. Undefined for directional lights.
func (l *Light) Position() Vector3 {
	return Vector3{X: float32(l.mPosition.x), Y: float32(l.mPosition.y), Z: float32(l.mPosition.z)}
}

// Direction returns the light direction. Undefined for point lights.
func (l *Light) Direction() Vector3 {
	return Vector3{X: float32(l.mDirection.x), Y: float32(l.mDirection.y), Z: float32(l.mDirection.z)}
}

// Up returns the up vector of the light. Undefined for point lights.
func (l *Light) Up() Vector3 {
	return Vector3{X: float32(l.mUp.x), Y: float32(l.mUp.y), Z: float32(l.mUp.z)}
}

// AttenuationConstant returns the constant attenuation factor.
func (l *Light) AttenuationConstant() float32 { return float32(l.mAttenuationConstant) }

// AttenuationLinear returns the linear attenuation factor.
func (l *Light) AttenuationLinear() float32 { return float32(l.mAttenuationLinear) }

// AttenuationQuadratic returns the quadratic attenuation factor.
func (l *Light) AttenuationQuadratic() float32 { return float32(l.mAttenuationQuadratic) }

// ColorDiffuse returns the diffuse light color.
func (l *Light) ColorDiffuse() Color3 {
	return Color3{R: float32(l.mColorDiffuse.r), G: float32(l.mColorDiffuse.g), B: float32(l.mColorDiffuse.b)}
}

// ColorSpecular returns the specular light color.
func (l *Light) ColorSpecular() Color3 {
	return Color3{R: float32(l.mColorSpecular.r), G: float32(l.mColorSpecular.g), B: float32(l.mColorSpecular.b)}
}

// ColorAmbient returns the ambient light color.
func (l *Light) ColorAmbient() Color3 {
	return Color3{R: float32(l.mColorAmbient.r), G: float32(l.mColorAmbient.g), B: float32(l.mColorAmbient.b)}
}

// AngleInnerCone returns the inner cone angle in radians. 2*Pi for
// non-spot lights.
func (l *Light) AngleInnerCone() float32 { return float32(l.mAngleInnerCone) }

// AngleOuterCone returns the outer cone angle in radians. 2*Pi for
// non-spot lights.
func (l *Light) AngleOuterCone() float32 { return float32(l.mAngleOuterCone) }

// Size returns the extent of an area light.
func (l *Light) Size() Vector2 {
	return Vector2{X: float32(l.mSize.x), Y: float32(l.mSize.y)}
}
