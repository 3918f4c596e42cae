package assimp

/*
#include <assimp/scene.h>
*/
import "C"

// Camera is a non-owning view of one camera. All vectors are relative
// to the coordinate space of the scene node carrying the camera's name.
type Camera C.struct_aiCamera

// Name returns the camera name, matching a node in the scene graph.
func (c *Camera) Name() string { return goString(&c.mName) }

// Position returns the camera position in local space.
func (c *Camera) Position() Vector3 {
	return Vector3{X: float32(c.mPosition.x), Y: float32(c.mPosition.y), Z: float32(c.mPosition.z)}
}

// Up returns the up vector in local space.
func (c *Camera) Up() Vector3 {
	return Vector3{X: float32(c.mUp.x), Y: float32(c.mUp.y), Z: float32(c.mUp.z)}
}

// LookAt returns the viewing direction in local space.
func (c *Camera) LookAt() Vector3 {
	return Vector3{X: float32(c.mLookAt.x), Y: float32(c.mLookAt.y), Z: float32(c.mLookAt.z)}
}

// HorizontalFOV returns half the horizontal field of view in radians.
func (c *Camera) HorizontalFOV() float32 { return float32(c.mHorizontalFOV) }

// ClipPlaneNear returns the near clip plane distance.
func (c *Camera) ClipPlaneNear() float32 { return float32(c.mClipPlaneNear) }

// ClipPlaneFar returns the far clip plane distance.
func (c *Camera) ClipPlaneFar() float32 { return float32(c.mClipPlaneFar) }

// Aspect returns the screen aspect ratio, or 0 if unknown.
func (c *Camera) Aspect() float32 { return float32(c.mAspect) }
