package assimp

/*
#include <assimp/cimport.h>
#include <assimp/scene.h>
*/
import "C"

// The value types below mirror the native POD math structs field-for-field
// (all components are 32-bit floats in a default native build). Bulk vertex
// data is reinterpreted as slices of these types, so their layout must not
// be changed.

// Vector2 mirrors aiVector2D.
type Vector2 struct {
	X, Y float32
}

// Vector3 mirrors aiVector3D.
type Vector3 struct {
	X, Y, Z float32
}

// Color3 mirrors aiColor3D.
type Color3 struct {
	R, G, B float32
}

// Color4 mirrors aiColor4D.
type Color4 struct {
	R, G, B, A float32
}

// Quaternion mirrors aiQuaternion. Note the native w-first component order.
type Quaternion struct {
	W, X, Y, Z float32
}

// Matrix3x3 mirrors aiMatrix3x3 (row-major).
type Matrix3x3 struct {
	A1, A2, A3 float32
	B1, B2, B3 float32
	C1, C2, C3 float32
}

// Matrix4x4 mirrors aiMatrix4x4 (row-major).
type Matrix4x4 struct {
	A1, A2, A3, A4 float32
	B1, B2, B3, B4 float32
	C1, C2, C3, C4 float32
	D1, D2, D3, D4 float32
}

// Identity4x4 returns the identity matrix.
func Identity4x4() Matrix4x4 {
	return Matrix4x4{
		A1: 1, B2: 1, C3: 1, D4: 1,
	}
}

// Mul returns m * o (native row-major convention, applied right to left).
func (m Matrix4x4) Mul(o Matrix4x4) Matrix4x4 {
	return Matrix4x4{
		A1: m.A1*o.A1 + m.A2*o.B1 + m.A3*o.C1 + m.A4*o.D1,
		A2: m.A1*o.A2 + m.A2*o.B2 + m.A3*o.C2 + m.A4*o.D2,
		A3: m.A1*o.A3 + m.A2*o.B3 + m.A3*o.C3 + m.A4*o.D3,
		A4: m.A1*o.A4 + m.A2*o.B4 + m.A3*o.C4 + m.A4*o.D4,
		B1: m.B1*o.A1 + m.B2*o.B1 + m.B3*o.C1 + m.B4*o.D1,
		B2: m.B1*o.A2 + m.B2*o.B2 + m.B3*o.C2 + m.B4*o.D2,
		B3: m.B1*o.A3 + m.B2*o.B3 + m.B3*o.C3 + m.B4*o.D3,
		B4: m.B1*o.A4 + m.B2*o.B4 + m.B3*o.C4 + m.B4*o.D4,
		C1: m.C1*o.A1 + m.C2*o.B1 + m.C3*o.C1 + m.C4*o.D1,
		C2: m.C1*o.A2 + m.C2*o.B2 + m.C3*o.C2 + m.C4*o.D2,
		C3: m.C1*o.A3 + m.C2*o.B3 + m.C3*o.C3 + m.C4*o.D3,
		C4: m.C1*o.A4 + m.C2*o.B4 + m.C3*o.C4 + m.C4*o.D4,
		D1: m.D1*o.A1 + m.D2*o.B1 + m.D3*o.C1 + m.D4*o.D1,
		D2: m.D1*o.A2 + m.D2*o.B2 + m.D3*o.C2 + m.D4*o.D2,
		D3: m.D1*o.A3 + m.D2*o.B3 + m.D3*o.C3 + m.D4*o.D3,
		D4: m.D1*o.A4 + m.D2*o.B4 + m.D3*o.C4 + m.D4*o.D4,
	}
}

// TransformPoint applies the full affine transform to a point.
func (m Matrix4x4) TransformPoint(v Vector3) Vector3 {
	return Vector3{
		X: m.A1*v.X + m.A2*v.Y + m.A3*v.Z + m.A4,
		Y: m.B1*v.X + m.B2*v.Y + m.B3*v.Z + m.B4,
		Z: m.C1*v.X + m.C2*v.Y + m.C3*v.Z + m.C4,
	}
}

// TransformDirection applies the rotation/scale part of the transform,
// ignoring translation.
func (m Matrix4x4) TransformDirection(v Vector3) Vector3 {
	return Vector3{
		X: m.A1*v.X + m.A2*v.Y + m.A3*v.Z,
		Y: m.B1*v.X + m.B2*v.Y + m.B3*v.Z,
		Z: m.C1*v.X + m.C2*v.Y + m.C3*v.Z,
	}
}

// MemoryInfo holds the approximate storage used by an imported scene,
// in bytes per category. It mirrors aiMemoryInfo.
type MemoryInfo struct {
	Textures   uint32
	Materials  uint32
	Meshes     uint32
	Nodes      uint32
	Animations uint32
	Cameras    uint32
	Lights     uint32
	Total      uint32
}
