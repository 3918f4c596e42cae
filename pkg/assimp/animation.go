package assimp

/*
#include <assimp/scene.h>
*/
import "C"

import "unsafe"

// AnimBehaviour defines how an animation channel behaves outside its
// defined key range. The values match aiAnimBehaviour.
type AnimBehaviour uint32

const (
	AnimBehaviourDefault  AnimBehaviour = 0x0
	AnimBehaviourConstant AnimBehaviour = 0x1
	AnimBehaviourLinear   AnimBehaviour = 0x2
	AnimBehaviourRepeat   AnimBehaviour = 0x3
)

// VectorKey is one position or scaling key of a node channel.
type VectorKey C.struct_aiVectorKey

// Time returns the key time in ticks.
func (k *VectorKey) Time() float64 { return float64(k.mTime) }

// Value returns the key value.
func (k *VectorKey) Value() Vector3 {
	return Vector3{X: float32(k.mValue.x), Y: float32(k.mValue.y), Z: float32(k.mValue.z)}
}

// QuatKey is one rotation key of a node channel.
type QuatKey C.struct_aiQuatKey

// Time returns the key time in ticks.
func (k *QuatKey) Time() float64 { return float64(k.mTime) }

// Value returns the key rotation.
func (k *QuatKey) Value() Quaternion {
	return Quaternion{
		W: float32(k.mValue.w),
		X: float32(k.mValue.x),
		Y: float32(k.mValue.y),
		Z: float32(k.mValue.z),
	}
}

// MeshKey binds an anim-mesh attachment to a point in time.
type MeshKey C.struct_aiMeshKey

// Time returns the key time in ticks.
func (k *MeshKey) Time() float64 { return float64(k.mTime) }

// Index returns the index of the referenced anim mesh.
func (k *MeshKey) Index() uint32 { return uint32(k.mValue) }

// NodeAnim animates a single node with separate position, rotation and
// scaling key tracks.
type NodeAnim C.struct_aiNodeAnim

// NodeName returns the name of the node affected by this channel.
func (na *NodeAnim) NodeName() string { return goString(&na.mNodeName) }

// NumPositionKeys returns the number of position keys.
func (na *NodeAnim) NumPositionKeys() uint32 { return uint32(na.mNumPositionKeys) }

// PositionKeys returns the position key track, or nil if empty.
func (na *NodeAnim) PositionKeys() []VectorKey {
	return span[VectorKey](unsafe.Pointer(na.mPositionKeys), uint32(na.mNumPositionKeys))
}

// NumRotationKeys returns the number of rotation keys.
func (na *NodeAnim) NumRotationKeys() uint32 { return uint32(na.mNumRotationKeys) }

// RotationKeys returns the rotation key track, or nil if empty.
func (na *NodeAnim) RotationKeys() []QuatKey {
	return span[QuatKey](unsafe.Pointer(na.mRotationKeys), uint32(na.mNumRotationKeys))
}

// NumScalingKeys returns the number of scaling keys.
func (na *NodeAnim) NumScalingKeys() uint32 { return uint32(na.mNumScalingKeys) }

// ScalingKeys returns the scaling key track, or nil if empty.
func (na *NodeAnim) ScalingKeys() []VectorKey {
	return span[VectorKey](unsafe.Pointer(na.mScalingKeys), uint32(na.mNumScalingKeys))
}

// PreState returns the behaviour before the first key.
func (na *NodeAnim) PreState() AnimBehaviour { return AnimBehaviour(na.mPreState) }

// PostState returns the behaviour after the last key.
func (na *NodeAnim) PostState() AnimBehaviour { return AnimBehaviour(na.mPostState) }

// MeshAnim animates vertex data by switching between anim-mesh
// attachments of a mesh.
type MeshAnim C.struct_aiMeshAnim

// Name returns the name of the mesh affected by this channel.
func (ma *MeshAnim) Name() string { return goString(&ma.mName) }

// NumKeys returns the number of attachment keys.
func (ma *MeshAnim) NumKeys() uint32 { return uint32(ma.mNumKeys) }

// Keys returns the attachment key track, or nil if empty.
func (ma *MeshAnim) Keys() []MeshKey {
	return span[MeshKey](unsafe.Pointer(ma.mKeys), uint32(ma.mNumKeys))
}

// Animation groups the node and mesh channels of one named animation.
type Animation C.struct_aiAnimation

// Name returns the animation name, or "" if the format has no names.
func (a *Animation) Name() string { return goString(&a.mName) }

// Duration returns the animation length in ticks.
func (a *Animation) Duration() float64 { return float64(a.mDuration) }

// TicksPerSecond returns the playback rate, or 0 if unspecified.
func (a *Animation) TicksPerSecond() float64 { return float64(a.mTicksPerSecond) }

// NumChannels returns the number of node channels.
func (a *Animation) NumChannels() uint32 { return uint32(a.mNumChannels) }

// Channels returns the node animation channels, or nil if empty.
func (a *Animation) Channels() []*NodeAnim {
	return refSpan[NodeAnim](unsafe.Pointer(a.mChannels), uint32(a.mNumChannels))
}

// NumMeshChannels returns the number of mesh channels.
func (a *Animation) NumMeshChannels() uint32 { return uint32(a.mNumMeshChannels) }

// MeshChannels returns the mesh animation channels, or nil if empty.
func (a *Animation) MeshChannels() []*MeshAnim {
	return refSpan[MeshAnim](unsafe.Pointer(a.mMeshChannels), uint32(a.mNumMeshChannels))
}
