package assimp

/*
#include <assimp/scene.h>
*/
import "C"

import "unsafe"

// MaxColorSets is the number of vertex color channels a mesh can carry.
const MaxColorSets = 8

// MaxTextureCoords is the number of UV(W) channels a mesh can carry.
const MaxTextureCoords = 8

// PrimitiveType is a bitmask of the geometric primitive kinds present in
// a mesh. The values match aiPrimitiveType.
type PrimitiveType uint32

const (
	PrimitiveTypePoint    PrimitiveType = 0x1
	PrimitiveTypeLine     PrimitiveType = 0x2
	PrimitiveTypeTriangle PrimitiveType = 0x4
	PrimitiveTypePolygon  PrimitiveType = 0x8
)

// Face is one primitive of a mesh, referring to vertices by index. With
// ProcessTriangulate enabled every face has exactly three indices.
type Face C.struct_aiFace

// NumIndices returns the number of vertex indices in the face.
func (f *Face) NumIndices() uint32 { return uint32(f.mNumIndices) }

// Indices returns a borrowed view over the face's vertex indices.
func (f *Face) Indices() []uint32 {
	return span[uint32](unsafe.Pointer(f.mIndices), uint32(f.mNumIndices))
}

// VertexWeight mirrors aiVertexWeight: one bone influence on one vertex.
type VertexWeight struct {
	VertexID uint32
	Weight   float32
}

// Bone is a non-owning view of one mesh bone.
type Bone C.struct_aiBone

// Name returns the bone name, matching a node in the hierarchy.
func (b *Bone) Name() string { return goString(&b.mName) }

// Weights returns a borrowed view over the vertices this bone influences.
func (b *Bone) Weights() []VertexWeight {
	return span[VertexWeight](unsafe.Pointer(b.mWeights), uint32(b.mNumWeights))
}

// OffsetMatrix returns the matrix transforming from mesh space to bone
// space in bind pose.
func (b *Bone) OffsetMatrix() Matrix4x4 {
	return *(*Matrix4x4)(unsafe.Pointer(&b.mOffsetMatrix))
}

// Mesh is a non-owning view of one mesh: a geometry with a single
// material. Per-vertex data comes in parallel channels that are all
// NumVertices long when present. All slice accessors are O(1)
// reinterpretations of foreign arrays; they borrow from the owning Scene.
type Mesh C.struct_aiMesh

// Name returns the mesh name; may be empty.
func (m *Mesh) Name() string { return goString(&m.mName) }

// PrimitiveTypes returns the bitmask of primitive kinds in the mesh.
func (m *Mesh) PrimitiveTypes() PrimitiveType { return PrimitiveType(m.mPrimitiveTypes) }

// NumVertices returns the length of every present per-vertex channel.
func (m *Mesh) NumVertices() uint32 { return uint32(m.mNumVertices) }

// NumFaces returns the number of primitives in the mesh.
func (m *Mesh) NumFaces() uint32 { return uint32(m.mNumFaces) }

// Vertices returns the vertex positions. Always present unless the scene
// carries SceneFlagIncomplete.
func (m *Mesh) Vertices() []Vector3 {
	return span[Vector3](unsafe.Pointer(m.mVertices), uint32(m.mNumVertices))
}

// Normals returns the vertex normals, or nil if absent.
func (m *Mesh) Normals() []Vector3 {
	return span[Vector3](unsafe.Pointer(m.mNormals), uint32(m.mNumVertices))
}

// HasNormals reports whether the mesh carries a normal channel.
func (m *Mesh) HasNormals() bool { return m.mNormals != nil }

// Tangents returns the vertex tangents, or nil if absent. A mesh with
// tangents always carries bitangents as well.
func (m *Mesh) Tangents() []Vector3 {
	return span[Vector3](unsafe.Pointer(m.mTangents), uint32(m.mNumVertices))
}

// Bitangents returns the vertex bitangents, or nil if absent.
func (m *Mesh) Bitangents() []Vector3 {
	return span[Vector3](unsafe.Pointer(m.mBitangents), uint32(m.mNumVertices))
}

// Colors returns the vertex colors of the given set (0..MaxColorSets-1),
// or nil if that set is absent.
func (m *Mesh) Colors(set int) []Color4 {
	if set < 0 || set >= MaxColorSets {
		return nil
	}
	return span[Color4](unsafe.Pointer(m.mColors[set]), uint32(m.mNumVertices))
}

// TextureCoords returns the coordinates of the given UV channel
// (0..MaxTextureCoords-1), or nil if that channel is absent. Components
// beyond NumUVComponents(channel) are zero.
func (m *Mesh) TextureCoords(channel int) []Vector3 {
	if channel < 0 || channel >= MaxTextureCoords {
		return nil
	}
	return span[Vector3](unsafe.Pointer(m.mTextureCoords[channel]), uint32(m.mNumVertices))
}

// NumUVComponents returns how many components (1, 2 or 3) the given UV
// channel uses.
func (m *Mesh) NumUVComponents(channel int) uint32 {
	if channel < 0 || channel >= MaxTextureCoords {
		return 0
	}
	return uint32(m.mNumUVComponents[channel])
}

// Faces returns a borrowed view over the mesh's primitives.
func (m *Mesh) Faces() []Face {
	return span[Face](unsafe.Pointer(m.mFaces), uint32(m.mNumFaces))
}

// NumBones returns the number of bones influencing the mesh.
func (m *Mesh) NumBones() uint32 { return uint32(m.mNumBones) }

// Bones returns a borrowed view over the mesh's bones.
func (m *Mesh) Bones() []*Bone {
	return refSpan[Bone](unsafe.Pointer(m.mBones), uint32(m.mNumBones))
}

// MaterialIndex returns the index of the mesh's material in the scene's
// material array.
func (m *Mesh) MaterialIndex() uint32 { return uint32(m.mMaterialIndex) }

// AnimMeshes returns the mesh's attachment meshes (morph targets), or
// nil if there are none.
func (m *Mesh) AnimMeshes() []*AnimMesh {
	return refSpan[AnimMesh](unsafe.Pointer(m.mAnimMeshes), uint32(m.mNumAnimMeshes))
}

// AnimMesh is a non-owning view of an attachment mesh: a replacement
// set of per-vertex channels used for vertex-based animation. Channels
// that are nil fall back to the host mesh's data.
type AnimMesh C.struct_aiAnimMesh

// Name returns the attachment mesh name; may be empty.
func (am *AnimMesh) Name() string { return goString(&am.mName) }

// NumVertices returns the length of every present replacement channel.
// It always matches the host mesh's vertex count.
func (am *AnimMesh) NumVertices() uint32 { return uint32(am.mNumVertices) }

// Vertices returns the replacement positions, or nil if absent.
func (am *AnimMesh) Vertices() []Vector3 {
	return span[Vector3](unsafe.Pointer(am.mVertices), uint32(am.mNumVertices))
}

// Normals returns the replacement normals, or nil if absent.
func (am *AnimMesh) Normals() []Vector3 {
	return span[Vector3](unsafe.Pointer(am.mNormals), uint32(am.mNumVertices))
}

// Tangents returns the replacement tangents, or nil if absent.
func (am *AnimMesh) Tangents() []Vector3 {
	return span[Vector3](unsafe.Pointer(am.mTangents), uint32(am.mNumVertices))
}

// Bitangents returns the replacement bitangents, or nil if absent.
func (am *AnimMesh) Bitangents() []Vector3 {
	return span[Vector3](unsafe.Pointer(am.mBitangents), uint32(am.mNumVertices))
}

// Colors returns the replacement colors of the given set, or nil.
func (am *AnimMesh) Colors(set int) []Color4 {
	if set < 0 || set >= MaxColorSets {
		return nil
	}
	return span[Color4](unsafe.Pointer(am.mColors[set]), uint32(am.mNumVertices))
}

// TextureCoords returns the replacement coordinates of the given UV
// channel, or nil.
func (am *AnimMesh) TextureCoords(channel int) []Vector3 {
	if channel < 0 || channel >= MaxTextureCoords {
		return nil
	}
	return span[Vector3](unsafe.Pointer(am.mTextureCoords[channel]), uint32(am.mNumVertices))
}

// Weight returns the attachment mesh's blend weight.
func (am *AnimMesh) Weight() float32 { return float32(am.mWeight) }
