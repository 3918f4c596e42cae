// Package viewer flattens imported scenes into GL-uploadable models and
// renders them.
package viewer

import (
	"fmt"

	"github.com/Faultbox/go-assimp/pkg/assimp"
	"github.com/Faultbox/go-assimp/pkg/math"
)

// Vertex is one interleaved viewer vertex: world-space position and
// normal. The layout is uploaded verbatim to the GPU.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Batch is a contiguous index range drawn with one material.
type Batch struct {
	FirstIndex int
	IndexCount int
	Diffuse    [4]float32
	Name       string
}

// Model is a scene flattened into a single vertex and index array with
// per-material draw batches. Node transforms are baked into the vertex
// positions, so no hierarchy survives the conversion.
type Model struct {
	Vertices []Vertex
	Indices  []uint32
	Batches  []Batch

	BoundsMin math.Vec3
	BoundsMax math.Vec3
}

// TriangleCount returns the total number of triangles across batches.
func (m *Model) TriangleCount() int {
	return len(m.Indices) / 3
}

// BuildModel flattens a triangulated scene. Faces that are not
// triangles are skipped, so import with triangulation enabled.
func BuildModel(scene *assimp.Scene) (*Model, error) {
	root, err := scene.RootNode()
	if err != nil {
		return nil, err
	}
	meshes, err := scene.Meshes()
	if err != nil {
		return nil, err
	}
	materials, err := scene.Materials()
	if err != nil {
		return nil, err
	}

	m := &Model{
		BoundsMin: math.Vec3{X: 1e30, Y: 1e30, Z: 1e30},
		BoundsMax: math.Vec3{X: -1e30, Y: -1e30, Z: -1e30},
	}

	// Indices are gathered per material first, then laid out as one
	// contiguous array so each material is a single draw call.
	perMaterial := make([][]uint32, len(materials))

	var walk func(n *assimp.Node, parent math.Mat4)
	walk = func(n *assimp.Node, parent math.Mat4) {
		world := parent.Mul(nodeTransform(n))

		for _, mi := range n.MeshIndices() {
			mesh := meshes[mi]
			base := uint32(len(m.Vertices))

			positions := mesh.Vertices()
			normals := mesh.Normals()
			for i, p := range positions {
				pos := world.TransformVec3(math.Vec3{X: p.X, Y: p.Y, Z: p.Z})

				var nrm math.Vec3
				if normals != nil {
					nv := normals[i]
					nrm = world.TransformDirection(math.Vec3{X: nv.X, Y: nv.Y, Z: nv.Z}).Normalize()
				}

				m.Vertices = append(m.Vertices, Vertex{Position: pos, Normal: nrm})
				m.BoundsMin = m.BoundsMin.Min(pos)
				m.BoundsMax = m.BoundsMax.Max(pos)
			}

			mat := int(mesh.MaterialIndex())
			for _, face := range mesh.Faces() {
				idx := face.Indices()
				if len(idx) != 3 {
					continue
				}
				perMaterial[mat] = append(perMaterial[mat],
					base+idx[0], base+idx[1], base+idx[2])
			}
		}

		for _, child := range n.Children() {
			walk(child, world)
		}
	}
	walk(root, math.Identity())

	for mi, indices := range perMaterial {
		if len(indices) == 0 {
			continue
		}
		m.Batches = append(m.Batches, Batch{
			FirstIndex: len(m.Indices),
			IndexCount: len(indices),
			Diffuse:    materialDiffuse(materials[mi]),
			Name:       materials[mi].Name(),
		})
		m.Indices = append(m.Indices, indices...)
	}

	if len(m.Indices) == 0 {
		return nil, fmt.Errorf("scene has no renderable triangles")
	}
	return m, nil
}

// nodeTransform converts a node's row-major transform to the
// column-major convention used by the GL math package.
func nodeTransform(n *assimp.Node) math.Mat4 {
	t := n.Transformation()
	return math.Mat4{
		t.A1, t.B1, t.C1, t.D1,
		t.A2, t.B2, t.C2, t.D2,
		t.A3, t.B3, t.C3, t.D3,
		t.A4, t.B4, t.C4, t.D4,
	}
}

func materialDiffuse(mat *assimp.Material) [4]float32 {
	alpha := float32(1)
	if op, ok := mat.Float(assimp.MatKeyOpacity); ok && op > 0 {
		alpha = op
	}
	if c, ok := mat.Color(assimp.MatKeyColorDiffuse); ok {
		return [4]float32{c.R, c.G, c.B, alpha}
	}
	return [4]float32{0.6, 0.6, 0.6, alpha}
}
