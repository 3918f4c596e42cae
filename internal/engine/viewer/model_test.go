package viewer

import (
	"testing"

	"github.com/Faultbox/go-assimp/pkg/assimp"
)

const triangleOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func importTriangle(t *testing.T) *assimp.Scene {
	t.Helper()
	imp := assimp.NewImporter()
	defer imp.Close()
	imp.AddProcessingSteps(assimp.ProcessTriangulate | assimp.ProcessGenSmoothNormals)

	scene, err := imp.ReadFileFromMemory([]byte(triangleOBJ), "obj")
	if err != nil {
		t.Fatalf("import fixture: %v", err)
	}
	return scene
}

func TestBuildModel(t *testing.T) {
	scene := importTriangle(t)
	defer scene.Release()

	model, err := BuildModel(scene)
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}

	if got := len(model.Vertices); got != 3 {
		t.Errorf("len(Vertices) = %d, want 3", got)
	}
	if got := len(model.Indices); got != 3 {
		t.Errorf("len(Indices) = %d, want 3", got)
	}
	if got := model.TriangleCount(); got != 1 {
		t.Errorf("TriangleCount = %d, want 1", got)
	}
	if got := len(model.Batches); got != 1 {
		t.Fatalf("len(Batches) = %d, want 1", got)
	}

	b := model.Batches[0]
	if b.FirstIndex != 0 || b.IndexCount != 3 {
		t.Errorf("batch range = (%d, %d), want (0, 3)", b.FirstIndex, b.IndexCount)
	}
	if b.Diffuse[3] == 0 {
		t.Errorf("batch alpha = 0, want opaque")
	}

	// The fixture triangle spans the unit square corner.
	if model.BoundsMin.X != 0 || model.BoundsMin.Y != 0 {
		t.Errorf("BoundsMin = %v, want origin", model.BoundsMin)
	}
	if model.BoundsMax.X != 1 || model.BoundsMax.Y != 1 {
		t.Errorf("BoundsMax = %v, want (1, 1, 0)", model.BoundsMax)
	}

	// Normals were generated, so every vertex should have a unit normal.
	for i, v := range model.Vertices {
		l := v.Normal.Length()
		if l < 0.999 || l > 1.001 {
			t.Errorf("vertex %d normal length = %f, want ~1", i, l)
		}
	}
}

func TestBuildModelReleasedScene(t *testing.T) {
	scene := importTriangle(t)
	scene.Release()

	if _, err := BuildModel(scene); err == nil {
		t.Error("expected error building model from released scene")
	}
}
