package assimp

import (
	"errors"
	"strings"
	"testing"
)

// triangleOBJ is a minimal wavefront file: one triangle, no material
// library, no normals. Small enough to import in every test that needs
// real scene data.
const triangleOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func TestImporterProcessingSteps(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()

	if got := imp.ProcessingSteps(); got != 0 {
		t.Fatalf("fresh importer has steps %#x, want 0", got)
	}

	imp.AddProcessingSteps(ProcessTriangulate | ProcessGenSmoothNormals)
	imp.AddProcessingSteps(ProcessTriangulate) // adding twice is a no-op
	want := ProcessTriangulate | ProcessGenSmoothNormals
	if got := imp.ProcessingSteps(); got != want {
		t.Fatalf("after add, steps = %#x, want %#x", got, want)
	}

	imp.RemoveProcessingSteps(ProcessGenSmoothNormals | ProcessFlipUVs)
	if got := imp.ProcessingSteps(); got != ProcessTriangulate {
		t.Fatalf("after remove, steps = %#x, want %#x", got, ProcessTriangulate)
	}

	imp.RemoveProcessingSteps(ProcessTriangulate)
	if got := imp.ProcessingSteps(); got != 0 {
		t.Fatalf("after removing everything, steps = %#x, want 0", got)
	}
}

func TestImporterCloseIdempotent(t *testing.T) {
	imp := NewImporter()
	imp.Close()
	imp.Close() // second close must not crash
}

func TestImporterSetProperties(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()

	// One property of each primitive kind; the native setters have no
	// observable getter, so this exercises the dispatch paths only.
	imp.SetProperties(
		GenNormalsMaxSmoothingAngle(80),
		LimitBoneWeightsMax(4),
		FavourSpeed(true),
		RemoveRedundantMaterialsExcludeList("keepme"),
	)

	imp.AddProcessingSteps(ProcessTriangulate)
	imp.ResetProperties()
	if got := imp.ProcessingSteps(); got != ProcessTriangulate {
		t.Fatalf("ResetProperties cleared steps: %#x, want %#x", got, ProcessTriangulate)
	}
}

func TestReadFileFromMemory(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()
	imp.AddProcessingSteps(ProcessTriangulate | ProcessValidateDataStructure)

	scene, err := imp.ReadFileFromMemory([]byte(triangleOBJ), "obj")
	if err != nil {
		t.Fatalf("ReadFileFromMemory: %v", err)
	}
	defer scene.Release()

	if n := scene.NumMeshes(); n != 1 {
		t.Fatalf("NumMeshes = %d, want 1", n)
	}
	if n := scene.NumAnimations(); n != 0 {
		t.Errorf("NumAnimations = %d, want 0", n)
	}
	if n := scene.NumMaterials(); n == 0 {
		t.Errorf("NumMaterials = 0, want at least the default material")
	}

	meshes, err := scene.Meshes()
	if err != nil {
		t.Fatalf("Meshes: %v", err)
	}
	mesh := meshes[0]
	if n := mesh.NumVertices(); n != 3 {
		t.Fatalf("NumVertices = %d, want 3", n)
	}
	if got := len(mesh.Vertices()); got != 3 {
		t.Fatalf("len(Vertices) = %d, want 3", got)
	}
	faces := mesh.Faces()
	if len(faces) != 1 {
		t.Fatalf("len(Faces) = %d, want 1", len(faces))
	}
	if idx := faces[0].Indices(); len(idx) != 3 {
		t.Fatalf("face has %d indices, want 3", len(idx))
	}
	if pt := mesh.PrimitiveTypes(); pt&PrimitiveTypeTriangle == 0 {
		t.Errorf("PrimitiveTypes = %#x, want triangle bit set", pt)
	}
}

func TestReadFileNotFound(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()

	scene, err := imp.ReadFile("does-not-exist-anywhere.obj")
	if scene != nil {
		t.Fatalf("scene = %v, want nil", scene)
	}
	var ierr *ImportError
	if !errors.As(err, &ierr) {
		t.Fatalf("err = %T(%v), want *ImportError", err, err)
	}
	if ierr.Path != "does-not-exist-anywhere.obj" {
		t.Errorf("Path = %q, want the requested path", ierr.Path)
	}
	if ierr.Message == "" {
		t.Errorf("Message is empty, want the native diagnostic")
	}
}

func TestVersion(t *testing.T) {
	major, _, _ := Version()
	if major == 0 {
		t.Errorf("Version major = 0, want a real native version")
	}
	if LegalString() == "" {
		t.Errorf("LegalString is empty")
	}
}

func TestExtensionSupport(t *testing.T) {
	list := ExtensionList()
	if !strings.Contains(list, "*.obj") {
		t.Errorf("ExtensionList %q does not mention *.obj", list)
	}
	if !IsExtensionSupported(".obj") {
		t.Errorf("IsExtensionSupported(.obj) = false")
	}
	if IsExtensionSupported(".definitely-not-a-format") {
		t.Errorf("IsExtensionSupported reports support for a nonsense extension")
	}
}
