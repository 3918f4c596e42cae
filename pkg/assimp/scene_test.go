package assimp

import (
	"errors"
	"testing"
)

func importTriangle(t *testing.T, steps PostProcess) *Scene {
	t.Helper()
	imp := NewImporter()
	defer imp.Close()
	imp.AddProcessingSteps(steps)

	scene, err := imp.ReadFileFromMemory([]byte(triangleOBJ), "obj")
	if err != nil {
		t.Fatalf("import fixture: %v", err)
	}
	return scene
}

func TestSceneRelease(t *testing.T) {
	scene := importTriangle(t, ProcessTriangulate)
	if !scene.Valid() {
		t.Fatalf("fresh scene is not valid")
	}

	scene.Release()
	scene.Release() // releasing twice must not crash

	if scene.Valid() {
		t.Errorf("released scene reports valid")
	}
	if _, err := scene.Meshes(); !errors.Is(err, ErrSceneReleased) {
		t.Errorf("Meshes after release: err = %v, want ErrSceneReleased", err)
	}
	if _, err := scene.RootNode(); !errors.Is(err, ErrSceneReleased) {
		t.Errorf("RootNode after release: err = %v, want ErrSceneReleased", err)
	}
}

func TestSceneInvalidState(t *testing.T) {
	// A scene in the invalidated state refuses every accessor.
	s := &Scene{state: sceneInvalid}

	if s.Valid() {
		t.Errorf("invalidated scene reports valid")
	}
	if _, err := s.Flags(); !errors.Is(err, ErrSceneInvalid) {
		t.Errorf("Flags: err = %v, want ErrSceneInvalid", err)
	}
	if _, err := s.Materials(); !errors.Is(err, ErrSceneInvalid) {
		t.Errorf("Materials: err = %v, want ErrSceneInvalid", err)
	}
	if _, err := s.MemoryInfo(); !errors.Is(err, ErrSceneInvalid) {
		t.Errorf("MemoryInfo: err = %v, want ErrSceneInvalid", err)
	}
	if err := s.ApplyPostProcessing(ProcessTriangulate); !errors.Is(err, ErrSceneInvalid) {
		t.Errorf("ApplyPostProcessing: err = %v, want ErrSceneInvalid", err)
	}
	if _, err := s.Clone(); !errors.Is(err, ErrSceneInvalid) {
		t.Errorf("Clone: err = %v, want ErrSceneInvalid", err)
	}
}

func TestSceneGraph(t *testing.T) {
	scene := importTriangle(t, ProcessTriangulate)
	defer scene.Release()

	root, err := scene.RootNode()
	if err != nil {
		t.Fatalf("RootNode: %v", err)
	}
	if root.Parent() != nil {
		t.Errorf("root node has a parent")
	}

	// Every mesh index reachable from the graph must be in range, and
	// the graph must reference the fixture's single mesh somewhere.
	found := false
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, idx := range n.MeshIndices() {
			if idx >= scene.NumMeshes() {
				t.Errorf("node %q references mesh %d, only %d meshes", n.Name(), idx, scene.NumMeshes())
			}
			if idx == 0 {
				found = true
			}
		}
		for _, child := range n.Children() {
			if child.Parent() != n {
				t.Errorf("child %q has wrong parent", child.Name())
			}
			walk(child)
		}
	}
	walk(root)
	if !found {
		t.Errorf("no node references mesh 0")
	}

	if got := root.FindNode(root.Name()); got != root {
		t.Errorf("FindNode(root name) = %v, want the root itself", got)
	}
	if got := root.FindNode("no-such-node-name"); got != nil {
		t.Errorf("FindNode(bogus) = %v, want nil", got)
	}
}

func TestApplyPostProcessing(t *testing.T) {
	scene := importTriangle(t, 0)
	defer scene.Release()

	meshes, err := scene.Meshes()
	if err != nil {
		t.Fatalf("Meshes: %v", err)
	}
	if meshes[0].HasNormals() {
		t.Fatalf("fixture unexpectedly has normals before processing")
	}

	if err := scene.ApplyPostProcessing(ProcessTriangulate | ProcessGenSmoothNormals); err != nil {
		t.Fatalf("ApplyPostProcessing: %v", err)
	}
	if !scene.Valid() {
		t.Fatalf("scene invalid after successful post-processing")
	}

	meshes, err = scene.Meshes()
	if err != nil {
		t.Fatalf("Meshes after processing: %v", err)
	}
	if !meshes[0].HasNormals() {
		t.Errorf("no normals after ProcessGenSmoothNormals")
	}
	if got := len(meshes[0].Normals()); got != int(meshes[0].NumVertices()) {
		t.Errorf("len(Normals) = %d, want %d", got, meshes[0].NumVertices())
	}
}

func TestSceneClone(t *testing.T) {
	scene := importTriangle(t, ProcessTriangulate)

	clone, err := scene.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	defer clone.Release()

	// The clone owns its own native data and survives the original.
	scene.Release()

	if !clone.Valid() {
		t.Fatalf("clone invalid after original release")
	}
	meshes, err := clone.Meshes()
	if err != nil {
		t.Fatalf("clone Meshes: %v", err)
	}
	if n := meshes[0].NumVertices(); n != 3 {
		t.Errorf("clone NumVertices = %d, want 3", n)
	}
}

func TestSceneMemoryInfo(t *testing.T) {
	scene := importTriangle(t, ProcessTriangulate)
	defer scene.Release()

	info, err := scene.MemoryInfo()
	if err != nil {
		t.Fatalf("MemoryInfo: %v", err)
	}
	if info.Total == 0 {
		t.Errorf("Total = 0, want a positive estimate")
	}
	if info.Meshes == 0 {
		t.Errorf("Meshes = 0, want a positive estimate")
	}
}

func TestSceneMaterials(t *testing.T) {
	scene := importTriangle(t, ProcessTriangulate)
	defer scene.Release()

	mats, err := scene.Materials()
	if err != nil {
		t.Fatalf("Materials: %v", err)
	}
	if len(mats) == 0 {
		t.Fatalf("no materials, want at least the default material")
	}

	// The default material always has a name and a diffuse color.
	mat := mats[0]
	if mat.Name() == "" {
		t.Errorf("material name is empty")
	}
	if _, ok := mat.Color(MatKeyColorDiffuse); !ok {
		t.Errorf("default material has no diffuse color")
	}
	if _, ok := mat.Color(MatKey("$clr.nonexistent")); ok {
		t.Errorf("lookup of a bogus key reported success")
	}
	if n := mat.TextureCount(TextureTypeDiffuse); n != 0 {
		t.Errorf("TextureCount(diffuse) = %d, want 0", n)
	}
}
