package assimp

/*
#include <assimp/cimport.h>
#include <assimp/scene.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"
)

// Scene lifecycle errors.
var (
	// ErrSceneInvalid marks a scene that was nulled out by a failed
	// post-processing run. No further access is possible.
	ErrSceneInvalid = errors.New("assimp: scene invalidated by failed post-processing")

	// ErrSceneReleased marks a scene whose native resources were already
	// released.
	ErrSceneReleased = errors.New("assimp: scene already released")
)

type sceneState int

const (
	sceneImported sceneState = iota
	sceneInvalid
	sceneReleased
)

// Scene owns one imported native scene and its whole object graph. All
// accessors hand out borrowed, read-only views into foreign memory; they
// stay valid exactly as long as the Scene itself.
//
// A Scene is created by Importer.ReadFile / ReadFileFromMemory (or
// Scene.Clone) and never constructed directly. It must not be copied:
// two owners of the same native pointer would double-release. Release
// frees the native data exactly once; a finalizer backs it up.
type Scene struct {
	c     *C.struct_aiScene
	state sceneState

	// Top-level counts mirrored at wrap time so callers can size buffers
	// without touching foreign memory. Refreshed after post-processing,
	// which may merge or split arrays.
	numMeshes     uint32
	numMaterials  uint32
	numAnimations uint32
	numTextures   uint32
	numLights     uint32
	numCameras    uint32
}

func newScene(raw *C.struct_aiScene) *Scene {
	s := &Scene{c: raw}
	s.mirrorCounts()
	runtime.SetFinalizer(s, (*Scene).Release)
	return s
}

func (s *Scene) mirrorCounts() {
	s.numMeshes = uint32(s.c.mNumMeshes)
	s.numMaterials = uint32(s.c.mNumMaterials)
	s.numAnimations = uint32(s.c.mNumAnimations)
	s.numTextures = uint32(s.c.mNumTextures)
	s.numLights = uint32(s.c.mNumLights)
	s.numCameras = uint32(s.c.mNumCameras)
}

// err returns the error matching the scene's lifecycle state, or nil if
// the scene is usable.
func (s *Scene) err() error {
	switch s.state {
	case sceneInvalid:
		return ErrSceneInvalid
	case sceneReleased:
		return ErrSceneReleased
	default:
		return nil
	}
}

// Valid reports whether the scene can still be accessed.
func (s *Scene) Valid() bool { return s.state == sceneImported }

// Release frees the native scene data. It is idempotent: only the first
// call reaches the native library. After Release every accessor fails
// with ErrSceneReleased.
func (s *Scene) Release() {
	if s.c != nil {
		C.aiReleaseImport(s.c)
		s.c = nil
	}
	s.state = sceneReleased
}

// Flags returns the scene's completeness/validation bitmask.
func (s *Scene) Flags() (SceneFlags, error) {
	if err := s.err(); err != nil {
		return 0, err
	}
	return SceneFlags(s.c.mFlags), nil
}

// CheckFlags reports whether all bits in f are set on the scene.
func (s *Scene) CheckFlags(f SceneFlags) (bool, error) {
	got, err := s.Flags()
	if err != nil {
		return false, err
	}
	return got&f == f, nil
}

// RootNode returns the root of the node hierarchy. A successfully
// imported scene always has one unless SceneFlagIncomplete is set.
func (s *Scene) RootNode() (*Node, error) {
	if err := s.err(); err != nil {
		return nil, err
	}
	return (*Node)(unsafe.Pointer(s.c.mRootNode)), nil
}

// Mirrored top-level counts. These do not touch foreign memory and stay
// readable even after release.

func (s *Scene) NumMeshes() uint32     { return s.numMeshes }
func (s *Scene) NumMaterials() uint32  { return s.numMaterials }
func (s *Scene) NumAnimations() uint32 { return s.numAnimations }
func (s *Scene) NumTextures() uint32   { return s.numTextures }
func (s *Scene) NumLights() uint32     { return s.numLights }
func (s *Scene) NumCameras() uint32    { return s.numCameras }

// Meshes returns a borrowed view over the scene's mesh array.
func (s *Scene) Meshes() ([]*Mesh, error) {
	if err := s.err(); err != nil {
		return nil, err
	}
	return refSpan[Mesh](unsafe.Pointer(s.c.mMeshes), s.numMeshes), nil
}

// Materials returns a borrowed view over the scene's material array. Mesh
// material indices point into this array.
func (s *Scene) Materials() ([]*Material, error) {
	if err := s.err(); err != nil {
		return nil, err
	}
	return refSpan[Material](unsafe.Pointer(s.c.mMaterials), s.numMaterials), nil
}

// Animations returns a borrowed view over the scene's animation array.
func (s *Scene) Animations() ([]*Animation, error) {
	if err := s.err(); err != nil {
		return nil, err
	}
	return refSpan[Animation](unsafe.Pointer(s.c.mAnimations), s.numAnimations), nil
}

// Textures returns a borrowed view over the scene's embedded textures.
func (s *Scene) Textures() ([]*Texture, error) {
	if err := s.err(); err != nil {
		return nil, err
	}
	return refSpan[Texture](unsafe.Pointer(s.c.mTextures), s.numTextures), nil
}

// Lights returns a borrowed view over the scene's light sources.
func (s *Scene) Lights() ([]*Light, error) {
	if err := s.err(); err != nil {
		return nil, err
	}
	return refSpan[Light](unsafe.Pointer(s.c.mLights), s.numLights), nil
}

// Cameras returns a borrowed view over the scene's cameras. The first
// entry, if any, is the default view into the scene.
func (s *Scene) Cameras() ([]*Camera, error) {
	if err := s.err(); err != nil {
		return nil, err
	}
	return refSpan[Camera](unsafe.Pointer(s.c.mCameras), s.numCameras), nil
}

// MemoryInfo computes the approximate native storage used by the scene,
// in bytes per category.
func (s *Scene) MemoryInfo() (MemoryInfo, error) {
	if err := s.err(); err != nil {
		return MemoryInfo{}, err
	}
	var info C.struct_aiMemoryInfo
	C.aiGetMemoryRequirements(s.c, &info)
	return MemoryInfo{
		Textures:   uint32(info.textures),
		Materials:  uint32(info.materials),
		Meshes:     uint32(info.meshes),
		Nodes:      uint32(info.nodes),
		Animations: uint32(info.animations),
		Cameras:    uint32(info.cameras),
		Lights:     uint32(info.lights),
		Total:      uint32(info.total),
	}, nil
}

// ApplyPostProcessing runs the given steps in place on the already
// imported scene.
//
// ProcessValidateDataStructure is the only step that can fail; when it
// does, the native library destroys the scene. The wrapper then
// transitions to the invalid state, every later accessor fails with
// ErrSceneInvalid, and no release call is owed for the destroyed data.
// On success the mirrored counts are refreshed, since steps like
// OptimizeMeshes change them.
func (s *Scene) ApplyPostProcessing(steps PostProcess) error {
	if err := s.err(); err != nil {
		return err
	}
	if C.aiApplyPostProcessing(s.c, C.uint(steps)) == nil {
		// The native library already freed the scene; drop our reference
		// so Release does not double-free.
		s.c = nil
		s.state = sceneInvalid
		return fmt.Errorf("%w: %s", ErrSceneInvalid, ErrorString())
	}
	s.mirrorCounts()
	return nil
}

// Clone deep-copies the scene through the native copy call. The returned
// Scene is fully independent and owns its own native data; per the native
// contract it is released the same way as an imported scene.
func (s *Scene) Clone() (*Scene, error) {
	if err := s.err(); err != nil {
		return nil, err
	}
	var out *C.struct_aiScene
	C.aiCopyScene(s.c, &out)
	if out == nil {
		return nil, errors.New("assimp: aiCopyScene failed")
	}
	return newScene(out), nil
}

// Node is a non-owning view of one node in the imported hierarchy. It
// borrows its lifetime from the owning Scene.
type Node C.struct_aiNode

// Name returns the node name. Nodes referenced by bones or animations are
// named; others may have an empty name.
func (n *Node) Name() string {
	return goString(&n.mName)
}

// Transformation returns the transform relative to the parent node.
func (n *Node) Transformation() Matrix4x4 {
	return *(*Matrix4x4)(unsafe.Pointer(&n.mTransformation))
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return (*Node)(unsafe.Pointer(n.mParent))
}

// Children returns a borrowed view over the child nodes.
func (n *Node) Children() []*Node {
	return refSpan[Node](unsafe.Pointer(n.mChildren), uint32(n.mNumChildren))
}

// NumChildren returns the number of child nodes.
func (n *Node) NumChildren() uint32 { return uint32(n.mNumChildren) }

// MeshIndices returns the node's mesh references as indices into the
// scene's mesh array.
func (n *Node) MeshIndices() []uint32 {
	return span[uint32](unsafe.Pointer(n.mMeshes), uint32(n.mNumMeshes))
}

// FindNode searches the subtree rooted at n, depth first, for a node with
// the given name. Returns nil if no such node exists.
func (n *Node) FindNode(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name() == name {
		return n
	}
	for _, child := range n.Children() {
		if found := child.FindNode(name); found != nil {
			return found
		}
	}
	return nil
}
