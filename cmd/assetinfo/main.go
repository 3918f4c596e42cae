// assetinfo is a CLI utility for inspecting 3D asset files through the
// native import library.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Faultbox/go-assimp/pkg/assimp"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version":
		cmdVersion()
	case "extensions", "ext":
		cmdExtensions()
	case "stats":
		cmdStats(args, false)
	case "validate":
		cmdStats(args, true)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`assetinfo - 3D asset inspection utility

Usage:
  assetinfo <command> [options]

Commands:
  version              Show native library version and build info
  extensions           List supported file extensions
  stats <file...>      Show scene statistics for each file
  validate <file...>   Import with structure validation enabled

Examples:
  assetinfo version
  assetinfo stats model.obj scene.gltf
  assetinfo validate broken.dae`)
}

func cmdVersion() {
	major, minor, rev := assimp.Version()
	fmt.Printf("library version: %d.%d.%d (%s)\n", major, minor, rev, assimp.BranchName())

	flags := assimp.GetCompileFlags()
	var built []string
	for _, f := range []struct {
		flag assimp.CompileFlags
		name string
	}{
		{assimp.CompileFlagShared, "shared"},
		{assimp.CompileFlagSTLport, "stlport"},
		{assimp.CompileFlagDebug, "debug"},
		{assimp.CompileFlagNoBoost, "noboost"},
		{assimp.CompileFlagSingleThreaded, "singlethreaded"},
	} {
		if flags&f.flag != 0 {
			built = append(built, f.name)
		}
	}
	if len(built) > 0 {
		fmt.Printf("compile flags:   %s\n", strings.Join(built, ", "))
	}
}

func cmdExtensions() {
	exts := strings.Split(assimp.ExtensionList(), ";")
	sort.Strings(exts)
	for _, e := range exts {
		fmt.Println(e)
	}
	fmt.Printf("%d extensions supported\n", len(exts))
}

func cmdStats(args []string, validate bool) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: assetinfo stats <file...>")
		os.Exit(1)
	}

	imp := assimp.NewImporter()
	defer imp.Close()
	imp.AddProcessingSteps(assimp.ProcessTriangulate)
	if validate {
		imp.AddProcessingSteps(assimp.ProcessValidateDataStructure)
	}

	exitCode := 0
	for _, path := range args {
		if err := printStats(imp, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func printStats(imp *assimp.Importer, path string) error {
	scene, err := imp.ReadFile(path)
	if err != nil {
		return err
	}
	defer scene.Release()

	fmt.Printf("%s:\n", path)

	if flags, err := scene.Flags(); err == nil && flags != 0 {
		var set []string
		for _, f := range []struct {
			flag assimp.SceneFlags
			name string
		}{
			{assimp.SceneFlagIncomplete, "incomplete"},
			{assimp.SceneFlagValidated, "validated"},
			{assimp.SceneFlagValidationWarning, "validation-warning"},
			{assimp.SceneFlagNonVerboseFormat, "non-verbose"},
			{assimp.SceneFlagTerrain, "terrain"},
		} {
			if flags&f.flag != 0 {
				set = append(set, f.name)
			}
		}
		fmt.Printf("  flags:      %s\n", strings.Join(set, ", "))
	}

	fmt.Printf("  meshes:     %d\n", scene.NumMeshes())
	fmt.Printf("  materials:  %d\n", scene.NumMaterials())
	fmt.Printf("  animations: %d\n", scene.NumAnimations())
	fmt.Printf("  textures:   %d\n", scene.NumTextures())
	fmt.Printf("  lights:     %d\n", scene.NumLights())
	fmt.Printf("  cameras:    %d\n", scene.NumCameras())

	meshes, err := scene.Meshes()
	if err != nil {
		return err
	}
	var vertices, faces, bones uint32
	for _, m := range meshes {
		vertices += m.NumVertices()
		faces += m.NumFaces()
		bones += m.NumBones()
	}
	fmt.Printf("  vertices:   %d\n", vertices)
	fmt.Printf("  faces:      %d\n", faces)
	if bones > 0 {
		fmt.Printf("  bones:      %d\n", bones)
	}

	if root, err := scene.RootNode(); err == nil {
		fmt.Printf("  nodes:      %d\n", countNodes(root))
	}

	if info, err := scene.MemoryInfo(); err == nil {
		fmt.Printf("  memory:     %.1f KiB\n", float64(info.Total)/1024)
	}

	return nil
}

func countNodes(n *assimp.Node) int {
	count := 1
	for _, child := range n.Children() {
		count += countNodes(child)
	}
	return count
}
