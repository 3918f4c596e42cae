// assetconvert converts between 3D asset formats using the native
// import and export APIs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/go-assimp/internal/assets"
	"github.com/Faultbox/go-assimp/internal/config"
	"github.com/Faultbox/go-assimp/pkg/assimp"
)

var (
	flagFormat = flag.String("format", "", "Output format ID (default: guessed from output extension)")
	flagList   = flag.Bool("list", false, "List available output formats and exit")
)

func main() {
	flag.Usage = usage
	config.ParseFlags()

	if *flagList {
		listFormats()
		return
	}

	args := config.Args()
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	input, output := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	formatID := *flagFormat
	if formatID == "" {
		formatID = guessFormat(output)
	}
	if formatID == "" {
		fmt.Fprintf(os.Stderr, "Cannot guess output format for %q, use -format\n", output)
		os.Exit(1)
	}

	if err := convert(cfg.Import, input, output, formatID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s -> %s (%s)\n", input, output, formatID)
}

func usage() {
	fmt.Fprintln(os.Stderr, `assetconvert - 3D asset format converter

Usage:
  assetconvert [options] <input> <output>
  assetconvert -list

Options:`)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, `
Examples:
  assetconvert model.fbx model.obj
  assetconvert -format glb2 -preset maxquality scene.dae scene.glb`)
}

func listFormats() {
	for _, f := range assimp.ExportFormats() {
		fmt.Printf("%-12s .%-6s %s\n", f.ID, f.FileExtension, f.Description)
	}
}

// guessFormat maps an output file extension to an export format ID.
func guessFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return ""
	}
	for _, f := range assimp.ExportFormats() {
		if f.FileExtension == ext {
			return f.ID
		}
	}
	return ""
}

func convert(cfg config.ImportConfig, input, output, formatID string) error {
	scene, err := assets.Load(cfg, input)
	if err != nil {
		return err
	}
	defer scene.Release()

	return scene.Export(formatID, output, 0)
}
