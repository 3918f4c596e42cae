package assimp

import (
	"errors"
	"strings"
	"testing"
)

func TestExportFormats(t *testing.T) {
	formats := ExportFormats()
	if len(formats) == 0 {
		t.Fatalf("no export formats, want at least the built-in writers")
	}
	for _, f := range formats {
		if f.ID == "" {
			t.Errorf("format with empty ID: %+v", f)
		}
	}
}

func TestExportToBlob(t *testing.T) {
	scene := importTriangle(t, ProcessTriangulate)
	defer scene.Release()

	blob, err := scene.ExportToBlob("objnomtl", 0)
	if err != nil {
		t.Fatalf("ExportToBlob: %v", err)
	}
	out := string(blob)
	if !strings.Contains(out, "v ") || !strings.Contains(out, "f ") {
		t.Errorf("exported obj lacks vertex or face lines:\n%s", out)
	}

	// Export must leave the scene usable.
	if !scene.Valid() {
		t.Errorf("scene invalid after export")
	}
}

func TestExportReleasedScene(t *testing.T) {
	scene := importTriangle(t, ProcessTriangulate)
	scene.Release()

	if err := scene.Export("objnomtl", "out.obj", 0); !errors.Is(err, ErrSceneReleased) {
		t.Errorf("Export after release: err = %v, want ErrSceneReleased", err)
	}
	if _, err := scene.ExportToBlob("objnomtl", 0); !errors.Is(err, ErrSceneReleased) {
		t.Errorf("ExportToBlob after release: err = %v, want ErrSceneReleased", err)
	}
}
