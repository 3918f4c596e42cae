package main

import (
	"fmt"
	gomath "math"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/go-assimp/internal/assets"
	"github.com/Faultbox/go-assimp/internal/config"
	"github.com/Faultbox/go-assimp/internal/engine/camera"
	"github.com/Faultbox/go-assimp/internal/engine/input"
	"github.com/Faultbox/go-assimp/internal/engine/viewer"
	"github.com/Faultbox/go-assimp/internal/engine/window"
	"github.com/Faultbox/go-assimp/internal/logger"
	"github.com/Faultbox/go-assimp/pkg/math"
	"github.com/veandco/go-sdl2/sdl"
)

// App is the viewer application.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *viewer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	model    *viewer.Model

	// near and far clip planes, derived from the model bounds
	near float32
	far  float32
}

// NewApp loads the model at path and sets up the window, renderer and
// camera around it.
func NewApp(cfg *config.Config, path string) (*App, error) {
	a := &App{
		config: cfg,
		input:  input.New(),
		camera: camera.NewOrbitCamera(),
	}

	scene, err := assets.Load(cfg.Import, path)
	if err != nil {
		return nil, err
	}
	defer scene.Release()

	a.model, err = viewer.BuildModel(scene)
	if err != nil {
		return nil, err
	}
	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("vertices", len(a.model.Vertices)),
		zap.Int("triangles", a.model.TriangleCount()),
		zap.Int("batches", len(a.model.Batches)),
	)

	// Window must exist before any GL call
	a.window, err = window.New(window.Config{
		Title:      fmt.Sprintf("assetview - %s", filepath.Base(path)),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = viewer.NewRenderer(cfg.Viewer)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer.UploadModel(a.model)

	a.camera.FitToBounds(a.model.BoundsMin, a.model.BoundsMax)
	size := a.model.BoundsMax.Sub(a.model.BoundsMin).Length()
	if size == 0 {
		size = 1
	}
	a.near = size * 0.001
	a.far = size * 100

	w, h := a.window.GetDrawableSize()
	a.renderer.Resize(w, h)

	return a, nil
}

// Run starts the main viewer loop.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for a.running {
		if a.input.Update() {
			break
		}

		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventQuit:
		a.running = false

	case input.EventKeyDown:
		if event.Key == sdl.SCANCODE_ESCAPE || event.Key == sdl.SCANCODE_Q {
			a.running = false
		}

	case input.EventWindowResize:
		w, h := a.window.GetDrawableSize()
		a.renderer.Resize(w, h)

	case input.EventMouseMove:
		dx, dy := float32(event.RelX), float32(event.RelY)
		switch {
		case a.input.IsButtonDown(sdl.BUTTON_LEFT) && input.ShiftHeld():
			a.camera.HandlePan(dx, dy)
		case a.input.IsButtonDown(sdl.BUTTON_LEFT):
			a.camera.HandleDrag(dx, dy)
		case a.input.IsButtonDown(sdl.BUTTON_MIDDLE), a.input.IsButtonDown(sdl.BUTTON_RIGHT):
			a.camera.HandlePan(dx, dy)
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(event.WheelY)
	}
}

func (a *App) render() {
	w, h := a.window.GetDrawableSize()
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}

	fov := a.config.Viewer.FOV * (gomath.Pi / 180)
	proj := math.Perspective(fov, aspect, a.near, a.far)
	view := a.camera.ViewMatrix()

	a.renderer.Draw(view, proj)
}

// Close cleans up viewer resources.
func (a *App) Close() {
	logger.Info("closing viewer")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
