// Package viewer implements the interactive model viewer shell: it
// owns the window, renderer and orbit session, translates raw input
// into gestures and runs the frame loop.
package viewer

import (
	"fmt"
	gomath "math"
	"path/filepath"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/mlanner/orbview/internal/asset"
	"github.com/mlanner/orbview/internal/config"
	"github.com/mlanner/orbview/internal/engine/input"
	"github.com/mlanner/orbview/internal/engine/render"
	"github.com/mlanner/orbview/internal/engine/window"
	"github.com/mlanner/orbview/internal/logger"
	"github.com/mlanner/orbview/pkg/math"
	"github.com/mlanner/orbview/pkg/orbit"
)

const (
	nearPlane = 0.05
	farPlane  = 200.0
)

// loadResult carries the outcome of an asynchronous model load.
type loadResult struct {
	path string
	set  asset.MeshSet
	err  error
}

// Viewer is the main viewer instance.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *render.Renderer
	input    *input.Input

	session *orbit.Session
	mapper  orbit.Mapper

	loadCh chan loadResult

	leftDown  bool
	rightDown bool
	lastX     int
	lastY     int
}

// New creates a viewer and starts loading the given model in the
// background. An empty path shows the placeholder cube.
func New(cfg *config.Config, modelPath string) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("profile", cfg.InteractionProfile().String()),
		zap.String("model", modelPath),
	)

	v := &Viewer{
		cfg:    cfg,
		loadCh: make(chan loadResult, 1),
	}

	// Create window (this also creates the OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      "OrbView",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the OpenGL context, so it comes after the window
	v.renderer, err = render.New(render.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()

	v.session = orbit.NewSession(cfg.InteractionProfile())
	v.session.SpinPeriod = cfg.Viewer.SpinPeriodSec
	v.mapper = orbit.Mapper{
		Profile:        cfg.InteractionProfile(),
		PanSensitivity: cfg.Interaction.PanSensitivity,
	}

	if modelPath == "" {
		v.showPlaceholder("no model given")
	} else {
		go v.loadModel(modelPath)
	}

	logger.Info("viewer initialized")
	return v, nil
}

// Run starts the main frame loop and blocks until the window closes.
func (v *Viewer) Run() error {
	v.running = true
	lastTime := time.Now()

	logger.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}

		// Pick up a finished background load, if any
		select {
		case res := <-v.loadCh:
			v.applyLoad(res)
		default:
		}

		v.session.Advance(dt)

		v.render()
		v.window.SwapBuffers()
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		v.running = false

	case input.EventWindowResize:
		v.renderer.Resize(e.Width, e.Height)

	case input.EventKeyDown:
		v.handleKey(e.Key)

	case input.EventMouseDown:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			v.leftDown = true
		case sdl.BUTTON_RIGHT:
			v.rightDown = true
		}
		v.lastX, v.lastY = e.MouseX, e.MouseY

	case input.EventMouseUp:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			v.leftDown = false
		case sdl.BUTTON_RIGHT:
			v.rightDown = false
		}

	case input.EventMouseMove:
		dx := e.MouseX - v.lastX
		dy := e.MouseY - v.lastY
		v.lastX, v.lastY = e.MouseX, e.MouseY
		if v.leftDown {
			v.mapper.Apply(v.session, orbit.Pan{DX: float32(dx), DY: float32(dy)})
		} else if v.rightDown {
			v.mapper.Apply(v.session, orbit.Roll{Delta: float32(dx) * v.mapper.PanSensitivity})
		}

	case input.EventMouseWheel:
		factor := 1 + e.WheelY*v.cfg.Interaction.ZoomStep
		if factor > 0 {
			v.mapper.Apply(v.session, orbit.Pinch{Scale: factor})
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false

	case sdl.SCANCODE_R:
		v.session.Reset()
		logger.Debug("session reset")

	case sdl.SCANCODE_SPACE:
		on := v.session.ToggleAutoRotate()
		logger.Debug("auto-rotate toggled", zap.Bool("on", on))

	case sdl.SCANCODE_X:
		on := v.session.ToggleWireframe()
		logger.Debug("wireframe toggled", zap.Bool("on", on))

	case sdl.SCANCODE_MINUS:
		v.session.Camera.SetFOV(v.session.Camera.FOVDegrees - v.cfg.Interaction.FOVStepDeg)

	case sdl.SCANCODE_EQUALS:
		v.session.Camera.SetFOV(v.session.Camera.FOVDegrees + v.cfg.Interaction.FOVStepDeg)
	}
}

// loadModel runs on its own goroutine and reports back over loadCh.
func (v *Viewer) loadModel(path string) {
	set, err := asset.Load(path)
	v.loadCh <- loadResult{path: path, set: set, err: err}
}

// applyLoad installs a finished load, falling back to the placeholder
// cube when the model could not be read.
func (v *Viewer) applyLoad(res loadResult) {
	if res.err != nil {
		logger.Warn("model load failed",
			zap.String("path", res.path),
			zap.Error(res.err),
		)
		v.showPlaceholder(res.err.Error())
		return
	}
	v.installMeshSet(res.set)
	v.window.SetTitle("OrbView - " + filepath.Base(res.path))
}

// showPlaceholder installs the placeholder cube with a reason shown in
// the window title.
func (v *Viewer) showPlaceholder(reason string) {
	v.installMeshSet(asset.PlaceholderCube())
	v.window.SetTitle("OrbView - placeholder (" + reason + ")")
}

// installMeshSet normalizes the mesh set and hands it to the renderer.
func (v *Viewer) installMeshSet(set asset.MeshSet) {
	bounds, err := math.ComputeBounds(set.Points())
	if err != nil {
		logger.Warn("mesh set has no points, substituting placeholder")
		set = asset.PlaceholderCube()
		bounds, _ = math.ComputeBounds(set.Points())
	}

	translation, scale := orbit.Normalize(bounds, v.cfg.Viewer.TargetSize)
	v.session.SetModel(translation, scale)
	v.renderer.Upload(set)

	logger.Info("model installed",
		zap.Int("meshes", len(set)),
		zap.Int("triangles", set.TriangleCount()),
		zap.Float32("scale", scale),
	)
}

func (v *Viewer) render() {
	v.renderer.Begin()

	fov := v.session.Camera.FOVDegrees * gomath.Pi / 180
	projection := math.Perspective(fov, v.renderer.Aspect(), nearPlane, farPlane)
	view := v.session.Camera.ViewMatrix()
	model := v.session.Model.Matrix()

	v.renderer.Draw(model, view, projection, v.session.Toggles.Wireframe)
}
