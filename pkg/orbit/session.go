package orbit

import (
	gomath "math"

	"github.com/mlanner/orbview/pkg/math"
)

// ModelTransform is the transform of the currently loaded model.
// Position is the normalization translation, Scale the normalized
// uniform scale, Euler the user rotation in radians (z, x, y order).
type ModelTransform struct {
	Position math.Vec3
	Euler    math.Vec3
	Scale    float32
}

// IdentityTransform returns the transform used before any model is
// normalized (and for degenerate geometry).
func IdentityTransform() ModelTransform {
	return ModelTransform{Scale: 1}
}

// Matrix returns the model matrix: translate, then uniform scale, then
// the Euler rotation.
func (t ModelTransform) Matrix() math.Mat4 {
	return math.EulerZXY(t.Euler.X, t.Euler.Y, t.Euler.Z).
		Mul(math.Scale(t.Scale, t.Scale, t.Scale)).
		Mul(math.Translate(t.Position.X, t.Position.Y, t.Position.Z))
}

// Toggles are the viewer's two independent view flags. They are only
// mutated by explicit user actions and survive a reset.
type Toggles struct {
	AutoRotate bool
	Wireframe  bool
}

// Session owns the camera rig, model transform, and toggles for one
// viewing session. It is the single mutable-state object of the viewer;
// the rendering backend reads it each frame and never writes it.
// Not safe for concurrent mutation: all updates happen on the event loop.
type Session struct {
	Camera  *Rig
	Model   ModelTransform
	Toggles Toggles

	// SpinPeriod is the auto-rotate full-revolution time in seconds.
	SpinPeriod float32

	base     ModelTransform // normalized pose restored by Reset
	hasModel bool
}

// NewSession creates a session for the given profile.
func NewSession(profile Profile) *Session {
	return &Session{
		Camera:     NewRig(profile.RigConfig()),
		Model:      IdentityTransform(),
		SpinPeriod: 10.0,
		base:       IdentityTransform(),
	}
}

// SetModel installs a freshly normalized model: the given translation
// and scale with zero rotation. Called once per completed load.
func (s *Session) SetModel(translation math.Vec3, scale float32) {
	s.base = ModelTransform{Position: translation, Scale: scale}
	s.Model = s.base
	s.hasModel = true
}

// HasModel reports whether a load has completed. Gestures are no-ops
// until it returns true.
func (s *Session) HasModel() bool {
	return s.hasModel
}

// Reset restores the model to its normalized pose and the camera to its
// defaults. Toggles are deliberately left as they are.
func (s *Session) Reset() {
	s.Model = s.base
	s.Camera.Reset()
}

// ToggleAutoRotate flips the auto-rotate flag and returns the new state.
func (s *Session) ToggleAutoRotate() bool {
	s.Toggles.AutoRotate = !s.Toggles.AutoRotate
	return s.Toggles.AutoRotate
}

// ToggleWireframe flips the wireframe flag and returns the new state.
func (s *Session) ToggleWireframe() bool {
	s.Toggles.Wireframe = !s.Toggles.Wireframe
	return s.Toggles.Wireframe
}

// Advance drives the auto-rotate animation: one full revolution about
// the vertical axis per SpinPeriod, looping indefinitely. dt is in
// seconds. No-op when the toggle is off or no model is loaded.
func (s *Session) Advance(dt float32) {
	if !s.Toggles.AutoRotate || !s.hasModel || s.SpinPeriod <= 0 {
		return
	}
	s.Model.Euler.Y = wrapAngle(s.Model.Euler.Y + dt*2*gomath.Pi/s.SpinPeriod)
}
