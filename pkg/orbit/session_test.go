package orbit

import (
	gomath "math"
	"testing"

	"github.com/mlanner/orbview/pkg/math"
)

func TestResetRestoresTransformsOnly(t *testing.T) {
	s := NewSession(ProfileModelRotate)
	s.SetModel(math.Vec3{X: -1, Y: 0, Z: 0}, 0.5)

	s.Model.Euler = math.Vec3{X: 0.3, Y: 1.2, Z: -0.1}
	s.Camera.Orbit(0.5, 0.2)
	s.Camera.Zoom(3)
	s.ToggleAutoRotate()
	s.ToggleWireframe()

	s.Reset()

	if s.Model.Euler != (math.Vec3{}) {
		t.Errorf("model rotation after Reset = %v, want zero", s.Model.Euler)
	}
	if s.Model.Position != (math.Vec3{X: -1, Y: 0, Z: 0}) || s.Model.Scale != 0.5 {
		t.Errorf("model transform after Reset = %+v, want normalized pose", s.Model)
	}
	if s.Camera.Distance != s.Camera.Config().DefaultDistance {
		t.Errorf("distance after Reset = %v, want default", s.Camera.Distance)
	}

	// Toggles survive a reset; only geometry resets.
	if !s.Toggles.AutoRotate || !s.Toggles.Wireframe {
		t.Errorf("toggles after Reset = %+v, want preserved", s.Toggles)
	}
}

func TestToggleFlips(t *testing.T) {
	s := NewSession(ProfileCameraOrbit)

	if got := s.ToggleAutoRotate(); !got {
		t.Error("first ToggleAutoRotate() = false, want true")
	}
	if got := s.ToggleAutoRotate(); got {
		t.Error("second ToggleAutoRotate() = true, want false")
	}
	if got := s.ToggleWireframe(); !got {
		t.Error("first ToggleWireframe() = false, want true")
	}
}

func TestAdvanceSpinsModel(t *testing.T) {
	s := NewSession(ProfileModelRotate)
	s.SetModel(math.Vec3{}, 1)
	s.SpinPeriod = 10
	s.Toggles.AutoRotate = true

	// A quarter of the period is a quarter revolution.
	s.Advance(2.5)
	want := float32(gomath.Pi / 2)
	if diff := gomath.Abs(float64(s.Model.Euler.Y - want)); diff > epsilon {
		t.Errorf("model yaw after quarter period = %v, want %v", s.Model.Euler.Y, want)
	}
}

func TestAdvanceNoOpWhenDisabled(t *testing.T) {
	s := NewSession(ProfileModelRotate)
	s.SetModel(math.Vec3{}, 1)

	s.Advance(1)
	if s.Model.Euler.Y != 0 {
		t.Errorf("model spun with auto-rotate off: %v", s.Model.Euler.Y)
	}

	// No model loaded: toggle on but still a no-op.
	s2 := NewSession(ProfileModelRotate)
	s2.Toggles.AutoRotate = true
	s2.Advance(1)
	if s2.Model.Euler.Y != 0 {
		t.Errorf("model spun before load: %v", s2.Model.Euler.Y)
	}
}

func TestModelTransformMatrix(t *testing.T) {
	// The normalized transform maps the original bounds center to the origin.
	bounds := math.Box3{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 3, Y: 1, Z: 1}}
	translation, scale := Normalize(bounds, 2)

	tr := ModelTransform{Position: translation, Scale: scale}
	got := tr.Matrix().TransformPoint(bounds.Center())
	if got.Length() > epsilon {
		t.Errorf("transformed bounds center = %v, want origin", got)
	}

	// A corner lands on the targetSize/2 cube surface.
	corner := tr.Matrix().TransformPoint(math.Vec3{X: 3, Y: 1, Z: 1})
	if diff := gomath.Abs(float64(corner.X - 1)); diff > epsilon {
		t.Errorf("transformed corner X = %v, want 1", corner.X)
	}
}

func TestIdentityTransform(t *testing.T) {
	tr := IdentityTransform()
	p := math.Vec3{X: 2, Y: 3, Z: 4}
	if got := tr.Matrix().TransformPoint(p); got.Distance(p) > epsilon {
		t.Errorf("identity transform moved %v to %v", p, got)
	}
}
