package orbit

import (
	gomath "math"
	"testing"
)

const epsilon = 1e-3

func TestZoomIncrementalPinch(t *testing.T) {
	// Two consecutive pinch events with incremental factors 2.0 then
	// 0.5 starting at distance 5 end back where they started.
	r := NewRig(ProfileModelRotate.RigConfig())
	r.Distance = 5

	r.Zoom(2.0)
	if r.Distance != 2.5 {
		t.Errorf("distance after Zoom(2.0) = %v, want 2.5", r.Distance)
	}
	r.Zoom(0.5)
	if r.Distance != 5.0 {
		t.Errorf("distance after Zoom(0.5) = %v, want 5.0", r.Distance)
	}
}

func TestZoomNeverLeavesRange(t *testing.T) {
	r := NewRig(DefaultRigConfig())
	cfg := r.Config()

	factors := []float32{2, 2, 2, 2, 0.1, 0.1, 0.1, 3, 0.25, 10, 0.01, 100, 0.5}
	for _, f := range factors {
		r.Zoom(f)
		if r.Distance < cfg.MinDistance || r.Distance > cfg.MaxDistance {
			t.Fatalf("Zoom(%v) drove distance to %v, outside [%v, %v]",
				f, r.Distance, cfg.MinDistance, cfg.MaxDistance)
		}
	}
}

func TestZoomIgnoresNonPositiveFactor(t *testing.T) {
	r := NewRig(DefaultRigConfig())
	before := r.Distance
	r.Zoom(0)
	r.Zoom(-1)
	if r.Distance != before {
		t.Errorf("distance changed to %v on non-positive factor, want %v", r.Distance, before)
	}
}

func TestOrbitPitchClamped(t *testing.T) {
	r := NewRig(DefaultRigConfig())
	maxPitch := r.Config().MaxPitch

	// A single delta far past the pole clamps.
	r.Orbit(0, 10)
	if r.Pitch != maxPitch {
		t.Errorf("pitch after +10 rad = %v, want clamped to %v", r.Pitch, maxPitch)
	}

	// Accumulated small deltas clamp too.
	r.Reset()
	for i := 0; i < 500; i++ {
		r.Orbit(0, -0.05)
	}
	if r.Pitch != -maxPitch {
		t.Errorf("pitch after many negative deltas = %v, want %v", r.Pitch, -maxPitch)
	}
}

func TestOrbitYawWraps(t *testing.T) {
	r := NewRig(DefaultRigConfig())

	for i := 0; i < 100; i++ {
		r.Orbit(1.0, 0)
		if r.Yaw > gomath.Pi || r.Yaw < -gomath.Pi {
			t.Fatalf("yaw = %v after %d orbits, outside [-pi, pi]", r.Yaw, i+1)
		}
	}

	r.Reset()
	r.Orbit(3*gomath.Pi/2, 0)
	want := float32(-gomath.Pi / 2)
	if diff := r.Yaw - want; diff > epsilon || diff < -epsilon {
		t.Errorf("yaw after +3pi/2 = %v, want %v", r.Yaw, want)
	}
}

func TestSetFOVCompensatesDistance(t *testing.T) {
	// FOV 60 -> 120 at distance 8: new distance = 8*tan(30)/tan(60).
	r := NewRig(ProfileCameraOrbit.RigConfig())
	r.Distance = 8

	r.SetFOV(120)
	want := float32(8 * gomath.Tan(gomath.Pi/6) / gomath.Tan(gomath.Pi/3)) // ~2.667
	if diff := r.Distance - want; diff > epsilon || diff < -epsilon {
		t.Errorf("compensated distance = %v, want %v", r.Distance, want)
	}
	if r.FOVDegrees != 120 {
		t.Errorf("FOV = %v, want 120", r.FOVDegrees)
	}
}

func TestSetFOVClampsRange(t *testing.T) {
	r := NewRig(DefaultRigConfig())

	r.SetFOV(5)
	if r.FOVDegrees != 10 {
		t.Errorf("FOV after SetFOV(5) = %v, want 10", r.FOVDegrees)
	}
	r.SetFOV(400)
	if r.FOVDegrees != 360 {
		t.Errorf("FOV after SetFOV(400) = %v, want 360", r.FOVDegrees)
	}
	if r.Distance < r.Config().MinDistance || r.Distance > r.Config().MaxDistance {
		t.Errorf("compensation drove distance to %v, outside range", r.Distance)
	}
}

func TestSetFOVWithoutCompensation(t *testing.T) {
	cfg := DefaultRigConfig()
	cfg.FOVCompensation = false
	r := NewRig(cfg)
	before := r.Distance

	r.SetFOV(120)
	if r.Distance != before {
		t.Errorf("distance changed to %v with compensation off, want %v", r.Distance, before)
	}
}

func TestRigReset(t *testing.T) {
	r := NewRig(DefaultRigConfig())
	r.Orbit(1.0, 0.5)
	r.Zoom(2.0)
	r.SetFOV(100)

	r.Reset()
	cfg := r.Config()
	if r.Yaw != 0 || r.Pitch != 0 {
		t.Errorf("orbit angles after Reset = (%v, %v), want (0, 0)", r.Yaw, r.Pitch)
	}
	if r.Distance != cfg.DefaultDistance {
		t.Errorf("distance after Reset = %v, want %v", r.Distance, cfg.DefaultDistance)
	}
	if r.FOVDegrees != cfg.DefaultFOV {
		t.Errorf("FOV after Reset = %v, want %v", r.FOVDegrees, cfg.DefaultFOV)
	}
}

func TestPositionOnSphere(t *testing.T) {
	r := NewRig(DefaultRigConfig())

	// At zero angles the camera sits on +Z at the default distance.
	pos := r.Position()
	if pos.X > epsilon || pos.X < -epsilon || pos.Y > epsilon || pos.Y < -epsilon ||
		gomath.Abs(float64(pos.Z-r.Distance)) > epsilon {
		t.Errorf("Position() at zero angles = %v, want {0 0 %v}", pos, r.Distance)
	}

	// Any orbit keeps the camera on the sphere of radius Distance.
	r.Orbit(1.2, -0.7)
	if l := r.Position().Length(); gomath.Abs(float64(l-r.Distance)) > epsilon {
		t.Errorf("|Position()| = %v after orbit, want %v", l, r.Distance)
	}
}
