package math

import (
	gomath "math"
	"testing"
)

const matEpsilon = 1e-5

func vecNear(a, b Vec3, eps float32) bool {
	return a.Distance(b) < eps
}

func TestIdentityTransform(t *testing.T) {
	p := Vec3{1, 2, 3}
	got := Identity().TransformPoint(p)
	if got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v, want unchanged", p, got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if !vecNear(got, want, matEpsilon) {
		t.Errorf("Translate.TransformPoint() = %v, want %v", got, want)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if !vecNear(got, want, matEpsilon) {
		t.Errorf("Scale.TransformPoint() = %v, want %v", got, want)
	}
}

func TestRotateY(t *testing.T) {
	// 90 degrees around Y maps +X to -Z.
	m := RotateY(float32(gomath.Pi / 2))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if !vecNear(got, want, matEpsilon) {
		t.Errorf("RotateY(90deg).TransformPoint(+X) = %v, want %v", got, want)
	}
}

func TestEulerZXYZeroIsIdentity(t *testing.T) {
	m := EulerZXY(0, 0, 0)
	p := Vec3{4, -5, 6}
	got := m.TransformPoint(p)
	if !vecNear(got, p, matEpsilon) {
		t.Errorf("EulerZXY(0,0,0).TransformPoint(%v) = %v, want unchanged", p, got)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate then scale: scale applies to the translated point.
	m := Scale(2, 2, 2).Mul(Translate(1, 0, 0))
	got := m.TransformPoint(Vec3{0, 0, 0})
	want := Vec3{2, 0, 0}
	if !vecNear(got, want, matEpsilon) {
		t.Errorf("Scale*Translate at origin = %v, want %v", got, want)
	}
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	view := LookAt(eye, Vec3{}, Vec3{0, 1, 0})
	got := view.TransformPoint(eye)
	if !vecNear(got, Vec3{}, matEpsilon) {
		t.Errorf("LookAt view transform of eye = %v, want origin", got)
	}

	// The look-at target ends up on the negative Z axis in view space.
	target := view.TransformPoint(Vec3{})
	if target.Z >= 0 {
		t.Errorf("LookAt target Z = %v, want negative (in front of camera)", target.Z)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100, 100)
	d := Vec3{0, 1, 0}
	if got := m.TransformDirection(d); got != d {
		t.Errorf("TransformDirection under translation = %v, want %v", got, d)
	}
}
