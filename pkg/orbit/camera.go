// Package orbit implements the camera/model interaction core of the
// viewer: an orbiting camera rig, model normalization, and mapping of
// gesture input onto camera and model transforms. It has no rendering
// dependencies and can drive any backend.
package orbit

import (
	gomath "math"

	"github.com/mlanner/orbview/pkg/math"
)

// RigConfig holds the camera rig constraints and defaults.
type RigConfig struct {
	DefaultDistance float32
	MinDistance     float32
	MaxDistance     float32
	DefaultFOV      float32 // degrees
	MinFOV          float32 // degrees
	MaxFOV          float32 // degrees
	MaxPitch        float32 // radians, strictly below pi/2
	FOVCompensation bool
}

// DefaultRigConfig returns the rig constraints shared by both
// interaction profiles.
func DefaultRigConfig() RigConfig {
	return RigConfig{
		DefaultDistance: 8.0,
		MinDistance:     2.0,
		MaxDistance:     20.0,
		DefaultFOV:      60.0,
		MinFOV:          10.0,
		MaxFOV:          360.0,
		MaxPitch:        89.0 * gomath.Pi / 180.0,
		FOVCompensation: true,
	}
}

// Rig is an orbiting camera around the world origin. Yaw and pitch are
// spherical angles in radians; the camera always re-aims at the origin.
type Rig struct {
	Yaw        float32 // wrapped to [-pi, pi]
	Pitch      float32 // clamped to [-MaxPitch, MaxPitch]
	Distance   float32 // clamped to [MinDistance, MaxDistance]
	FOVDegrees float32 // clamped to [MinFOV, MaxFOV]

	cfg RigConfig
}

// NewRig creates a rig at its configured defaults.
func NewRig(cfg RigConfig) *Rig {
	r := &Rig{cfg: cfg}
	r.Reset()
	return r
}

// Config returns the rig's configuration.
func (r *Rig) Config() RigConfig {
	return r.cfg
}

// Reset restores distance, field of view, and orbit angles to defaults.
func (r *Rig) Reset() {
	r.Yaw = 0
	r.Pitch = 0
	r.Distance = r.cfg.DefaultDistance
	r.FOVDegrees = r.cfg.DefaultFOV
}

// Orbit applies yaw and pitch deltas in radians. Yaw wraps modulo 2pi;
// pitch is clamped so the camera never crosses the poles.
func (r *Rig) Orbit(deltaYaw, deltaPitch float32) {
	r.Yaw = wrapAngle(r.Yaw + deltaYaw)
	r.Pitch = clamp(r.Pitch+deltaPitch, -r.cfg.MaxPitch, r.cfg.MaxPitch)
}

// Zoom applies an incremental pinch ratio: distance = distance/factor,
// clamped to the configured range. The factor is the ratio since the
// previous gesture event, not the cumulative gesture scale.
func (r *Rig) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	r.Distance = clamp(r.Distance/factor, r.cfg.MinDistance, r.cfg.MaxDistance)
}

// SetFOV sets the field of view in degrees, clamped to the configured
// range. With FOVCompensation enabled the distance is recomputed so the
// subject keeps its apparent on-screen size; only the perspective
// distortion changes.
func (r *Rig) SetFOV(degrees float32) {
	oldFOV := r.FOVDegrees
	newFOV := clamp(degrees, r.cfg.MinFOV, r.cfg.MaxFOV)
	if newFOV == oldFOV {
		return
	}

	if r.cfg.FOVCompensation {
		oldTan := gomath.Tan(float64(oldFOV) * gomath.Pi / 360.0)
		newTan := gomath.Tan(float64(newFOV) * gomath.Pi / 360.0)
		if newTan != 0 {
			compensated := float32(float64(r.Distance) * oldTan / newTan)
			r.Distance = clamp(compensated, r.cfg.MinDistance, r.cfg.MaxDistance)
		}
	}
	r.FOVDegrees = newFOV
}

// Position returns the camera position on the orbit sphere.
func (r *Rig) Position() math.Vec3 {
	cosP := float32(gomath.Cos(float64(r.Pitch)))
	sinP := float32(gomath.Sin(float64(r.Pitch)))
	cosY := float32(gomath.Cos(float64(r.Yaw)))
	sinY := float32(gomath.Sin(float64(r.Yaw)))

	return math.Vec3{
		X: r.Distance * cosP * sinY,
		Y: r.Distance * sinP,
		Z: r.Distance * cosP * cosY,
	}
}

// ViewMatrix returns the look-at view matrix aimed at the origin.
func (r *Rig) ViewMatrix() math.Mat4 {
	return math.LookAt(r.Position(), math.Vec3{}, math.Vec3{Y: 1})
}

// wrapAngle wraps an angle to [-pi, pi].
func wrapAngle(a float32) float32 {
	const twoPi = 2 * gomath.Pi
	for a > gomath.Pi {
		a -= twoPi
	}
	for a < -gomath.Pi {
		a += twoPi
	}
	return a
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
