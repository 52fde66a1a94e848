package orbit

// Profile selects how gestures map onto the camera and model. The two
// profiles are alternative configurations of the same viewer, not
// variations to be merged.
type Profile int

const (
	// ProfileModelRotate rotates the model's Euler angles with pan
	// gestures and rolls it with the two-finger rotation gesture. The
	// camera stays fixed except for pinch-controlled distance.
	ProfileModelRotate Profile = iota

	// ProfileCameraOrbit orbits the camera rig around the origin with
	// pan gestures; the model itself never rotates.
	ProfileCameraOrbit
)

// String returns the profile name used in configuration files.
func (p Profile) String() string {
	switch p {
	case ProfileModelRotate:
		return "model-rotate"
	case ProfileCameraOrbit:
		return "camera-orbit"
	default:
		return "unknown"
	}
}

// RigConfig returns the camera constraints observed for the profile:
// the model-rotate profile starts closer in and allows distance down
// to 1, the camera-orbit profile starts at 8 with a floor of 2.
func (p Profile) RigConfig() RigConfig {
	cfg := DefaultRigConfig()
	if p == ProfileModelRotate {
		cfg.DefaultDistance = 5.0
		cfg.MinDistance = 1.0
	}
	return cfg
}

// Gesture is one raw input event already reduced to its deltas.
type Gesture interface {
	isGesture()
}

// Pan is a one-finger drag delta in screen pixels.
type Pan struct {
	DX, DY float32
}

// Pinch is an incremental pinch ratio: the scale change since the
// previous pinch event, not the cumulative gesture scale. Values above
// 1 zoom in, below 1 zoom out.
type Pinch struct {
	Scale float32
}

// Roll is a two-finger rotation delta in radians.
type Roll struct {
	Delta float32
}

func (Pan) isGesture()   {}
func (Pinch) isGesture() {}
func (Roll) isGesture()  {}

// DefaultPanSensitivity converts drag pixels to radians.
const DefaultPanSensitivity = 0.01

// Mapper converts gestures into incremental session updates according
// to its profile. It is a pure translation layer: all state lives in
// the session.
type Mapper struct {
	Profile        Profile
	PanSensitivity float32
}

// NewMapper creates a mapper with the default sensitivity.
func NewMapper(profile Profile) Mapper {
	return Mapper{
		Profile:        profile,
		PanSensitivity: DefaultPanSensitivity,
	}
}

// Apply applies one gesture to the session. Gestures received before a
// model has finished loading are no-ops, not errors.
func (m Mapper) Apply(s *Session, g Gesture) {
	if !s.HasModel() {
		return
	}

	sens := m.PanSensitivity
	if sens == 0 {
		sens = DefaultPanSensitivity
	}

	switch g := g.(type) {
	case Pan:
		if m.Profile == ProfileModelRotate {
			s.Model.Euler.Y = wrapAngle(s.Model.Euler.Y + g.DX*sens)
			s.Model.Euler.X = wrapAngle(s.Model.Euler.X + g.DY*sens)
		} else {
			s.Camera.Orbit(g.DX*sens, g.DY*sens)
		}

	case Pinch:
		// Both profiles drive camera distance; both clamp to the rig range.
		s.Camera.Zoom(g.Scale)

	case Roll:
		// Only the model-rotate profile has a roll axis.
		if m.Profile == ProfileModelRotate {
			s.Model.Euler.Z = wrapAngle(s.Model.Euler.Z + g.Delta)
		}
	}
}
