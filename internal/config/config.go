// Package config handles viewer configuration loading and management.
package config

import "github.com/mlanner/orbview/pkg/orbit"

// Config holds all viewer settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Viewer      ViewerConfig      `yaml:"viewer"`
	Interaction InteractionConfig `yaml:"interaction"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ViewerConfig holds model presentation settings.
type ViewerConfig struct {
	// TargetSize is the side of the canonical bounding cube every
	// loaded model is normalized into.
	TargetSize float32 `yaml:"target_size"`
	// SpinPeriodSec is the auto-rotate full-revolution time in seconds.
	SpinPeriodSec float32 `yaml:"spin_period_sec"`
}

// InteractionConfig holds gesture mapping settings.
type InteractionConfig struct {
	// Profile is "camera-orbit" or "model-rotate".
	Profile        string  `yaml:"profile"`
	PanSensitivity float32 `yaml:"pan_sensitivity"`
	// ZoomStep is the incremental pinch ratio applied per wheel notch.
	ZoomStep float32 `yaml:"zoom_step"`
	// FOVStepDeg is the field-of-view change per key press, in degrees.
	FOVStepDeg float32 `yaml:"fov_step_deg"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Viewer: ViewerConfig{
			TargetSize:    2.0,
			SpinPeriodSec: 10.0,
		},
		Interaction: InteractionConfig{
			Profile:        "camera-orbit",
			PanSensitivity: orbit.DefaultPanSensitivity,
			ZoomStep:       0.1,
			FOVStepDeg:     5.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// InteractionProfile maps the configured profile name to its orbit
// profile. Unrecognized names fall back to camera-orbit.
func (c *Config) InteractionProfile() orbit.Profile {
	if c.Interaction.Profile == "model-rotate" {
		return orbit.ProfileModelRotate
	}
	return orbit.ProfileCameraOrbit
}
