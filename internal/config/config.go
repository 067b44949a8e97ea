// Package config defines the generation parameters shared by the CLI and
// batch shells.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalid marks configuration errors. Shells can pick them out of a
// failed run with errors.Is and exit before any output is produced.
var ErrInvalid = errors.New("invalid configuration")

// Animation types.
const (
	TypeCircular = "circular"
	TypeSpiral   = "spiral"
)

// Config holds every knob of one generation request.
type Config struct {
	AnimationType string     `yaml:"animation_type"`
	Direction     string     `yaml:"direction"`
	CameraName    string     `yaml:"camera_name"`
	Center        [3]float64 `yaml:"center,flow"`

	// Target selection: a fixed point, a camera-to-target distance, or
	// neither (the path center is aimed at). Setting both is an error.
	Target         *[3]float64 `yaml:"target,omitempty,flow"`
	TargetDistance *float64    `yaml:"target_distance,omitempty"`

	Radius float64 `yaml:"radius"`

	SpiralLoops float64 `yaml:"spiral_loops"`
	StartRadius float64 `yaml:"start_radius"`
	EndRadius   float64 `yaml:"end_radius"`
	StartHeight float64 `yaml:"start_height"`
	EndHeight   float64 `yaml:"end_height"`

	Frames      int     `yaml:"frames"`
	FPS         int     `yaml:"fps"`
	FocalLength float64 `yaml:"focal_length"`
	SensorSize  float64 `yaml:"sensor_size"`

	ConvertCoords bool `yaml:"convert_coords"`
	Precision     int  `yaml:"precision"`
	KeyframeStep  int  `yaml:"keyframe_step"`

	Output  string `yaml:"output,omitempty"`
	Preview string `yaml:"preview,omitempty"`
}

// Default returns a Config with the standard parameter set: a clockwise
// 10m circular orbit, 180 frames at 24 fps, 35mm lens on a 32mm sensor.
func Default() Config {
	return Config{
		AnimationType: TypeCircular,
		Direction:     "clockwise",
		CameraName:    "Generated_Camera",
		Radius:        10.0,
		SpiralLoops:   2.0,
		StartRadius:   5.0,
		EndRadius:     15.0,
		StartHeight:   0.0,
		EndHeight:     10.0,
		Frames:        180,
		FPS:           24,
		FocalLength:   35.0,
		SensorSize:    32.0,
		Precision:     6,
		KeyframeStep:  1,
	}
}

// Validate checks every parameter before sampling starts. All failures
// wrap ErrInvalid.
func (c *Config) Validate() error {
	switch c.AnimationType {
	case TypeCircular:
		if !finite(c.Radius) {
			return fmt.Errorf("%w: radius must be finite", ErrInvalid)
		}
		if c.Radius <= 0 {
			return fmt.Errorf("%w: radius must be greater than 0, got %g", ErrInvalid, c.Radius)
		}
	case TypeSpiral:
		for name, val := range map[string]float64{
			"start_radius": c.StartRadius,
			"end_radius":   c.EndRadius,
			"start_height": c.StartHeight,
			"end_height":   c.EndHeight,
			"spiral_loops": c.SpiralLoops,
		} {
			if !finite(val) {
				return fmt.Errorf("%w: %s must be finite", ErrInvalid, name)
			}
		}
	default:
		return fmt.Errorf("%w: unknown animation type %q", ErrInvalid, c.AnimationType)
	}

	if c.Direction != "clockwise" && c.Direction != "counterclockwise" {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalid, c.Direction)
	}
	if c.Frames < 1 {
		return fmt.Errorf("%w: frames must be at least 1, got %d", ErrInvalid, c.Frames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be greater than 0, got %d", ErrInvalid, c.FPS)
	}
	if c.FocalLength <= 0 {
		return fmt.Errorf("%w: focal length must be greater than 0, got %g", ErrInvalid, c.FocalLength)
	}
	if c.SensorSize <= 0 {
		return fmt.Errorf("%w: sensor size must be greater than 0, got %g", ErrInvalid, c.SensorSize)
	}
	if c.Precision < 1 || c.Precision > 14 {
		return fmt.Errorf("%w: precision must be between 1 and 14, got %d", ErrInvalid, c.Precision)
	}
	if c.KeyframeStep < 1 {
		return fmt.Errorf("%w: keyframe step must be at least 1, got %d", ErrInvalid, c.KeyframeStep)
	}
	if c.Target != nil && c.TargetDistance != nil {
		return fmt.Errorf("%w: target and target distance are mutually exclusive", ErrInvalid)
	}

	for _, comp := range c.Center {
		if !finite(comp) {
			return fmt.Errorf("%w: center coordinates must be finite", ErrInvalid)
		}
	}
	if c.Target != nil {
		for _, comp := range c.Target {
			if !finite(comp) {
				return fmt.Errorf("%w: target coordinates must be finite", ErrInvalid)
			}
		}
	}

	return nil
}

// ParseCoordinates parses a coordinate string like "0,1.5,-3" into a triple.
func ParseCoordinates(s string) ([3]float64, error) {
	var coords [3]float64

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return coords, fmt.Errorf("%w: coordinates %q must have exactly 3 values", ErrInvalid, s)
	}

	for i, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return coords, fmt.Errorf("%w: invalid coordinate %q in %q", ErrInvalid, part, s)
		}
		coords[i] = val
	}

	return coords, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
