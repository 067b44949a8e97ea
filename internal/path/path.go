// Package path generates camera positions along parametric orbit paths.
package path

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Direction is the apparent winding of the camera orbit seen from above.
type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counterclockwise"
)

// Multiplier returns the sign applied to the sweep angle.
func (d Direction) Multiplier() float64 {
	if d == Clockwise {
		return -1
	}
	return 1
}

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == Clockwise || d == CounterClockwise
}

// Path produces one camera position per frame index in [0, frames).
type Path interface {
	Sample(frames int) []v3.Vec
}

// Circle is a planar orbit at a fixed radius around a center point.
// Height stays at the center's Z for every frame.
type Circle struct {
	Center    v3.Vec
	Radius    float64
	Direction Direction
}

// Sample sweeps one full revolution over all frames.
func (c Circle) Sample(frames int) []v3.Vec {
	positions := make([]v3.Vec, 0, frames)
	mult := c.Direction.Multiplier()

	for frame := 0; frame < frames; frame++ {
		angle := 2 * math.Pi * float64(frame) / float64(frames) * mult
		positions = append(positions, v3.Vec{
			X: c.Center.X + c.Radius*math.Cos(angle),
			Y: c.Center.Y + c.Radius*math.Sin(angle),
			Z: c.Center.Z,
		})
	}

	return positions
}

// Spiral winds around the center while radius and height interpolate
// linearly between their start and end values.
type Spiral struct {
	Center      v3.Vec
	StartRadius float64
	EndRadius   float64
	StartHeight float64
	EndHeight   float64
	Loops       float64
	Direction   Direction
}

// Sample sweeps Loops revolutions over all frames. A single-frame request
// yields the start of the path (t=0).
func (s Spiral) Sample(frames int) []v3.Vec {
	positions := make([]v3.Vec, 0, frames)
	mult := s.Direction.Multiplier()

	for frame := 0; frame < frames; frame++ {
		t := 0.0
		if frames > 1 {
			t = float64(frame) / float64(frames-1)
		}

		angle := 2 * math.Pi * s.Loops * t * mult
		radius := lerp(s.StartRadius, s.EndRadius, t)
		height := lerp(s.StartHeight, s.EndHeight, t)

		positions = append(positions, v3.Vec{
			X: s.Center.X + radius*math.Cos(angle),
			Y: s.Center.Y + radius*math.Sin(angle),
			Z: s.Center.Z + height,
		})
	}

	return positions
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
