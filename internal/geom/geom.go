// Package geom holds coordinate-system conversion and precision rounding
// shared by the trajectory pipeline.
package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// BlenderToSuperSplat remaps a vector from Blender's Z-up right-handed
// convention to SuperSplat's Y-up right-handed convention:
// (x, y, z) -> (x, z, -y). Magnitude is preserved.
func BlenderToSuperSplat(v v3.Vec) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Z, Z: -v.Y}
}

// ConvertAll applies BlenderToSuperSplat to every vector in vs.
func ConvertAll(vs []v3.Vec) []v3.Vec {
	out := make([]v3.Vec, len(vs))
	for i, v := range vs {
		out[i] = BlenderToSuperSplat(v)
	}
	return out
}

// Round rounds x to the given number of decimal digits.
func Round(x float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	return math.Round(x*pow) / pow
}

// RoundVec rounds every component of v to the given number of decimal digits.
func RoundVec(v v3.Vec, precision int) v3.Vec {
	return v3.Vec{
		X: Round(v.X, precision),
		Y: Round(v.Y, precision),
		Z: Round(v.Z, precision),
	}
}

// Finite reports whether every component of v is a finite number.
func Finite(v v3.Vec) bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
