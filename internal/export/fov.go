package export

import "math"

// FocalLengthToFOV converts a focal length to the horizontal field of view
// in degrees. Focal length and sensor width must be in the same linear unit
// (millimeters by convention; 32mm sensor width is standard, 36mm full-frame).
func FocalLengthToFOV(focalLength, sensorSize float64) float64 {
	fovRadians := 2 * math.Atan(sensorSize/(2*focalLength))
	return fovRadians * 180 / math.Pi
}
