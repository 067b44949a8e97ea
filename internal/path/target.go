package path

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Target produces one look-at point per camera position, in the same order.
type Target interface {
	Resolve(positions []v3.Vec, center v3.Vec) []v3.Vec
}

// FixedTarget aims every frame at the same world point.
type FixedTarget struct {
	Point v3.Vec
}

func (t FixedTarget) Resolve(positions []v3.Vec, center v3.Vec) []v3.Vec {
	targets := make([]v3.Vec, len(positions))
	for i := range targets {
		targets[i] = t.Point
	}
	return targets
}

// CenterTarget aims every frame at the path center. This is the default.
type CenterTarget struct{}

func (t CenterTarget) Resolve(positions []v3.Vec, center v3.Vec) []v3.Vec {
	targets := make([]v3.Vec, len(positions))
	for i := range targets {
		targets[i] = center
	}
	return targets
}

// DistanceTarget places each target at a fixed distance from the camera,
// along the ray from the camera toward the path center.
type DistanceTarget struct {
	Distance float64
}

func (t DistanceTarget) Resolve(positions []v3.Vec, center v3.Vec) []v3.Vec {
	targets := make([]v3.Vec, len(positions))
	for i, pos := range positions {
		dir := center.Sub(pos)
		length := dir.Length()
		if length == 0 {
			// Camera sits exactly on the center, no direction to aim along.
			targets[i] = center
			continue
		}
		targets[i] = pos.Add(dir.MulScalar(t.Distance / length))
	}
	return targets
}
