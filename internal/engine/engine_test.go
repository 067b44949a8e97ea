package engine

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/splatcam/internal/config"
	"github.com/ivlev/splatcam/internal/export"
)

func TestGenerateCircular(t *testing.T) {
	cfg := config.Default()

	anim, err := NewProject(&cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(anim.Poses) != 180 {
		t.Fatalf("Expected 180 poses, got %d", len(anim.Poses))
	}
	if anim.CoordinateSystem != export.SystemBlender {
		t.Errorf("Coordinate system = %s, expected BLENDER without conversion", anim.CoordinateSystem)
	}

	// Clockwise orbit of radius 10 around the origin starts at (10, 0, 0).
	first := anim.Poses[0].Position
	if math.Abs(first[0]-10) > 1e-6 || math.Abs(first[1]) > 1e-6 || math.Abs(first[2]) > 1e-6 {
		t.Errorf("First pose at %v, expected ~(10, 0, 0)", first)
	}

	// Default target is the path center.
	if anim.Poses[0].Target != [3]float64{0, 0, 0} {
		t.Errorf("Default target %v, expected path center", anim.Poses[0].Target)
	}
	if anim.Radius == nil || *anim.Radius != 10 {
		t.Errorf("Record radius = %v, expected 10", anim.Radius)
	}
}

func TestGenerateConvertCoords(t *testing.T) {
	cfg := config.Default()
	cfg.Center = [3]float64{0, 0, 2}
	cfg.ConvertCoords = true

	anim, err := NewProject(&cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if anim.CoordinateSystem != export.SystemSuperSplat {
		t.Errorf("Coordinate system = %s, expected SUPERSPLAT", anim.CoordinateSystem)
	}

	// Pre-conversion first position is (10, 0, 2); (x,y,z)->(x,z,-y)
	// makes it (10, 2, 0).
	first := anim.Poses[0].Position
	want := [3]float64{10, 2, 0}
	for i := range want {
		if math.Abs(first[i]-want[i]) > 1e-6 {
			t.Errorf("Converted first pose %v, expected %v", first, want)
			break
		}
	}

	// The center in the metadata stays in input coordinates.
	if anim.Center != cfg.Center {
		t.Errorf("Record center %v, expected %v", anim.Center, cfg.Center)
	}
}

func TestGenerateSpiral(t *testing.T) {
	cfg := config.Default()
	cfg.AnimationType = config.TypeSpiral
	cfg.Frames = 240
	cfg.Direction = "counterclockwise"

	anim, err := NewProject(&cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if anim.SpiralLoops == nil || *anim.SpiralLoops != 2 {
		t.Errorf("spiral_loops = %v, expected 2", anim.SpiralLoops)
	}
	if anim.Radius != nil {
		t.Errorf("Spiral record carries circular radius %v", *anim.Radius)
	}

	first := anim.Poses[0].Position
	if math.Abs(first[0]-5) > 1e-6 {
		t.Errorf("Spiral starts at %v, expected start radius 5 on X", first)
	}
	last := anim.Poses[len(anim.Poses)-1].Position
	if math.Abs(last[2]-10) > 1e-6 {
		t.Errorf("Spiral ends at %v, expected end height 10", last)
	}
}

func TestGenerateConfigErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero frames", func(c *config.Config) { c.Frames = 0 }},
		{"zero radius", func(c *config.Config) { c.Radius = 0 }},
		{"negative fps", func(c *config.Config) { c.FPS = -24 }},
		{"unknown type", func(c *config.Config) { c.AnimationType = "figure-eight" }},
		{"unknown direction", func(c *config.Config) { c.Direction = "sideways" }},
		{"precision too high", func(c *config.Config) { c.Precision = 15 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := config.Default()
			c.mutate(&cfg)

			anim, err := NewProject(&cfg).Generate()
			if err == nil {
				t.Fatal("Expected configuration error, got none")
			}
			if !errors.Is(err, config.ErrInvalid) {
				t.Errorf("Error %v does not wrap config.ErrInvalid", err)
			}
			if anim != nil {
				t.Error("Failed generation still produced a record")
			}
		})
	}
}

func TestGenerateDistanceTarget(t *testing.T) {
	cfg := config.Default()
	cfg.Frames = 12
	d := 3.0
	cfg.TargetDistance = &d

	anim, err := NewProject(&cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for i, pose := range anim.Poses {
		dx := pose.Target[0] - pose.Position[0]
		dy := pose.Target[1] - pose.Position[1]
		dz := pose.Target[2] - pose.Position[2]
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if math.Abs(dist-3.0) > 1e-4 {
			t.Errorf("Pose %d: target distance %f, expected 3 (within rounding)", i, dist)
		}
	}
	if anim.TargetDistance == nil || *anim.TargetDistance != 3 {
		t.Errorf("Record target_distance = %v, expected 3", anim.TargetDistance)
	}
}

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Frames = 30
	cfg.Output = filepath.Join(dir, "camera.json")
	cfg.Preview = filepath.Join(dir, "camera.webp")

	anim, err := NewProject(&cfg).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if anim.KeyframesGenerated != 30 {
		t.Errorf("keyframes_generated = %d, expected 30", anim.KeyframesGenerated)
	}

	for _, p := range []string{cfg.Output, cfg.Preview} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Missing output %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("Output %s is empty", p)
		}
	}
}
