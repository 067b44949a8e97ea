package export

import (
	"fmt"
	"time"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ivlev/splatcam/internal/config"
	"github.com/ivlev/splatcam/internal/geom"
)

// Assemble builds the final animation record from resolved positions and
// targets. Coordinates are rounded to the configured precision here, after
// any coordinate conversion upstream. A non-finite coordinate means a
// broken upstream computation and aborts the whole record.
func Assemble(cfg *config.Config, positions, targets []v3.Vec) (*Animation, error) {
	if len(positions) != len(targets) {
		return nil, fmt.Errorf("position/target count mismatch: %d vs %d", len(positions), len(targets))
	}

	for i := range positions {
		if !geom.Finite(positions[i]) || !geom.Finite(targets[i]) {
			return nil, fmt.Errorf("non-finite coordinate at frame %d", i+1)
		}
	}

	fov := geom.Round(FocalLengthToFOV(cfg.FocalLength, cfg.SensorSize), 2)

	poses := make([]Pose, 0, len(positions)/cfg.KeyframeStep+2)
	for i := range positions {
		// Keyframes land on the stride; the last frame is always kept so
		// the endpoint of the path survives subsampling.
		if i%cfg.KeyframeStep != 0 && i != len(positions)-1 {
			continue
		}

		frame := i + 1
		poses = append(poses, Pose{
			Frame:       frame,
			Time:        float64(frame) / float64(cfg.FPS),
			Position:    toArray(geom.RoundVec(positions[i], cfg.Precision)),
			Target:      toArray(geom.RoundVec(targets[i], cfg.Precision)),
			FocalLength: cfg.FocalLength,
			FOV:         fov,
			Name:        fmt.Sprintf("camera_frame_%04d", frame),
		})
	}

	system := SystemBlender
	if cfg.ConvertCoords {
		system = SystemSuperSplat
	}

	anim := &Animation{
		CameraName:          cfg.CameraName,
		FrameRate:           cfg.FPS,
		FrameStart:          1,
		FrameEnd:            cfg.Frames,
		FrameStep:           1,
		CoordinateSystem:    system,
		TotalFrames:         cfg.Frames,
		KeyframesGenerated:  len(poses),
		KeyframeStep:        cfg.KeyframeStep,
		AnimationType:       cfg.AnimationType,
		Direction:           cfg.Direction,
		ExportTimestamp:     time.Now().Format(time.RFC3339),
		CoordinatePrecision: cfg.Precision,
		Center:              cfg.Center,
		Poses:               poses,
		Generator:           Generator,
	}

	if cfg.TargetDistance != nil {
		d := *cfg.TargetDistance
		anim.TargetDistance = &d
	} else if cfg.Target != nil {
		t := *cfg.Target
		anim.Target = &t
	}

	switch cfg.AnimationType {
	case config.TypeCircular:
		r := cfg.Radius
		anim.Radius = &r
	case config.TypeSpiral:
		loops, sr, er, sh, eh := cfg.SpiralLoops, cfg.StartRadius, cfg.EndRadius, cfg.StartHeight, cfg.EndHeight
		anim.SpiralLoops = &loops
		anim.StartRadius = &sr
		anim.EndRadius = &er
		anim.StartHeight = &sh
		anim.EndHeight = &eh
	}

	return anim, nil
}

func toArray(v v3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
