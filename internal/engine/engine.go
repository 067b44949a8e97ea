// Package engine runs one generation request through the trajectory
// pipeline: sample positions, resolve targets, convert coordinates,
// assemble the output record.
package engine

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ivlev/splatcam/internal/config"
	"github.com/ivlev/splatcam/internal/export"
	"github.com/ivlev/splatcam/internal/geom"
	"github.com/ivlev/splatcam/internal/path"
	"github.com/ivlev/splatcam/internal/preview"
)

// Project is one generation request. Each project owns its own inputs and
// output; concurrent projects share nothing.
type Project struct {
	Config *config.Config
}

// NewProject creates a project for the given config.
func NewProject(cfg *config.Config) *Project {
	return &Project{Config: cfg}
}

// Generate runs the pipeline to completion and returns the full record.
// It either succeeds or fails before any output is produced.
func (p *Project) Generate() (*export.Animation, error) {
	positions, targets, err := p.resolve()
	if err != nil {
		return nil, err
	}

	if p.Config.ConvertCoords {
		positions = geom.ConvertAll(positions)
		targets = geom.ConvertAll(targets)
	}

	return export.Assemble(p.Config, positions, targets)
}

// Run generates the record, writes it to the configured output path and
// optionally renders a trajectory preview next to it. The written record
// is returned so shells can report on it.
func (p *Project) Run() (*export.Animation, error) {
	anim, err := p.Generate()
	if err != nil {
		return nil, err
	}

	if err := export.Write(anim, p.Config.Output); err != nil {
		return nil, fmt.Errorf("failed to write animation: %w", err)
	}

	if p.Config.Preview != "" {
		// The preview plots the path plane, so it uses the unconverted samples.
		positions, _, err := p.resolve()
		if err != nil {
			return nil, err
		}
		img := preview.Render(positions, p.center(), preview.DefaultSize)
		if err := preview.WriteWebP(img, p.Config.Preview); err != nil {
			return nil, fmt.Errorf("failed to write preview: %w", err)
		}
	}

	return anim, nil
}

// resolve validates the config and produces the raw position/target set.
func (p *Project) resolve() ([]v3.Vec, []v3.Vec, error) {
	cfg := p.Config
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	sampler, err := p.sampler()
	if err != nil {
		return nil, nil, err
	}

	positions := sampler.Sample(cfg.Frames)
	targets := p.target().Resolve(positions, p.center())
	return positions, targets, nil
}

func (p *Project) sampler() (path.Path, error) {
	cfg := p.Config
	switch cfg.AnimationType {
	case config.TypeCircular:
		return path.Circle{
			Center:    p.center(),
			Radius:    cfg.Radius,
			Direction: path.Direction(cfg.Direction),
		}, nil
	case config.TypeSpiral:
		return path.Spiral{
			Center:      p.center(),
			StartRadius: cfg.StartRadius,
			EndRadius:   cfg.EndRadius,
			StartHeight: cfg.StartHeight,
			EndHeight:   cfg.EndHeight,
			Loops:       cfg.SpiralLoops,
			Direction:   path.Direction(cfg.Direction),
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown animation type %q", config.ErrInvalid, cfg.AnimationType)
	}
}

func (p *Project) target() path.Target {
	cfg := p.Config
	switch {
	case cfg.TargetDistance != nil:
		return path.DistanceTarget{Distance: *cfg.TargetDistance}
	case cfg.Target != nil:
		return path.FixedTarget{Point: toVec(*cfg.Target)}
	default:
		return path.CenterTarget{}
	}
}

func (p *Project) center() v3.Vec {
	return toVec(p.Config.Center)
}

func toVec(a [3]float64) v3.Vec {
	return v3.Vec{X: a[0], Y: a[1], Z: a[2]}
}
