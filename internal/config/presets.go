package config

import (
	"fmt"
	"sort"
)

// presets are named parameter bundles for common shots. Each one overlays
// its fields on top of whatever the config already holds.
var presets = map[string]func(*Config){
	"example": func(c *Config) {
		c.AnimationType = TypeCircular
		c.Radius = 10.0
		c.Center = [3]float64{0, 0, 0}
		c.Target = &[3]float64{0, 0, -10}
		c.Frames = 180
		c.FPS = 24
	},
	"close-orbit": func(c *Config) {
		c.AnimationType = TypeCircular
		c.Radius = 3.0
		c.Center = [3]float64{0, 0, 2}
		c.Target = &[3]float64{0, 0, 2}
		c.Frames = 120
		c.FPS = 24
	},
	"wide-orbit": func(c *Config) {
		c.AnimationType = TypeCircular
		c.Radius = 20.0
		c.Center = [3]float64{0, 0, 0}
		c.Target = &[3]float64{0, 0, -5}
		c.Frames = 240
		c.FPS = 24
	},
	"rising-spiral": func(c *Config) {
		c.AnimationType = TypeSpiral
		c.SpiralLoops = 2.0
		c.StartRadius = 5.0
		c.EndRadius = 15.0
		c.StartHeight = 0.0
		c.EndHeight = 10.0
		c.Center = [3]float64{0, 0, 5}
		c.Target = &[3]float64{0, 0, 5}
		c.Frames = 240
		c.FPS = 24
		c.Direction = "counterclockwise"
	},
	"descending-spiral": func(c *Config) {
		c.AnimationType = TypeSpiral
		c.SpiralLoops = 3.0
		c.StartRadius = 20.0
		c.EndRadius = 5.0
		c.StartHeight = 15.0
		c.EndHeight = 0.0
		c.Center = [3]float64{0, 0, 7.5}
		c.Target = &[3]float64{0, 0, 7.5}
		c.Frames = 300
		c.FPS = 24
		c.Direction = "clockwise"
	},
}

// ApplyPreset overlays the named preset onto c.
func (c *Config) ApplyPreset(name string) error {
	apply, ok := presets[name]
	if !ok {
		return fmt.Errorf("%w: unknown preset %q (available: %v)", ErrInvalid, name, PresetNames())
	}
	apply(c)
	return nil
}

// PresetNames lists the available presets in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
