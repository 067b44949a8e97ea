package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/splatcam/internal/export"
)

const testSpec = `version: "1.0"
jobs:
  - name: hero orbit
    preset: close-orbit
    config:
      frames: 20
      convert_coords: true
  - name: slow-spiral
    config:
      animation_type: spiral
      frames: 15
      keyframe_step: 5
  - config:
      frames: 10
`

func writeSpec(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "batch.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	spec, err := Load(writeSpec(t, t.TempDir(), testSpec))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(spec.Jobs) != 3 {
		t.Fatalf("Expected 3 jobs, got %d", len(spec.Jobs))
	}

	// Preset, then explicit keys, on top of the defaults.
	hero := spec.Jobs[0]
	if hero.Config.Radius != 3 {
		t.Errorf("Preset radius = %g, expected 3 from close-orbit", hero.Config.Radius)
	}
	if hero.Config.Frames != 20 {
		t.Errorf("Frames = %d, expected explicit 20", hero.Config.Frames)
	}
	if !hero.Config.ConvertCoords {
		t.Error("convert_coords override lost")
	}
	if hero.Config.FPS != 24 {
		t.Errorf("FPS = %d, expected default 24", hero.Config.FPS)
	}

	spiral := spec.Jobs[1]
	if spiral.Config.AnimationType != "spiral" || spiral.Config.KeyframeStep != 5 {
		t.Errorf("Overrides not applied: %+v", spiral.Config)
	}
	// Untouched defaults survive.
	if spiral.Config.StartRadius != 5 || spiral.Config.EndRadius != 15 {
		t.Errorf("Spiral defaults lost: start=%g end=%g", spiral.Config.StartRadius, spiral.Config.EndRadius)
	}

	if spec.Jobs[2].Name != "job_03" {
		t.Errorf("Unnamed job got %q, expected job_03", spec.Jobs[2].Name)
	}
	if spec.OutputDir != "output" {
		t.Errorf("Output dir = %q, expected default output", spec.OutputDir)
	}
}

func TestLoadEmpty(t *testing.T) {
	if _, err := Load(writeSpec(t, t.TempDir(), "version: \"1.0\"\njobs: []\n")); err == nil {
		t.Fatal("Expected error for empty batch, got none")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	spec, err := Load(writeSpec(t, dir, testSpec))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	spec.OutputDir = filepath.Join(dir, "out")

	results, err := Run(spec, 2)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	for _, res := range results {
		if res.Err != nil {
			t.Errorf("Job %s failed: %v", res.Name, res.Err)
			continue
		}

		anim, err := export.Read(res.Output)
		if err != nil {
			t.Errorf("Job %s output unreadable: %v", res.Name, err)
			continue
		}
		if anim.KeyframesGenerated != res.Keyframes {
			t.Errorf("Job %s: reported %d keyframes, file has %d", res.Name, res.Keyframes, anim.KeyframesGenerated)
		}
		t.Logf("Job %s: %d keyframes in %s", res.Name, res.Keyframes, res.Output)
	}

	// Spaces in job names do not leak into filenames.
	if filepath.Base(results[0].Output) != "hero_orbit.json" {
		t.Errorf("Output name %s, expected hero_orbit.json", filepath.Base(results[0].Output))
	}
}

func TestRunReportsBadJob(t *testing.T) {
	dir := t.TempDir()
	spec, err := Load(writeSpec(t, dir, "jobs:\n  - name: broken\n    config:\n      frames: 0\n  - name: fine\n    config:\n      frames: 5\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	spec.OutputDir = filepath.Join(dir, "out")

	results, err := Run(spec, 1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if results[0].Err == nil {
		t.Error("Broken job reported no error")
	}
	if results[1].Err != nil {
		t.Errorf("Healthy job failed alongside the broken one: %v", results[1].Err)
	}
}
