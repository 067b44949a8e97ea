// Package batch runs several independent generation jobs from one YAML
// spec. Jobs share nothing: each one owns its config and output record, so
// they can run concurrently without synchronization.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/splatcam/internal/config"
	"github.com/ivlev/splatcam/internal/engine"
	"github.com/ivlev/splatcam/internal/system"
)

// Spec is a batch file: a list of jobs plus the base output directory.
type Spec struct {
	Version   string `yaml:"version"`
	OutputDir string `yaml:"output_dir"`
	Jobs      []Job  `yaml:"jobs"`
}

// Job is one generation request in a batch. Its config starts from the
// defaults, optionally applies a preset, then overlays the keys present in
// the job's config block.
type Job struct {
	Name   string
	Preset string
	Config config.Config
}

// UnmarshalYAML layers defaults, preset and explicit keys in that order.
func (j *Job) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name   string    `yaml:"name"`
		Preset string    `yaml:"preset"`
		Config yaml.Node `yaml:"config"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	j.Name = raw.Name
	j.Preset = raw.Preset
	j.Config = config.Default()

	if raw.Preset != "" {
		if err := j.Config.ApplyPreset(raw.Preset); err != nil {
			return err
		}
	}
	if !raw.Config.IsZero() {
		if err := raw.Config.Decode(&j.Config); err != nil {
			return err
		}
	}

	return nil
}

// Result holds the outcome of one job.
type Result struct {
	Name      string
	Output    string
	Keyframes int
	Elapsed   time.Duration
	Err       error
}

// Load reads and checks a batch spec from a YAML file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}

	if len(spec.Jobs) == 0 {
		return nil, fmt.Errorf("%w: batch file has no jobs", config.ErrInvalid)
	}
	if spec.OutputDir == "" {
		spec.OutputDir = "output"
	}
	for i := range spec.Jobs {
		if spec.Jobs[i].Name == "" {
			spec.Jobs[i].Name = fmt.Sprintf("job_%02d", i+1)
		}
	}

	return &spec, nil
}

// Run executes all jobs with a bounded worker pool and returns one result
// per job, in job order. A failed job does not stop the others.
func Run(spec *Spec, workers int) ([]Result, error) {
	if workers < 1 {
		workers = system.DefaultWorkers()
	}

	runID := uuid.New().String()[:8]
	runDir := filepath.Join(spec.OutputDir, "batch_"+runID)
	if err := system.EnsureDirs(runDir); err != nil {
		return nil, err
	}

	results := make([]Result, len(spec.Jobs))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, job := range spec.Jobs {
		g.Go(func() error {
			start := time.Now()

			cfg := job.Config
			if cfg.Output == "" {
				cfg.Output = filepath.Join(runDir, cleanName(job.Name)+".json")
			}

			res := Result{Name: job.Name, Output: cfg.Output}
			if anim, err := engine.NewProject(&cfg).Run(); err != nil {
				res.Err = err
			} else {
				res.Keyframes = anim.KeyframesGenerated
			}

			res.Elapsed = time.Since(start)
			results[i] = res
			return nil
		})
	}

	g.Wait()
	return results, nil
}

func cleanName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
