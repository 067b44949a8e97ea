// Package system holds the small host-facing helpers: output locations,
// directory bootstrap and worker sizing.
package system

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
)

// perWorkerBytes is a rough upper bound on one job's working set
// (positions, targets and the supersampled preview buffer).
const perWorkerBytes = 128 << 20

// EnsureDirs creates the given directories if they do not exist.
func EnsureDirs(dirs ...string) error {
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}
	return nil
}

// DefaultWorkers picks a worker count for batch runs: one per CPU, capped
// by available memory so oversized batches do not swap the host.
func DefaultWorkers() int {
	workers := runtime.NumCPU()

	if vm, err := mem.VirtualMemory(); err == nil {
		byMem := int(vm.Available / perWorkerBytes)
		if byMem < 1 {
			byMem = 1
		}
		if byMem < workers {
			workers = byMem
		}
	}

	return workers
}

// GenerateOutputPath creates a timestamped animation filename under dir.
func GenerateOutputPath(dir, animationType string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("%s_camera_%s.json", animationType, timestamp))
}

// FindLatestBatch finds the most recently modified batch file in dir.
func FindLatestBatch(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := strings.ToLower(f.Name())
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no batch files found in %s", dir)
	}

	return latestFile, nil
}
