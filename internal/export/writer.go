package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write serializes an animation record to a JSON file, creating the
// destination directory if needed.
func Write(anim *Animation, path string) error {
	data, err := json.MarshalIndent(anim, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return os.WriteFile(path, data, 0644)
}

// Read loads an animation record back from a JSON file.
func Read(path string) (*Animation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var anim Animation
	if err := json.Unmarshal(data, &anim); err != nil {
		return nil, err
	}

	return &anim, nil
}
