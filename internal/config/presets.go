package config

import (
	"fmt"
	"os"

	"github.com/diegoclair/weekday-range-picker/internal/domain"
	"gopkg.in/yaml.v3"
)

type presetsFile struct {
	Presets []domain.PresetSeed `yaml:"presets"`
}

// LoadPresets reads the predefined ranges seeded into new channels.
// An empty path returns domain.DefaultPresets.
func LoadPresets(path string) ([]domain.PresetSeed, error) {
	if path == "" {
		return domain.DefaultPresets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", path, err)
	}

	for i, p := range file.Presets {
		if p.Label == "" || p.Start == "" || p.End == "" {
			return nil, fmt.Errorf("preset #%d in %s needs label, start and end", i+1, path)
		}
	}

	return file.Presets, nil
}
