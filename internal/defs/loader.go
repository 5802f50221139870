package defs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTuning reads a YAML tuning file on top of DefaultTuning.
// A missing file is not an error: the defaults are returned.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	file, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("tuning file %s not found, using defaults", path)
			return t, nil
		}
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(file, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("invalid tuning in %s: %w", path, err)
	}

	log.Printf("Loaded tuning from %s", path)
	return t, nil
}

// Validate rejects values that would break the simulation invariants.
func (t Tuning) Validate() error {
	switch {
	case t.Spawn.BaseFrequencyMs <= 0 || t.Spawn.MinFrequencyMs <= 0:
		return errors.New("spawn frequencies must be positive")
	case t.Spawn.MinFrequencyMs > t.Spawn.BaseFrequencyMs:
		return errors.New("min spawn frequency exceeds base frequency")
	case t.Spawn.BasePolygonFrequency < 0 || t.Spawn.MaxPolygonFrequency > 1:
		return errors.New("polygon frequency must lie in [0, 1]")
	case t.Target.MinRadius <= 0 || t.Target.MaxRadius < t.Target.MinRadius:
		return errors.New("target radius range is invalid")
	case t.Target.MinShrink <= 0 || t.Target.MaxShrink < t.Target.MinShrink:
		return errors.New("target shrink range is invalid")
	case t.Difficulty.HitsPerLevel <= 0:
		return errors.New("hits_per_level must be positive")
	case t.Limits.MaxFails < 0 || t.Limits.MaxMissed < 0:
		return errors.New("limits must not be negative")
	}
	return nil
}
