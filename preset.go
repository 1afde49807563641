package tonecurve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// LoadPreset reads a TOML parameter preset from disk. Missing fields keep
// their defaults and every field is clamped to its declared range.
func LoadPreset(path string) (Params, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Params{}, err
	}
	return ParsePreset(data)
}

// ParsePreset decodes TOML preset bytes.
func ParsePreset(data []byte) (Params, error) {
	p := DefaultParams()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parse preset: %w", err)
	}
	return p.Clamped(), nil
}

// SavePreset writes the parameter set to disk as a TOML preset.
func SavePreset(path string, p Params) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(path), data, 0o644)
}
