package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"reqcheck/internal/python"
	"reqcheck/internal/requirements"
)

// DefaultFile is the optional YAML config read from the working directory.
const DefaultFile = "reqcheck.yaml"

// DefaultMinPython is the interpreter constraint used by check-version when none is configured.
const DefaultMinPython = ">= 3.8"

// Config holds the settings that can come from reqcheck.yaml.
// - Python: interpreter command (default python3).
// - ModulesFile: path to the module list (default modules_required.dat).
// - Wheelhouse: optional archive of wheels for offline installs.
// - MinPython: semver constraint for check-version.
type Config struct {
	Python      string `yaml:"python"`
	ModulesFile string `yaml:"modules_file"`
	Wheelhouse  string `yaml:"wheelhouse"`
	MinPython   string `yaml:"min_python"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Python:      python.DefaultInterpreter,
		ModulesFile: requirements.DefaultFile,
		MinPython:   DefaultMinPython,
	}
}

// Load reads the YAML file at path on top of Defaults.
// When optional is true, a missing file yields the defaults instead of an error.
func Load(path string, optional bool) (Config, error) {
	cfg := Defaults()

	raw, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	cfg.merge(fileCfg)
	return cfg, nil
}

// merge copies the non-empty fields of other into c.
func (c *Config) merge(other Config) {
	if other.Python != "" {
		c.Python = other.Python
	}
	if other.ModulesFile != "" {
		c.ModulesFile = other.ModulesFile
	}
	if other.Wheelhouse != "" {
		c.Wheelhouse = other.Wheelhouse
	}
	if other.MinPython != "" {
		c.MinPython = other.MinPython
	}
}
