package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ExecutableDir returns the directory holding the running binary, which
// anchors the default layout.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err == nil {
		exe = resolved
	}

	return filepath.Dir(exe), nil
}

// LoadFile reads a YAML config file and applies it over defaults. Relative
// paths in the file are resolved against the file's directory.
func LoadFile(path string, defaults *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data, filepath.Dir(path), defaults)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse applies YAML data over a copy of defaults.
func Parse(data []byte, baseDir string, defaults *Config) (*Config, error) {
	var file Config

	err := yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg := defaults.clone()
	merge(cfg, &file, baseDir)

	return cfg, nil
}

func (c *Config) clone() *Config {
	out := *c
	out.Languages = append([]string(nil), c.Languages...)
	out.JSONToCSV.Inputs = append([]string(nil), c.JSONToCSV.Inputs...)

	return &out
}

// merge copies every non-zero setting of file into cfg.
func merge(cfg, file *Config, baseDir string) {
	if file.Separator != "" {
		cfg.Separator = file.Separator
	}

	if file.Languages != nil {
		cfg.Languages = file.Languages
		// a new language list without a fallback falls back to its first entry
		cfg.DefaultLanguage = file.DefaultLanguage
	} else if file.DefaultLanguage != "" {
		cfg.DefaultLanguage = file.DefaultLanguage
	}

	c2j := file.CSVToJSON
	if c2j.Input != "" {
		cfg.CSVToJSON.Input = resolve(baseDir, c2j.Input)
	}

	if c2j.OutputDir != "" {
		cfg.CSVToJSON.OutputDir = resolve(baseDir, c2j.OutputDir)
	}

	if c2j.FilePattern != "" {
		cfg.CSVToJSON.FilePattern = c2j.FilePattern
	}

	if c2j.Header {
		cfg.CSVToJSON.Header = true
	}

	if c2j.KeyColumn != 0 {
		cfg.CSVToJSON.KeyColumn = c2j.KeyColumn
	}

	if c2j.FallbackOnEmpty {
		cfg.CSVToJSON.FallbackOnEmpty = true
	}

	j2c := file.JSONToCSV
	if len(j2c.Inputs) > 0 {
		cfg.JSONToCSV.Inputs = make([]string, len(j2c.Inputs))
		for i, in := range j2c.Inputs {
			cfg.JSONToCSV.Inputs[i] = resolve(baseDir, in)
		}
	}

	if j2c.Output != "" {
		cfg.JSONToCSV.Output = resolve(baseDir, j2c.Output)
	}

	if j2c.LineEnding != "" {
		cfg.JSONToCSV.LineEnding = j2c.LineEnding
	}

	if j2c.Delimiter != "" {
		cfg.JSONToCSV.Delimiter = j2c.Delimiter
	}

	if file.Logging.Level != "" {
		cfg.Logging.Level = file.Logging.Level
	}

	if file.Logging.Format != "" {
		cfg.Logging.Format = file.Logging.Format
	}
}

func resolve(baseDir, p string) string {
	if filepath.IsAbs(p) || baseDir == "" {
		return p
	}

	return filepath.Join(baseDir, p)
}
