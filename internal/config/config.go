// Package config holds the settings of both conversions.
//
// Defaults reproduce the fixed layout next to the executable:
//
//	input/input.csv              csv-to-json input
//	output/output_{lang}.json    csv-to-json outputs, one per language
//	input/input.json             json-to-csv input
//	output/output.csv            json-to-csv output
//
// A YAML file can override any setting; relative paths in it are resolved
// against the directory of that file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"i18n-converter/internal/keypath"
	"i18n-converter/internal/locale"
)

// LangPlaceholder is replaced by the language tag in FilePattern.
const LangPlaceholder = "{lang}"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Line endings accepted by JSONToCSVConfig.LineEnding.
const (
	LineEndingCRLF = "crlf"
	LineEndingLF   = "lf"
)

// Config holds all settings.
type Config struct {
	// Separator splits composite keys into segments (default ".").
	Separator string `yaml:"separator"`

	// Languages lists the tags of the value columns in order (default hr, sl, rs).
	Languages []string `yaml:"languages"`

	// DefaultLanguage is the fallback tag (default: first of Languages).
	DefaultLanguage string `yaml:"default_language"`

	CSVToJSON CSVToJSONConfig `yaml:"csv_to_json"`
	JSONToCSV JSONToCSVConfig `yaml:"json_to_csv"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CSVToJSONConfig configures the builder.
type CSVToJSONConfig struct {
	Input     string `yaml:"input"`
	OutputDir string `yaml:"output_dir"`

	// FilePattern names each output file; {lang} is the tag.
	FilePattern string `yaml:"file_pattern"`

	// Header marks the first row as column names. With no Languages
	// configured, tags are read from it.
	Header bool `yaml:"header"`

	// KeyColumn is the 0-based index of the key column.
	KeyColumn int `yaml:"key_column"`

	// FallbackOnEmpty treats empty cells like missing ones.
	FallbackOnEmpty bool `yaml:"fallback_on_empty"`
}

// JSONToCSVConfig configures the flattener.
type JSONToCSVConfig struct {
	// Inputs are JSON or YAML files, or one directory of them.
	// More than one file switches to merge mode.
	Inputs []string `yaml:"inputs"`
	Output string   `yaml:"output"`

	// LineEnding is "crlf" (default) or "lf".
	LineEnding string `yaml:"line_ending"`

	// Delimiter is the single field separator character (default ",").
	Delimiter string `yaml:"delimiter"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is debug, info, warn or error (default: info).
	Level string `yaml:"level"`

	// Format is text or json (default: text).
	Format string `yaml:"format"`
}

// Default returns the original fixed layout rooted at baseDir.
func Default(baseDir string) *Config {
	tags := locale.DefaultSet().Tags()
	langs := make([]string, len(tags))

	for i, t := range tags {
		langs[i] = string(t)
	}

	return &Config{
		Separator:       keypath.DefaultSeparator,
		Languages:       langs,
		DefaultLanguage: string(locale.DefaultSet().Default()),
		CSVToJSON: CSVToJSONConfig{
			Input:       filepath.Join(baseDir, "input", "input.csv"),
			OutputDir:   filepath.Join(baseDir, "output"),
			FilePattern: "output_" + LangPlaceholder + ".json",
		},
		JSONToCSV: JSONToCSVConfig{
			Inputs:     []string{filepath.Join(baseDir, "input", "input.json")},
			Output:     filepath.Join(baseDir, "output", "output.csv"),
			LineEnding: LineEndingCRLF,
			Delimiter:  ",",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LanguageSet builds the tag set. It returns an empty set and no error when
// no languages are configured and they are to be read from the CSV header.
func (c *Config) LanguageSet() (locale.Set, error) {
	if len(c.Languages) == 0 && c.CSVToJSON.Header {
		return locale.Set{}, nil
	}

	tags := make([]locale.Tag, len(c.Languages))
	for i, l := range c.Languages {
		tags[i] = locale.Tag(strings.TrimSpace(l))
	}

	return locale.NewSet(tags, locale.Tag(c.DefaultLanguage))
}

// OutputPath returns the JSON output file for tag.
func (c *Config) OutputPath(tag locale.Tag) string {
	name := strings.ReplaceAll(c.CSVToJSON.FilePattern, LangPlaceholder, string(tag))

	return filepath.Join(c.CSVToJSON.OutputDir, name)
}

// CRLF reports whether CSV output ends lines with \r\n.
func (c *Config) CRLF() bool {
	return !strings.EqualFold(c.JSONToCSV.LineEnding, LineEndingLF)
}

// Comma returns the CSV output delimiter.
func (c *Config) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.JSONToCSV.Delimiter)
	if r == utf8.RuneError {
		return ','
	}

	return r
}

// Validate checks every setting and reports all failures at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Separator == "" {
		errs = append(errs, "separator must not be empty")
	}

	if len(c.Languages) == 0 && !c.CSVToJSON.Header {
		errs = append(errs, "languages must not be empty unless csv_to_json.header is set")
	}

	if len(c.Languages) > 0 {
		_, err := c.LanguageSet()
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	if c.CSVToJSON.KeyColumn < 0 {
		errs = append(errs, fmt.Sprintf("csv_to_json.key_column (%d) must be non-negative", c.CSVToJSON.KeyColumn))
	}

	if !strings.Contains(c.CSVToJSON.FilePattern, LangPlaceholder) {
		errs = append(errs, fmt.Sprintf("csv_to_json.file_pattern (%q) must contain %s", c.CSVToJSON.FilePattern, LangPlaceholder))
	}

	if strings.ContainsAny(c.CSVToJSON.FilePattern, `/\`) {
		errs = append(errs, fmt.Sprintf("csv_to_json.file_pattern (%q) must be a file name", c.CSVToJSON.FilePattern))
	}

	switch strings.ToLower(c.JSONToCSV.LineEnding) {
	case LineEndingCRLF, LineEndingLF:
	default:
		errs = append(errs, fmt.Sprintf("json_to_csv.line_ending (%q) must be one of: crlf, lf", c.JSONToCSV.LineEnding))
	}

	if d := c.JSONToCSV.Delimiter; utf8.RuneCountInString(d) != 1 || strings.ContainsAny(d, "\"\r\n") ||
		!utf8.ValidString(d) {
		errs = append(errs, fmt.Sprintf("json_to_csv.delimiter (%q) must be a single character other than a quote or newline", d))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("logging.format (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}
