// Package cli wires command-line flags, the config file and logging to
// the two conversions.
package cli

import (
	"context"
	"fmt"
	"io"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"i18n-converter/internal/builder"
	"i18n-converter/internal/config"
	"i18n-converter/internal/flatten"
	"i18n-converter/internal/locale"
	"i18n-converter/internal/logging"
)

const appName = "i18n-converter"

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
	baseDir   string
}

type csvToJSONFlags struct {
	input           string
	outputDir       string
	languages       string
	fallback        string
	header          bool
	keyColumn       int
	keyColumnSet    bool
	fallbackOnEmpty bool
	pattern         string
	separator       string
}

type jsonToCSVFlags struct {
	inputs    []string
	output    string
	separator string
	delimiter string
	lf        bool
}

// App is the parsed command line.
type App struct {
	app     *kingpin.Application
	global  globalFlags
	c2j     csvToJSONFlags
	j2c     jsonToCSVFlags
	c2jCmd  *kingpin.CmdClause
	j2cCmd  *kingpin.CmdClause
	stderr  io.Writer
	baseDir func() (string, error)
}

// New builds the command tree. Usage goes to stdout, logs to stderr.
func New(stdout, stderr io.Writer) *App {
	a := &App{
		app:     kingpin.New(appName, "Convert localized string tables between CSV and nested JSON."),
		stderr:  stderr,
		baseDir: config.ExecutableDir,
	}

	a.app.UsageWriter(stdout)
	a.app.ErrorWriter(stderr)

	a.app.Flag("config", "YAML config file.").Short('c').PlaceHolder("FILE").StringVar(&a.global.config)
	a.app.Flag("log-level", "Log level: debug, info, warn, error.").StringVar(&a.global.logLevel)
	a.app.Flag("log-format", "Log format: text, json.").StringVar(&a.global.logFormat)
	a.app.Flag("base-dir", "Root of the default input/ and output/ layout (default: executable directory).").
		PlaceHolder("DIR").StringVar(&a.global.baseDir)

	c2j := a.app.Command("csv-to-json", "Build one JSON file per language from a CSV table.")
	c2j.Arg("input", "CSV file (default: input/input.csv).").StringVar(&a.c2j.input)
	c2j.Flag("output-dir", "Directory for the JSON files.").Short('o').PlaceHolder("DIR").StringVar(&a.c2j.outputDir)
	c2j.Flag("languages", "Comma-separated language tags of the value columns.").Short('l').
		PlaceHolder("hr,sl,rs").StringVar(&a.c2j.languages)
	c2j.Flag("fallback", "Language used when a value is missing.").Short('f').PlaceHolder("TAG").StringVar(&a.c2j.fallback)
	c2j.Flag("header", "First row holds column names; languages are read from it unless -l is given.").
		BoolVar(&a.c2j.header)
	c2j.Flag("key-column", "0-based index of the key column.").PlaceHolder("N").
		Action(func(*kingpin.ParseContext) error {
			a.c2j.keyColumnSet = true

			return nil
		}).IntVar(&a.c2j.keyColumn)
	c2j.Flag("fallback-on-empty", "Treat empty cells as missing.").BoolVar(&a.c2j.fallbackOnEmpty)
	c2j.Flag("pattern", "Output file name; {lang} is replaced by the tag.").PlaceHolder("P").StringVar(&a.c2j.pattern)
	c2j.Flag("separator", "Key segment separator.").Short('s').PlaceHolder("SEP").StringVar(&a.c2j.separator)
	a.c2jCmd = c2j

	j2c := a.app.Command("json-to-csv", "Flatten JSON or YAML documents into a CSV table.")
	j2c.Arg("inputs", "Documents, or one directory of them (default: input/input.json).").StringsVar(&a.j2c.inputs)
	j2c.Flag("output", "CSV output file.").Short('o').PlaceHolder("FILE").StringVar(&a.j2c.output)
	j2c.Flag("separator", "Key segment separator.").Short('s').PlaceHolder("SEP").StringVar(&a.j2c.separator)
	j2c.Flag("delimiter", "CSV field delimiter.").Short('d').PlaceHolder("CHAR").StringVar(&a.j2c.delimiter)
	j2c.Flag("lf", "End lines with \\n instead of \\r\\n.").BoolVar(&a.j2c.lf)
	a.j2cCmd = j2c

	return a
}

// Run parses args and executes the selected command.
func (a *App) Run(ctx context.Context, args []string) error {
	command, err := a.app.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := a.load()
	if err != nil {
		return err
	}

	switch command {
	case a.c2jCmd.FullCommand():
		a.applyCSVToJSON(cfg)
	case a.j2cCmd.FullCommand():
		a.applyJSONToCSV(cfg)
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	logger := logging.Setup(a.stderr, cfg.Logging.Level, cfg.Logging.Format)
	logger.Debug("configuration loaded", "command", command, "config", a.global.config)

	switch command {
	case a.c2jCmd.FullCommand():
		return builder.Run(ctx, cfg, logger)
	case a.j2cCmd.FullCommand():
		return flatten.Run(ctx, cfg, logger)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// Run is a convenience wrapper around New and App.Run.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return New(stdout, stderr).Run(ctx, args)
}

func (a *App) load() (*config.Config, error) {
	base := a.global.baseDir
	if base == "" {
		dir, err := a.baseDir()
		if err != nil {
			return nil, err
		}

		base = dir
	}

	cfg := config.Default(base)

	if a.global.config != "" {
		loaded, err := config.LoadFile(a.global.config, cfg)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if a.global.logLevel != "" {
		cfg.Logging.Level = a.global.logLevel
	}

	if a.global.logFormat != "" {
		cfg.Logging.Format = a.global.logFormat
	}

	return cfg, nil
}

func (a *App) applyCSVToJSON(cfg *config.Config) {
	f := a.c2j

	if f.input != "" {
		cfg.CSVToJSON.Input = f.input
	}

	if f.outputDir != "" {
		cfg.CSVToJSON.OutputDir = f.outputDir
	}

	if f.header {
		cfg.CSVToJSON.Header = true

		// without a config file the built-in languages give way to the header
		if f.languages == "" && a.global.config == "" {
			cfg.Languages = nil
			cfg.DefaultLanguage = ""
		}
	}

	if f.languages != "" {
		tags := locale.ParseTags(f.languages)

		cfg.Languages = make([]string, len(tags))
		for i, t := range tags {
			cfg.Languages[i] = string(t)
		}

		cfg.DefaultLanguage = ""
	}

	if f.fallback != "" {
		cfg.DefaultLanguage = f.fallback
	}

	if f.keyColumnSet {
		cfg.CSVToJSON.KeyColumn = f.keyColumn
	}

	if f.fallbackOnEmpty {
		cfg.CSVToJSON.FallbackOnEmpty = true
	}

	if f.pattern != "" {
		cfg.CSVToJSON.FilePattern = f.pattern
	}

	if f.separator != "" {
		cfg.Separator = f.separator
	}
}

func (a *App) applyJSONToCSV(cfg *config.Config) {
	f := a.j2c

	if len(f.inputs) > 0 {
		cfg.JSONToCSV.Inputs = f.inputs
	}

	if f.output != "" {
		cfg.JSONToCSV.Output = f.output
	}

	if f.separator != "" {
		cfg.Separator = f.separator
	}

	if f.delimiter != "" {
		cfg.JSONToCSV.Delimiter = f.delimiter
	}

	if f.lf {
		cfg.JSONToCSV.LineEnding = config.LineEndingLF
	}
}
