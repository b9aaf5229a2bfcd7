package builder

import (
	"context"
	"fmt"
	"log/slog"

	"i18n-converter/internal/config"
	"i18n-converter/internal/locale"
	"i18n-converter/internal/output"
	"i18n-converter/internal/table"
	"i18n-converter/internal/tree"
)

// Run reads the configured CSV input and writes one JSON file per language.
// Either every output file is replaced or none is.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	langs, err := cfg.LanguageSet()
	if err != nil {
		return fmt.Errorf("languages: %w", err)
	}

	input := cfg.CSVToJSON.Input

	rows, err := table.ReadFile(input)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		logger.Warn("input has no rows", "input", input)
	}

	b := New(Options{
		Languages:       langs,
		Separator:       cfg.Separator,
		KeyColumn:       cfg.CSVToJSON.KeyColumn,
		Header:          cfg.CSVToJSON.Header,
		FallbackOnEmpty: cfg.CSVToJSON.FallbackOnEmpty,
		HeaderFallback:  locale.Tag(cfg.DefaultLanguage),
		Logger:          logger,
	})

	res, err := b.Build(input, rows)
	if err != nil {
		return err
	}

	files := make([]output.File, 0, res.Languages.Len())

	for _, tag := range res.Languages.Tags() {
		err := ctx.Err()
		if err != nil {
			return fmt.Errorf("operation cancelled: %w", err)
		}

		data, err := tree.Marshal(res.Trees[tag])
		if err != nil {
			return fmt.Errorf("encoding %s: %w", tag, err)
		}

		files = append(files, output.File{Path: cfg.OutputPath(tag), Content: data})
	}

	err = output.WriteFiles(files)
	if err != nil {
		return err
	}

	res.Diagnostics.Log(logger)

	for i, tag := range res.Languages.Tags() {
		logger.Info("generated", "language", tag, "path", files[i].Path, "keys", res.Trees[tag].Len())
	}

	return nil
}
