package flatten

import (
	"context"
	"fmt"
	"log/slog"

	"i18n-converter/internal/config"
	"i18n-converter/internal/diagnostic"
	"i18n-converter/internal/output"
	"i18n-converter/internal/table"
)

// Run flattens the configured inputs into the configured CSV output.
// One input file gives two columns without a header; several files or a
// directory give a merged table.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	docs, merged, err := ResolveInputs(cfg.JSONToCSV.Inputs)
	if err != nil {
		return err
	}

	err = ctx.Err()
	if err != nil {
		return fmt.Errorf("operation cancelled: %w", err)
	}

	var (
		records [][]string
		diags   diagnostic.Diagnostics
	)

	if merged {
		records, diags, err = Merge(ctx, docs, cfg.Separator)
	} else {
		var entries []Entry

		entries, err = FlattenFile(docs[0].Path, cfg.Separator)
		records = Records(entries)
		diags = Duplicates(docs[0].Path, entries)
	}

	if err != nil {
		return err
	}

	data, err := table.Encode(records, table.WriteOptions{Comma: cfg.Comma(), CRLF: cfg.CRLF()})
	if err != nil {
		return err
	}

	err = output.WriteFile(cfg.JSONToCSV.Output, data)
	if err != nil {
		return err
	}

	diags.Log(logger)
	logger.Info("generated", "path", cfg.JSONToCSV.Output, "documents", len(docs), "rows", len(records), "merged", merged)

	return nil
}
