// Package main provides the CLI entrypoint for i18n-converter.
//
// i18n-converter turns a CSV table of localized strings into one nested
// JSON document per language, and flattens such documents back into CSV:
//
//	i18n-converter csv-to-json [input.csv] [-o DIR] [-l hr,sl,rs] [-f hr]
//	i18n-converter json-to-csv [inputs...] [-o output.csv]
//
// Without arguments both commands use input/ and output/ next to the binary.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"i18n-converter/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()

	if err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}
