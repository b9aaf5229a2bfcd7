package flatten

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18n-converter/internal/config"
	"i18n-converter/internal/table"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_DefaultLayout(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "input"), 0o755))
	writeFile(t, filepath.Join(base, "input"), "input.json", `{"a":{"b":1,"c":{"d":"x, y"}}}`)

	require.NoError(t, Run(context.Background(), config.Default(base), quietLogger()))

	out, err := os.ReadFile(filepath.Join(base, "output", "output.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a.b,1\r\na.c.d,\"x, y\"\r\n", string(out))
}

func TestRun_MergeDirectoryLF(t *testing.T) {
	base := t.TempDir()
	locales := filepath.Join(base, "locales")
	require.NoError(t, os.MkdirAll(locales, 0o755))
	writeFile(t, locales, "hr.json", `{"title":"Naslov"}`)
	writeFile(t, locales, "sl.yaml", "title: Naslov\nextra: Dodatno\n")

	cfg := config.Default(base)
	cfg.JSONToCSV.Inputs = []string{locales}
	cfg.JSONToCSV.LineEnding = config.LineEndingLF

	require.NoError(t, Run(context.Background(), cfg, quietLogger()))

	out, err := os.ReadFile(cfg.JSONToCSV.Output)
	require.NoError(t, err)
	assert.Equal(t, "key,hr,sl\nextra,,Dodatno\ntitle,Naslov,Naslov\n", string(out))
}

func TestRun_EmptyObjectWritesEmptyFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "input"), 0o755))
	writeFile(t, filepath.Join(base, "input"), "input.json", `{}`)

	cfg := config.Default(base)
	require.NoError(t, Run(context.Background(), cfg, quietLogger()))

	out, err := os.ReadFile(cfg.JSONToCSV.Output)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_SingleFileCollapsesAndDelimits(t *testing.T) {
	base := t.TempDir()
	input := writeFile(t, base, ".json", `{"a.b":"old","a":{"b":"new"}}`)

	var logs bytes.Buffer

	cfg := config.Default(base)
	cfg.JSONToCSV.Inputs = []string{input}
	cfg.JSONToCSV.Delimiter = ";"

	require.NoError(t, Run(context.Background(), cfg, slog.New(slog.NewTextHandler(&logs, nil))))

	out, err := os.ReadFile(cfg.JSONToCSV.Output)
	require.NoError(t, err)
	assert.Equal(t, "a.b;new\r\n", string(out))
	assert.Contains(t, logs.String(), "code=duplicate-key")
}

func TestRun_InvalidUTF8WritesNothing(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "input"), 0o755))
	writeFile(t, filepath.Join(base, "input"), "input.json", "{\"k\": \"\xa9e\xe6er\"}")

	cfg := config.Default(base)

	err := Run(context.Background(), cfg, quietLogger())
	require.ErrorIs(t, err, table.ErrInvalidEncoding)

	_, statErr := os.Stat(cfg.JSONToCSV.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_MissingInput(t *testing.T) {
	err := Run(context.Background(), config.Default(t.TempDir()), quietLogger())
	require.ErrorIs(t, err, table.ErrInputNotFound)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, config.Default(t.TempDir()), quietLogger())
	require.ErrorIs(t, err, context.Canceled)
}
