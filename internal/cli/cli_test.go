package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18n-converter/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := Run(context.Background(), args, &stdout, &stderr)

	return stderr.String(), err
}

func TestCSVToJSON_DefaultLayout(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "input", "input.csv"), "a.b,Hello,Pozdrav\na.c,World,,Svet\n")

	logs, err := run(t, "--base-dir", base, "csv-to-json")
	require.NoError(t, err)
	assert.Contains(t, logs, "generated")

	for lang, want := range map[string]string{
		"hr": `{"a":{"b":"Hello","c":"World"}}`,
		"sl": `{"a":{"b":"Pozdrav","c":""}}`,
		"rs": `{"a":{"b":"Hello","c":"Svet"}}`,
	} {
		out, err := os.ReadFile(filepath.Join(base, "output", "output_"+lang+".json"))
		require.NoError(t, err, lang)
		assert.JSONEq(t, want, string(out), lang)
	}
}

func TestCSVToJSON_Flags(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "strings.csv")
	writeFile(t, input, "note,menu/open,Open,Öffnen\n")

	out := filepath.Join(base, "out")

	_, err := run(t, "--base-dir", base, "--log-level", "debug", "csv-to-json", input,
		"-o", out, "-l", "en, de", "-f", "de", "--key-column", "1", "-s", "/", "--pattern", "{lang}.json")
	require.NoError(t, err)

	de, err := os.ReadFile(filepath.Join(out, "de.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"menu":{"open":"Öffnen"}}`, string(de))

	en, err := os.ReadFile(filepath.Join(out, "en.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"menu":{"open":"Open"}}`, string(en))
}

func TestCSVToJSON_HeaderDetection(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "input", "input.csv"), "key,en,fr\nyes,Yes,Oui\n")

	_, err := run(t, "--base-dir", base, "csv-to-json", "--header")
	require.NoError(t, err)

	fr, err := os.ReadFile(filepath.Join(base, "output", "output_fr.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"yes":"Oui"}`, string(fr))
}

func TestCSVToJSON_ConfigFile(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "data", "table.csv"), "k,Bok,Živjo\n")
	cfgPath := filepath.Join(base, "conf", "i18n.yaml")
	writeFile(t, cfgPath, `
languages: [hr, sl]
csv_to_json:
  input: ../data/table.csv
  output_dir: ../gen
logging:
  format: json
`)

	logs, err := run(t, "--base-dir", base, "--config", cfgPath, "csv-to-json")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"generated"`)

	sl, err := os.ReadFile(filepath.Join(base, "gen", "output_sl.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"Živjo"}`, string(sl))

	_, err = os.Stat(filepath.Join(base, "gen", "output_rs.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestJSONToCSV(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "input", "input.json"), `{"a":{"b":1,"c":{"d":2}}}`)

	_, err := run(t, "--base-dir", base, "json-to-csv", "--lf")
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(base, "output", "output.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a.b,1\na.c.d,2\n", string(out))

	_, err = run(t, "--base-dir", base, "json-to-csv", "-d", ";")
	require.NoError(t, err)

	out, err = os.ReadFile(filepath.Join(base, "output", "output.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a.b;1\r\na.c.d;2\r\n", string(out))
}

func TestJSONToCSV_Merge(t *testing.T) {
	base := t.TempDir()
	hr := filepath.Join(base, "hr.json")
	sl := filepath.Join(base, "sl.json")
	writeFile(t, hr, `{"x":{"y":"Da"}}`)
	writeFile(t, sl, `{"x":{"y":"Ja"}}`)

	out := filepath.Join(base, "merged.csv")

	_, err := run(t, "--base-dir", base, "json-to-csv", sl, hr, "-o", out, "-s", "_")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "key,hr,sl\r\nx_y,Da,Ja\r\n", string(data))
}

func TestRun_Errors(t *testing.T) {
	base := t.TempDir()

	t.Run("unknown command", func(t *testing.T) {
		_, err := run(t, "--base-dir", base, "translate")
		require.Error(t, err)
	})

	t.Run("invalid flags", func(t *testing.T) {
		_, err := run(t, "--base-dir", base, "csv-to-json", "-l", "hr,sl", "-f", "de")
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("bad delimiter", func(t *testing.T) {
		_, err := run(t, "--base-dir", base, "json-to-csv", "--delimiter", "ab")
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := run(t, "--base-dir", base, "--log-level", "loud", "json-to-csv")
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := run(t, "--base-dir", base, "--config", filepath.Join(base, "none.yaml"), "json-to-csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "none.yaml")
	})
}
