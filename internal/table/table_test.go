package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := "a.b,Hello,Pozdrav\n\na.c,World,,Svet\n\"q\"\"k\",\"x,y\"\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{Line: 1, Fields: []string{"a.b", "Hello", "Pozdrav"}}, rows[0])
	assert.Equal(t, Row{Line: 3, Fields: []string{"a.c", "World", "", "Svet"}}, rows[1])
	assert.Equal(t, Row{Line: 4, Fields: []string{`q"k`, "x,y"}}, rows[2])
}

func TestRead_BareQuotes(t *testing.T) {
	rows, err := Read(strings.NewReader("menu.quote,Rekao je \"bok\",Rekel je \"zivjo\"\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, []string{"menu.quote", `Rekao je "bok"`, `Rekel je "zivjo"`}, rows[0].Fields)
}

func TestRead_InvalidUTF8(t *testing.T) {
	_, err := Read(strings.NewReader("ok,fine\nk,\xa9e\xe6er,x\n"))
	require.ErrorIs(t, err, ErrInvalidEncoding)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRead_Malformed(t *testing.T) {
	_, err := Read(strings.NewReader("a,\"unterminated\n"))
	require.Error(t, err)
}

func TestRow_Field(t *testing.T) {
	r := Row{Fields: []string{"k", "v"}}

	v, ok := r.Field(1)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = r.Field(2)
	assert.False(t, ok)

	_, ok = r.Field(-1)
	assert.False(t, ok)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFk,v\n"), 0o644))

	rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"k", "v"}, rows[0].Fields)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, ErrInputNotFound)
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestReadFile_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin2.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\nc,d\nk,\xa9e\xe6er,x,y\n"), 0o644))

	_, err := ReadFile(path)
	require.ErrorIs(t, err, ErrInvalidEncoding)
	assert.Contains(t, err.Error(), "latin2.csv")
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadInput_Directory(t *testing.T) {
	_, err := ReadInput(t.TempDir())
	require.ErrorIs(t, err, ErrInputNotFound)
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Šećer", "Šećer"},
		{"bom", "\xEF\xBB\xBFŠećer", "Šećer"},
		{"empty", "", ""},
		{"bom only", "\xEF\xBB\xBF", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := DecodeText([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}

	_, err := DecodeText([]byte("{\n\"a\": \"\xe8\"}"))
	require.ErrorIs(t, err, ErrInvalidEncoding)
	assert.Contains(t, err.Error(), "line 2: byte 0xe8")
}

func TestEncode(t *testing.T) {
	records := [][]string{
		{"a.b", "1"},
		{"a.c", "x,y"},
		{"a.d", `say "hi"`},
	}

	t.Run("crlf", func(t *testing.T) {
		out, err := Encode(records, WriteOptions{CRLF: true})
		require.NoError(t, err)
		assert.Equal(t, "a.b,1\r\na.c,\"x,y\"\r\na.d,\"say \"\"hi\"\"\"\r\n", string(out))
	})

	t.Run("lf with semicolon", func(t *testing.T) {
		out, err := Encode(records[:1], WriteOptions{Comma: ';'})
		require.NoError(t, err)
		assert.Equal(t, "a.b;1\n", string(out))
	})
}
