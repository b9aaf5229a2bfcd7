package table

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrInputNotFound is returned when an input file is missing or unreadable.
	ErrInputNotFound = errors.New("input not found")

	// ErrInvalidEncoding is returned for input that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// ReadInput returns the contents of path as UTF-8 text without a byte
// order mark. Invalid UTF-8 fails with the line of the first bad byte.
func ReadInput(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
		}

		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return text, nil
}

// DecodeText validates data as UTF-8 and strips a leading byte order mark.
func DecodeText(data []byte) ([]byte, error) {
	if pos := invalidOffset(data); pos >= 0 {
		line := 1 + bytes.Count(data[:pos], []byte{'\n'})

		return nil, fmt.Errorf("%w: line %d: byte 0x%02x", ErrInvalidEncoding, line, data[pos])
	}

	// data is valid UTF-8, so only the BOM is affected
	text, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return nil, fmt.Errorf("decoding text: %w", err)
	}

	return text, nil
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}

		i += size
	}

	return -1
}
