package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// WriteOptions controls the output dialect.
type WriteOptions struct {
	// Comma is the field delimiter; zero means ','.
	Comma rune
	// CRLF ends lines with \r\n instead of \n.
	CRLF bool
}

// Write writes records to w.
func Write(w io.Writer, records [][]string, opts WriteOptions) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = opts.CRLF

	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}

	err := cw.WriteAll(records)
	if err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}

// Encode renders records as CSV bytes.
func Encode(records [][]string, opts WriteOptions) ([]byte, error) {
	var buf bytes.Buffer

	err := Write(&buf, records, opts)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
