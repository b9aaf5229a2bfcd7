package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Row is one record with the line it starts on.
type Row struct {
	Line   int
	Fields []string
}

// Field returns column i and whether the row has it.
func (r Row) Field(i int) (string, bool) {
	if i < 0 || i >= len(r.Fields) {
		return "", false
	}

	return r.Fields[i], true
}

// Read parses all records from r. Rows may differ in length and bare
// quotes inside unquoted cells are kept literally.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []Row

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("parsing csv: %w", err)
		}

		for i, field := range rec {
			if !utf8.ValidString(field) {
				line, col := cr.FieldPos(i)

				return nil, fmt.Errorf("%w: line %d, column %d", ErrInvalidEncoding, line, col)
			}
		}

		line, _ := cr.FieldPos(0)
		rows = append(rows, Row{Line: line, Fields: rec})
	}

	return rows, nil
}

// ReadFile reads every row of the CSV file at path.
func ReadFile(path string) ([]Row, error) {
	data, err := ReadInput(path)
	if err != nil {
		return nil, err
	}

	rows, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}
