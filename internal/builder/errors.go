package builder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField    = errors.New("missing field")
	ErrNoLanguages     = errors.New("no language columns")
	ErrUnknownLanguage = errors.New("unknown language")
)

// RowError locates a failure in the input table.
type RowError struct {
	Source string
	Line   int
	Key    string
	Err    error
}

func (e *RowError) Error() string {
	var b strings.Builder

	if e.Source != "" {
		b.WriteString(e.Source)
		b.WriteString(":")
	}

	fmt.Fprintf(&b, "%d: ", e.Line)

	if e.Key != "" {
		fmt.Fprintf(&b, "key %q: ", e.Key)
	}

	b.WriteString(e.Err.Error())

	return b.String()
}

func (e *RowError) Unwrap() error {
	return e.Err
}
