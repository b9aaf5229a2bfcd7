package diagnostic

import (
	"fmt"
	"log/slog"
	"strings"
)

// Codes of the findings reported by the converter.
const (
	CodeDuplicateKey   = "duplicate-key"
	CodeEmptyKey       = "empty-key"
	CodeMissingDefault = "missing-default"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is one finding tied to an input row.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding.
	Code    string
	Message string
	Source  string
	Line    int
	// Key is the composite key of the row (if any).
	Key string
}

// String formats the diagnostic as "source:line key: [code] message".
func (d Diagnostic) String() string {
	var prefix []string

	switch {
	case d.Source != "" && d.Line > 0:
		prefix = append(prefix, fmt.Sprintf("%s:%d", d.Source, d.Line))
	case d.Line > 0:
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	case d.Source != "":
		prefix = append(prefix, d.Source)
	}

	if d.Key != "" {
		prefix = append(prefix, fmt.Sprintf("%q", d.Key))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics holds the findings of one run in the order they occurred.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add records d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == SeverityWarning {
		d.Warnings = append(d.Warnings, diag)
		return
	}

	d.Infos = append(d.Infos, diag)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, source string, line int, key string) {
	d.Add(Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Source:   source,
		Line:     line,
		Key:      key,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, source string, line int, key string) {
	d.Add(Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Source:   source,
		Line:     line,
		Key:      key,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Len returns the number of findings.
func (d *Diagnostics) Len() int {
	return len(d.Warnings) + len(d.Infos)
}

// Codes returns the codes of all findings, warnings first.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, d.Len())

	for _, w := range d.Warnings {
		codes = append(codes, w.Code)
	}

	for _, i := range d.Infos {
		codes = append(codes, i.Code)
	}

	return codes
}

// Log writes warnings at warn level and infos at info level.
func (d *Diagnostics) Log(logger *slog.Logger) {
	for _, w := range d.Warnings {
		logger.Warn(w.Message, w.attrs()...)
	}

	for _, i := range d.Infos {
		logger.Info(i.Message, i.attrs()...)
	}
}

func (d Diagnostic) attrs() []any {
	attrs := []any{"code", d.Code}

	if d.Source != "" {
		attrs = append(attrs, "source", d.Source)
	}

	if d.Line > 0 {
		attrs = append(attrs, "line", d.Line)
	}

	if d.Key != "" {
		attrs = append(attrs, "key", d.Key)
	}

	return attrs
}
