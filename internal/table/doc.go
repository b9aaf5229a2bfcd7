// Package table reads and writes the delimited files on the CSV side of the
// conversion.
//
// Inputs are decoded as UTF-8 with a leading byte order mark removed, rows
// may have any number of columns, and blank lines are skipped. Every row
// carries its line number in the source so callers can report the row that
// failed. Output follows the default CSV quoting rules.
package table
