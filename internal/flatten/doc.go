// Package flatten turns nested JSON (or YAML) documents into dotted-key CSV
// rows.
//
// Objects are walked depth first in document order; every other value,
// arrays included, is a leaf written as one row. A single document gives a
// two-column table without a header. Several documents, one per language,
// are merged into one table with a header row and one column per language.
package flatten
