// Package builder turns a dotted-key CSV table into one nested JSON
// document per language.
//
// Each row holds a composite key followed by one value column per language
// tag. Rows are first collected into an ordered mapping from key path to
// localized record, where a repeated key replaces the earlier record but
// keeps its position. Every language tree is then built from that mapping;
// a key without a value for the language takes the default language's
// value, or null when that is missing as well.
package builder
