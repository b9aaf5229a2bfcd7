// Package tree provides the ordered nested document shared by both
// conversions.
//
// A Node is either a leaf holding one JSON value or a branch mapping key
// segments to child nodes. Branches remember the order in which keys were
// first inserted; setting an existing key replaces its value in place. That
// order is preserved through decoding (JSON and YAML) and encoding, so a
// document is written back with the key order it was read or built with.
//
// Leaves store their value as compact JSON text. Strings and null are what
// the CSV builder produces; numbers, booleans and arrays only come from
// decoded documents and are never looked into.
package tree
