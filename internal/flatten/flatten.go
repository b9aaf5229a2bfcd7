package flatten

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"i18n-converter/internal/diagnostic"
	"i18n-converter/internal/keypath"
	"i18n-converter/internal/table"
	"i18n-converter/internal/tree"
)

var (
	ErrUnexpectedShape = errors.New("top-level value is not an object")
	ErrNoInputs        = errors.New("no input documents")
	ErrNoKeys          = errors.New("no translation keys found")
)

// Entry is one leaf with its path.
type Entry struct {
	Key   string
	Path  keypath.Path
	Value *tree.Node

	// Replaced counts earlier leaves that flattened to the same Key.
	Replaced int
}

// Flatten lists every leaf of root in document order, keyed by its path
// joined with sep. Empty objects contribute nothing. Leaves whose keys
// collide, such as "a.b" and {"a":{"b":...}}, collapse into one entry at
// the first position holding the last value.
func Flatten(root *tree.Node, sep string) ([]Entry, error) {
	if root == nil || !root.IsBranch() {
		return nil, ErrUnexpectedShape
	}

	if sep == "" {
		return nil, keypath.ErrEmptySeparator
	}

	c := &collector{sep: sep, index: make(map[string]int)}
	c.walk(root, keypath.New())

	return c.entries, nil
}

type collector struct {
	sep     string
	entries []Entry
	index   map[string]int
}

func (c *collector) walk(n *tree.Node, prefix keypath.Path) {
	for _, key := range n.Keys() {
		child, _ := n.Child(key)
		p := prefix.Child(key)

		if child.IsBranch() {
			c.walk(child, p)
			continue
		}

		e := Entry{Key: p.Join(c.sep), Path: p, Value: child}

		if i, ok := c.index[e.Key]; ok {
			e.Replaced = c.entries[i].Replaced + 1
			c.entries[i] = e

			continue
		}

		c.index[e.Key] = len(c.entries)
		c.entries = append(c.entries, e)
	}
}

// Duplicates reports every collapsed key of entries as a warning.
func Duplicates(source string, entries []Entry) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, e := range entries {
		if e.Replaced == 0 {
			continue
		}

		diags.AddWarning(diagnostic.CodeDuplicateKey,
			fmt.Sprintf("%d earlier value(s) flatten to the same key, the last one is kept", e.Replaced),
			source, 0, e.Key)
	}

	return diags
}

// Records renders entries as two-column CSV records.
func Records(entries []Entry) [][]string {
	records := make([][]string, len(entries))
	for i, e := range entries {
		records[i] = []string{e.Key, e.Value.Text()}
	}

	return records
}

// Decode reads the document at path. Files ending in .yaml or .yml are
// YAML, everything else JSON.
func Decode(path string) (*tree.Node, error) {
	data, err := table.ReadInput(path)
	if err != nil {
		return nil, err
	}

	var n *tree.Node

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		n, err = tree.DecodeYAML(bytes.NewReader(data))
	default:
		n, err = tree.DecodeJSON(bytes.NewReader(data))
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// FlattenFile decodes and flattens the document at path.
func FlattenFile(path, sep string) ([]Entry, error) {
	n, err := Decode(path)
	if err != nil {
		return nil, err
	}

	entries, err := Flatten(n, sep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}
