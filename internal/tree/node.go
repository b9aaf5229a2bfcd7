package tree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"i18n-converter/internal/keypath"
)

var nullValue = json.RawMessage("null")

// Node is a leaf value or an ordered branch.
type Node struct {
	kind Kind

	// leaf
	value json.RawMessage

	// branch
	keys     []string
	children map[string]*Node
}

// NewBranch returns an empty branch.
func NewBranch() *Node {
	return &Node{kind: KindBranch, children: make(map[string]*Node)}
}

// Leaf wraps a JSON value. raw must be valid JSON; it is stored compacted.
func Leaf(raw json.RawMessage) *Node {
	var buf bytes.Buffer

	err := json.Compact(&buf, raw)
	if err != nil {
		return &Node{kind: KindLeaf, value: append(json.RawMessage(nil), raw...)}
	}

	return &Node{kind: KindLeaf, value: buf.Bytes()}
}

// String returns a string leaf.
func String(s string) *Node {
	raw, _ := encodeValue(s)

	return &Node{kind: KindLeaf, value: raw}
}

// Null returns a null leaf.
func Null() *Node {
	return &Node{kind: KindLeaf, value: nullValue}
}

// Kind returns the node variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsLeaf reports whether n holds a value.
func (n *Node) IsLeaf() bool {
	return n.kind == KindLeaf
}

// IsBranch reports whether n holds children.
func (n *Node) IsBranch() bool {
	return n.kind == KindBranch
}

// Text renders a leaf as a table cell: strings verbatim, null as "",
// anything else as its compact JSON text. Branches render as "".
func (n *Node) Text() string {
	if n.kind != KindLeaf || len(n.value) == 0 {
		return ""
	}

	switch n.value[0] {
	case '"':
		var s string

		err := json.Unmarshal(n.value, &s)
		if err == nil {
			return s
		}
	case 'n':
		if bytes.Equal(n.value, nullValue) {
			return ""
		}
	}

	return string(n.value)
}

// Keys returns branch keys in insertion order.
func (n *Node) Keys() []string {
	return append([]string(nil), n.keys...)
}

// Len returns the number of children of a branch.
func (n *Node) Len() int {
	return len(n.keys)
}

// Child looks up a direct child of a branch.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.children[key]

	return c, ok
}

// Set stores child under key. An existing key keeps its position.
// Set panics on a leaf.
func (n *Node) Set(key string, child *Node) {
	if n.kind != KindBranch {
		panic(fmt.Sprintf("tree: Set(%q) on %s", key, n.kind))
	}

	if _, ok := n.children[key]; !ok {
		n.keys = append(n.keys, key)
	}

	n.children[key] = child
}

// Insert places leaf at p, creating intermediate branches on demand and
// reusing those shared with earlier paths. A leaf already stored at p is
// replaced. Descending through a leaf, or replacing a branch with a leaf,
// fails with ErrPathConflict.
func (n *Node) Insert(p keypath.Path, leaf *Node) error {
	if n.kind != KindBranch {
		return ErrNotBranch
	}

	if p.Len() == 0 {
		return ErrEmptyPath
	}

	current := n
	walked := keypath.New()

	for _, seg := range p.Parent() {
		walked = walked.Child(seg)

		next, ok := current.children[seg]
		if !ok {
			next = NewBranch()
			current.Set(seg, next)
		}

		if !next.IsBranch() {
			return fmt.Errorf("%w: %q", ErrPathConflict, walked.String())
		}

		current = next
	}

	if existing, ok := current.children[p.Last()]; ok && existing.IsBranch() {
		return fmt.Errorf("%w: %q", ErrPathConflict, p.String())
	}

	current.Set(p.Last(), leaf)

	return nil
}

// Equal compares structure, key order and leaf values.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	if n.kind != other.kind {
		return false
	}

	if n.kind == KindLeaf {
		return bytes.Equal(n.value, other.value)
	}

	if len(n.keys) != len(other.keys) {
		return false
	}

	for i, key := range n.keys {
		if other.keys[i] != key {
			return false
		}

		if !n.children[key].Equal(other.children[key]) {
			return false
		}
	}

	return true
}
