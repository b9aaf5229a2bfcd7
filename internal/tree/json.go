package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Indent is the indentation used by Marshal.
const Indent = "  "

// encodeValue encodes v without escaping HTML characters or non-ASCII text.
func encodeValue(v any) (json.RawMessage, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalJSON encodes n compactly with branch keys in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	err := n.writeCompact(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (n *Node) writeCompact(buf *bytes.Buffer) error {
	if n.kind == KindLeaf {
		if len(n.value) == 0 {
			buf.Write(nullValue)
			return nil
		}

		buf.Write(n.value)

		return nil
	}

	buf.WriteByte('{')

	for i, key := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := encodeValue(key)
		if err != nil {
			return err
		}

		buf.Write(k)
		buf.WriteByte(':')

		err = n.children[key].writeCompact(buf)
		if err != nil {
			return err
		}
	}

	buf.WriteByte('}')

	return nil
}

// Marshal renders n as indented JSON. Non-ASCII and HTML characters are
// written as-is and no trailing newline is added.
func Marshal(n *Node) ([]byte, error) {
	compact, err := n.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer

	err = json.Indent(&out, compact, "", Indent)
	if err != nil {
		return nil, fmt.Errorf("indenting document: %w", err)
	}

	return out.Bytes(), nil
}

// DecodeJSON reads exactly one JSON document from r, keeping object key
// order. Duplicate keys keep their first position and their last value.
func DecodeJSON(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw json.RawMessage

	err := dec.Decode(&raw)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedJSON)
		}

		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	_, err = dec.Token()
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after document", ErrMalformedJSON)
	}

	n, err := parseRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	return n, nil
}

func parseRaw(raw json.RawMessage) (*Node, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Leaf(trimmed), nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))

	// opening brace
	_, err := dec.Token()
	if err != nil {
		return nil, err
	}

	branch := NewBranch()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}

		var child json.RawMessage

		err = dec.Decode(&child)
		if err != nil {
			return nil, err
		}

		node, err := parseRaw(child)
		if err != nil {
			return nil, err
		}

		branch.Set(key, node)
	}

	return branch, nil
}
