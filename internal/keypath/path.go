package keypath

import (
	"errors"
	"strings"
)

// DefaultSeparator joins key segments unless configured otherwise.
const DefaultSeparator = "."

// tupleSep never occurs in CSV cells or JSON keys read as text, so
// joining on it gives a collision-free identity for a segment sequence.
const tupleSep = "\x00"

// ErrEmptySeparator is returned for a zero-length separator.
var ErrEmptySeparator = errors.New("keypath: separator cannot be empty")

// Path is an ordered sequence of key segments.
type Path struct {
	segments []string
}

// Parse splits key on sep. Empty segments ("a..b") are kept.
func Parse(key, sep string) (Path, error) {
	if sep == "" {
		return Path{}, ErrEmptySeparator
	}

	return Path{segments: strings.Split(key, sep)}, nil
}

// New builds a path from already split segments.
func New(segments ...string) Path {
	return Path{segments: append([]string(nil), segments...)}
}

// Segments returns a copy of the path segments.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Parent returns every segment except the last.
func (p Path) Parent() []string {
	if len(p.segments) == 0 {
		return nil
	}

	return p.segments[:len(p.segments)-1]
}

// Last returns the leaf segment, or "" for an empty path.
func (p Path) Last() string {
	if len(p.segments) == 0 {
		return ""
	}

	return p.segments[len(p.segments)-1]
}

// Child returns a new path extended by segment.
func (p Path) Child(segment string) Path {
	next := make([]string, len(p.segments), len(p.segments)+1)
	copy(next, p.segments)

	return Path{segments: append(next, segment)}
}

// Key returns the tuple identity of the path, usable as a map key.
func (p Path) Key() string {
	return strings.Join(p.segments, tupleSep)
}

// Join renders the path with sep between segments.
func (p Path) Join(sep string) string {
	return strings.Join(p.segments, sep)
}

// String renders the path with the default separator.
func (p Path) String() string {
	return p.Join(DefaultSeparator)
}
