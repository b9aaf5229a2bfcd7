// Package locale defines the closed set of language tags a string table is
// translated into and the per-key record of localized values.
package locale

import (
	"errors"
	"fmt"
	"strings"
)

// Tag is a language code such as "hr".
type Tag string

// Default tag set of the string tables.
const (
	Croatian  Tag = "hr"
	Slovenian Tag = "sl"
	Serbian   Tag = "rs"
)

var (
	ErrEmptySet        = errors.New("locale: tag set cannot be empty")
	ErrEmptyTag        = errors.New("locale: tag cannot be empty")
	ErrDuplicateTag    = errors.New("locale: duplicate tag")
	ErrUnknownFallback = errors.New("locale: default tag is not in the set")
)

// Set is an ordered list of tags with one designated default.
type Set struct {
	tags []Tag
	def  Tag
}

// DefaultSet returns hr, sl, rs with hr as the default.
func DefaultSet() Set {
	return Set{tags: []Tag{Croatian, Slovenian, Serbian}, def: Croatian}
}

// NewSet validates tags and def. An empty def selects the first tag.
func NewSet(tags []Tag, def Tag) (Set, error) {
	if len(tags) == 0 {
		return Set{}, ErrEmptySet
	}

	seen := make(map[Tag]struct{}, len(tags))

	for _, tag := range tags {
		if tag == "" {
			return Set{}, ErrEmptyTag
		}

		if _, ok := seen[tag]; ok {
			return Set{}, fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
		}

		seen[tag] = struct{}{}
	}

	if def == "" {
		def = tags[0]
	}

	if _, ok := seen[def]; !ok {
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownFallback, def)
	}

	return Set{tags: append([]Tag(nil), tags...), def: def}, nil
}

// ParseTags splits a comma-separated list, trimming blanks.
func ParseTags(list string) []Tag {
	var tags []Tag

	for part := range strings.SplitSeq(list, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, Tag(part))
		}
	}

	return tags
}

// Tags returns the tags in column order.
func (s Set) Tags() []Tag {
	return append([]Tag(nil), s.tags...)
}

// Default returns the fallback tag.
func (s Set) Default() Tag {
	return s.def
}

// Len returns the number of tags.
func (s Set) Len() int {
	return len(s.tags)
}

// Contains reports whether tag belongs to the set.
func (s Set) Contains(tag Tag) bool {
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}

	return false
}

// String renders the set as "hr,sl,rs (default hr)".
func (s Set) String() string {
	parts := make([]string, len(s.tags))
	for i, t := range s.tags {
		parts[i] = string(t)
	}

	return fmt.Sprintf("%s (default %s)", strings.Join(parts, ","), s.def)
}
