package tree

import "errors"

var (
	ErrPathConflict  = errors.New("tree: key is used both as a value and as a parent")
	ErrEmptyPath     = errors.New("tree: path has no segments")
	ErrNotBranch     = errors.New("tree: node is not a branch")
	ErrMalformedJSON = errors.New("tree: malformed JSON")
	ErrMalformedYAML = errors.New("tree: malformed YAML")
)
