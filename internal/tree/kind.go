package tree

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tells leaves and branches apart.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindLeaf
	KindBranch
)
