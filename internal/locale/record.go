package locale

// Record holds the optional value of one key for every tag.
// A tag without an entry is absent, which is distinct from an empty string.
type Record struct {
	values map[Tag]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[Tag]string)}
}

// Set stores value for tag.
func (r *Record) Set(tag Tag, value string) {
	r.values[tag] = value
}

// Get returns the value for tag and whether it is present.
func (r *Record) Get(tag Tag) (string, bool) {
	v, ok := r.values[tag]

	return v, ok
}

// Resolve returns the value for tag, falling back to def when tag is absent.
// The fallback is a single step: other tags are never consulted.
// ok is false when neither tag has a value.
func (r *Record) Resolve(tag, def Tag) (string, bool) {
	if v, ok := r.values[tag]; ok {
		return v, true
	}

	v, ok := r.values[def]

	return v, ok
}
