package builder

import (
	"fmt"
	"log/slog"
	"strings"

	"i18n-converter/internal/diagnostic"
	"i18n-converter/internal/keypath"
	"i18n-converter/internal/locale"
	"i18n-converter/internal/table"
	"i18n-converter/internal/tree"
)

// Options configures how rows are read.
type Options struct {
	// Languages maps value columns to tags. An empty set is read from
	// the header row, which requires Header.
	Languages locale.Set

	// Separator splits keys into segments (default ".").
	Separator string

	// KeyColumn is the index of the key column; values follow it.
	KeyColumn int

	// Header skips the first row.
	Header bool

	// FallbackOnEmpty treats empty cells as absent.
	FallbackOnEmpty bool

	// HeaderFallback is the default tag for languages read from the
	// header. Empty selects the first header language.
	HeaderFallback locale.Tag

	Logger *slog.Logger
}

// Builder converts rows into language trees.
type Builder struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Builder.
func New(opts Options) *Builder {
	if opts.Separator == "" {
		opts.Separator = keypath.DefaultSeparator
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{opts: opts, logger: logger}
}

type entry struct {
	key    string
	path   keypath.Path
	record *locale.Record
	line   int
}

// Collection is the ordered mapping from key path to localized record.
type Collection struct {
	source  string
	langs   locale.Set
	entries []*entry
	index   map[string]int
	diags   diagnostic.Diagnostics
}

// NewCollection returns an empty mapping for langs.
func NewCollection(source string, langs locale.Set) *Collection {
	return &Collection{
		source: source,
		langs:  langs,
		index:  make(map[string]int),
	}
}

// Put stores record for path. A path seen before keeps its position and
// takes the new record; Put then reports the line it replaced.
func (c *Collection) Put(key string, path keypath.Path, record *locale.Record, line int) (int, bool) {
	if i, ok := c.index[path.Key()]; ok {
		prev := c.entries[i].line
		c.entries[i].record = record
		c.entries[i].line = line

		return prev, true
	}

	c.index[path.Key()] = len(c.entries)
	c.entries = append(c.entries, &entry{key: key, path: path, record: record, line: line})

	return 0, false
}

// Languages returns the tag set the rows were read with.
func (c *Collection) Languages() locale.Set {
	return c.langs
}

// Len returns the number of distinct key paths.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Diagnostics returns the findings recorded while collecting rows.
func (c *Collection) Diagnostics() diagnostic.Diagnostics {
	return c.diags
}

// Collect parses rows into a Collection. source names the input in errors.
func (b *Builder) Collect(source string, rows []table.Row) (*Collection, error) {
	langs := b.opts.Languages

	if b.opts.Header && len(rows) > 0 {
		if langs.Len() == 0 {
			detected, err := b.languagesFromHeader(rows[0])
			if err != nil {
				return nil, &RowError{Source: source, Line: rows[0].Line, Err: err}
			}

			langs = detected
			b.logger.Debug("languages read from header", "source", source, "languages", langs.String())
		}

		rows = rows[1:]
	}

	if langs.Len() == 0 {
		return nil, fmt.Errorf("%s: %w: configure languages or enable the header row", source, ErrNoLanguages)
	}

	c := NewCollection(source, langs)

	tags := langs.Tags()
	minFields := b.opts.KeyColumn + 2

	for _, row := range rows {
		if len(row.Fields) < minFields {
			key, _ := row.Field(b.opts.KeyColumn)

			return nil, &RowError{
				Source: source,
				Line:   row.Line,
				Key:    key,
				Err: fmt.Errorf("%w: row has %d column(s), need the key and a %q value",
					ErrMissingField, len(row.Fields), tags[0]),
			}
		}

		key, _ := row.Field(b.opts.KeyColumn)
		if key == "" {
			c.diags.AddInfo(diagnostic.CodeEmptyKey, "row without key skipped", source, row.Line, "")
			continue
		}

		path, err := keypath.Parse(key, b.opts.Separator)
		if err != nil {
			return nil, &RowError{Source: source, Line: row.Line, Key: key, Err: err}
		}

		record := locale.NewRecord()

		for i, tag := range tags {
			v, ok := row.Field(b.opts.KeyColumn + 1 + i)
			if !ok || (b.opts.FallbackOnEmpty && v == "") {
				continue
			}

			record.Set(tag, v)
		}

		if _, ok := record.Get(langs.Default()); !ok {
			c.diags.AddWarning(diagnostic.CodeMissingDefault,
				fmt.Sprintf("no %q value, languages without their own value get null", langs.Default()),
				source, row.Line, key)
		}

		if prev, replaced := c.Put(key, path, record, row.Line); replaced {
			c.diags.AddWarning(diagnostic.CodeDuplicateKey,
				fmt.Sprintf("duplicate key replaces the row at line %d", prev), source, row.Line, key)
		}
	}

	b.logger.Debug("rows collected", "source", source, "rows", len(rows), "keys", c.Len())

	return c, nil
}

// languagesFromHeader reads tags from the cells after the key column,
// ignoring blanks and a column literally named "key".
func (b *Builder) languagesFromHeader(header table.Row) (locale.Set, error) {
	var tags []locale.Tag

	for i := b.opts.KeyColumn + 1; i < len(header.Fields); i++ {
		name := strings.TrimSpace(header.Fields[i])
		if name == "" || strings.EqualFold(name, "key") {
			continue
		}

		tags = append(tags, locale.Tag(name))
	}

	if len(tags) == 0 {
		return locale.Set{}, fmt.Errorf("%w in header row", ErrNoLanguages)
	}

	return locale.NewSet(tags, b.opts.HeaderFallback)
}

// Tree builds the nested document for tag.
func (c *Collection) Tree(tag locale.Tag) (*tree.Node, error) {
	if !c.langs.Contains(tag) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, tag)
	}

	def := c.langs.Default()
	root := tree.NewBranch()

	for _, e := range c.entries {
		leaf := tree.Null()
		if v, ok := e.record.Resolve(tag, def); ok {
			leaf = tree.String(v)
		}

		err := root.Insert(e.path, leaf)
		if err != nil {
			return nil, &RowError{Source: c.source, Line: e.line, Key: e.key, Err: err}
		}
	}

	return root, nil
}

// Result holds one tree per language in column order.
type Result struct {
	Languages   locale.Set
	Trees       map[locale.Tag]*tree.Node
	Diagnostics diagnostic.Diagnostics
}

// Build collects rows and builds every language tree.
func (b *Builder) Build(source string, rows []table.Row) (*Result, error) {
	c, err := b.Collect(source, rows)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Languages:   c.Languages(),
		Trees:       make(map[locale.Tag]*tree.Node, c.Languages().Len()),
		Diagnostics: c.Diagnostics(),
	}

	for _, tag := range res.Languages.Tags() {
		root, err := c.Tree(tag)
		if err != nil {
			return nil, err
		}

		res.Trees[tag] = root
	}

	return res, nil
}
