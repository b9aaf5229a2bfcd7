package flatten

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"i18n-converter/internal/diagnostic"
	"i18n-converter/internal/locale"
)

var documentExts = []string{".json", ".yaml", ".yml"}

// Document is one input file and the language it holds.
type Document struct {
	Path     string
	Language locale.Tag
}

// LanguageFromFilename infers the tag from the file name:
// "locales/hr.json" holds "hr", "en-US.yaml" holds "en-US".
func LanguageFromFilename(path string) (locale.Tag, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)

	if slices.Contains(documentExts, strings.ToLower(ext)) {
		base = strings.TrimSuffix(base, ext)
	}

	if base == "" || base == "." {
		return "", fmt.Errorf("cannot infer language from file name %q", path)
	}

	return locale.Tag(base), nil
}

// ResolveInputs expands inputs into documents and reports whether they are
// merged. A single directory yields every JSON or YAML file directly inside
// it, in name order. Languages are inferred from file names only when
// merging; a lone file keeps an empty Language.
func ResolveInputs(inputs []string) ([]Document, bool, error) {
	if len(inputs) == 0 {
		return nil, false, ErrNoInputs
	}

	paths := inputs
	merged := len(inputs) > 1

	if len(inputs) == 1 {
		info, err := os.Stat(inputs[0])
		if err == nil && info.IsDir() {
			paths, err = listDocuments(inputs[0])
			if err != nil {
				return nil, false, err
			}

			merged = true
		}
	}

	if !merged {
		return []Document{{Path: paths[0]}}, false, nil
	}

	docs := make([]Document, 0, len(paths))

	for _, p := range paths {
		tag, err := LanguageFromFilename(p)
		if err != nil {
			return nil, false, err
		}

		docs = append(docs, Document{Path: p, Language: tag})
	}

	return docs, true, nil
}

func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string

	for _, e := range entries {
		if e.IsDir() || !slices.Contains(documentExts, strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}

		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in directory %s", ErrNoInputs, dir)
	}

	return paths, nil
}

// Merge flattens every document and joins them into one table: a header
// "key,<languages>" followed by one row per key. Languages are sorted,
// keys are sorted with a locale-aware collator, missing cells are empty.
// Documents are decoded concurrently; keys collapsed within a document
// are reported in input order.
func Merge(ctx context.Context, docs []Document, sep string) ([][]string, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	if len(docs) == 0 {
		return nil, diags, ErrNoInputs
	}

	langs := make([]string, 0, len(docs))

	for _, doc := range docs {
		if slices.Contains(langs, string(doc.Language)) {
			return nil, diags, fmt.Errorf("%s: language %q given twice", doc.Path, doc.Language)
		}

		langs = append(langs, string(doc.Language))
	}

	flattened := make([][]Entry, len(docs))
	perDoc := make([]diagnostic.Diagnostics, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, doc := range docs {
		g.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err
			}

			entries, err := FlattenFile(doc.Path, sep)
			if err != nil {
				return err
			}

			flattened[i] = entries
			perDoc[i] = Duplicates(doc.Path, entries)

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, diags, err
	}

	for _, d := range perDoc {
		diags.Merge(d)
	}

	values := make(map[string]map[locale.Tag]string)

	for i, doc := range docs {
		for _, e := range flattened[i] {
			byLang, ok := values[e.Key]
			if !ok {
				byLang = make(map[locale.Tag]string, len(docs))
				values[e.Key] = byLang
			}

			byLang[doc.Language] = e.Value.Text()
		}
	}

	if len(values) == 0 {
		return nil, diags, ErrNoKeys
	}

	slices.Sort(langs)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}

	collate.New(language.Und).SortStrings(keys)

	records := make([][]string, 0, len(keys)+1)
	records = append(records, append([]string{"key"}, langs...))

	for _, k := range keys {
		row := make([]string, 0, len(langs)+1)
		row = append(row, k)

		for _, l := range langs {
			row = append(row, values[k][locale.Tag(l)])
		}

		records = append(records, row)
	}

	return records, diags, nil
}
