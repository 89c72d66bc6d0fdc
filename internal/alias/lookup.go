// ABOUTME: Alias file lookup for the three generic font categories
// ABOUTME: Reads and trims font family names and lists known aliases
package alias

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

type Category string

const (
	Sans      Category = "sans"
	Serif     Category = "serif"
	Monospace Category = "monospace"
)

// Categories lists the categories in lookup order.
var Categories = []Category{Sans, Serif, Monospace}

// ParseCategory maps a user-supplied name to a Category
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (want sans, serif or monospace)", name)
}

// Selection is the resolved family name for each category.
type Selection struct {
	SansAlias      string
	SerifAlias     string
	MonospaceAlias string

	Sans      string
	Serif     string
	Monospace string
}

// ReadFontName reads root/category/id and returns its trimmed content.
func ReadFontName(root string, category Category, id string) (string, error) {
	if err := validateAlias(id); err != nil {
		return "", &LookupError{Kind: KindInvalidAlias, Category: category, Alias: id, Err: err}
	}

	path := filepath.Join(root, string(category), id)

	f, err := os.Open(path)
	if err != nil {
		return "", &LookupError{Kind: KindOpen, Category: category, Path: path, Alias: id, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &LookupError{Kind: KindRead, Category: category, Path: path, Alias: id, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &LookupError{Kind: KindRead, Category: category, Path: path, Alias: id, Err: ErrInvalidEncoding}
	}

	return strings.TrimSpace(string(data)), nil
}

// Resolve looks up sans, serif and monospace in that order.
// The first failure stops the lookup and is returned as-is.
func Resolve(root, sans, serif, monospace string, onFound func(Category, string)) (Selection, error) {
	sel := Selection{SansAlias: sans, SerifAlias: serif, MonospaceAlias: monospace}

	targets := []struct {
		category Category
		id       string
		dst      *string
	}{
		{Sans, sans, &sel.Sans},
		{Serif, serif, &sel.Serif},
		{Monospace, monospace, &sel.Monospace},
	}

	for _, t := range targets {
		name, err := ReadFontName(root, t.category, t.id)
		if err != nil {
			return sel, err
		}
		*t.dst = name
		if onFound != nil {
			onFound(t.category, name)
		}
	}

	return sel, nil
}

// List returns the sorted alias names available for category.
// When pattern is non-empty only names matching the glob are returned.
func List(root string, category Category, pattern string) ([]string, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	dir := filepath.Join(root, string(category))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if pattern != "" {
			ok, _ := doublestar.Match(pattern, name)
			if !ok {
				continue
			}
		}
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

// validateAlias rejects identifiers that would escape the category directory.
func validateAlias(id string) error {
	if id == "" || id == "." || id == ".." {
		return ErrInvalidAlias
	}
	if strings.ContainsRune(id, '/') || strings.ContainsRune(id, '\\') || strings.ContainsRune(id, filepath.Separator) {
		return ErrInvalidAlias
	}
	return nil
}
