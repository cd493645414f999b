// Package citekey builds the per-item lookup tables the BibTeX rewriter needs:
// pinned citation keys taken from item notes, and CSL type hints.
package citekey

import (
	"regexp"
	"strings"

	"github.com/matsen/zotbib/internal/zotero"
)

// pinLine matches a "Citation Key: <token>" line anywhere in a note.
var pinLine = regexp.MustCompile(`(?im)^[ \t]*citation[ \t]*key[ \t]*:[ \t]*(\S+)`)

// Index is built once per run from the collection listing.
type Index struct {
	// Pins maps item keys to user-pinned citation keys.
	Pins map[string]string
	// Types maps item keys to raw CSL type strings.
	Types map[string]string
	// Keys lists item keys in fetch order, duplicates included.
	Keys []string
	// Skipped holds the titles of items that had no item key.
	Skipped []string
}

// Build derives the index from items in a single pass. Items without an
// item key are skipped entirely.
func Build(items []zotero.Item) *Index {
	idx := &Index{
		Pins:  make(map[string]string),
		Types: make(map[string]string),
	}

	for _, it := range items {
		key := it.Key()
		if key == "" {
			idx.Skipped = append(idx.Skipped, it.Title)
			continue
		}
		idx.Keys = append(idx.Keys, key)

		if pin := PinnedKey(it.Note); pin != "" {
			idx.Pins[key] = pin
		}
		if t := strings.TrimSpace(it.Type); t != "" {
			idx.Types[key] = t
		}
	}

	return idx
}

// PinnedKey returns the citation key pinned in a note, or "".
func PinnedKey(note string) string {
	if m := pinLine.FindStringSubmatch(note); m != nil {
		return m[1]
	}
	return ""
}

// Pin returns the pinned key for an item key, if any.
func (idx *Index) Pin(itemKey string) (string, bool) {
	pin, ok := idx.Pins[itemKey]
	return pin, ok
}

// TypeHint returns the CSL type recorded for an item key, if any.
func (idx *Index) TypeHint(itemKey string) (string, bool) {
	t, ok := idx.Types[itemKey]
	return t, ok
}

// Empty reports whether no item keys were found.
func (idx *Index) Empty() bool {
	return len(idx.Keys) == 0
}
