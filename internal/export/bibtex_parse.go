package export

import (
	"regexp"
	"sort"
	"strings"
)

// BibTeXIndex summarizes the entries of a BibTeX text.
type BibTeXIndex struct {
	// Keys maps citation keys to the number of entries using them
	Keys map[string]int
	// Types maps entry types to their entry counts
	Types map[string]int
	// Entries is the total number of entry headers seen
	Entries int
}

// NewBibTeXIndex creates an empty BibTeX index.
func NewBibTeXIndex() *BibTeXIndex {
	return &BibTeXIndex{
		Keys:  make(map[string]int),
		Types: make(map[string]int),
	}
}

// Match entry start: @type{key,
var entryStartRegex = regexp.MustCompile(`@(\w+)\{([^,\n]+),`)

// ParseBibTeX builds an index from BibTeX text. Line length is unbounded.
func ParseBibTeX(bib string) *BibTeXIndex {
	idx := NewBibTeXIndex()

	for _, m := range entryStartRegex.FindAllStringSubmatch(bib, -1) {
		idx.Entries++
		idx.Types[strings.ToLower(m[1])]++
		idx.Keys[strings.TrimSpace(m[2])]++
	}

	return idx
}

// Duplicates returns the citation keys used by more than one entry, sorted.
func (idx *BibTeXIndex) Duplicates() []string {
	var dups []string
	for k, n := range idx.Keys {
		if n > 1 {
			dups = append(dups, k)
		}
	}
	sort.Strings(dups)
	return dups
}
