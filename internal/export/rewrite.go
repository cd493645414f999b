// Package export rewrites BibTeX produced by the Zotero translator into the
// form the bibliography consumers expect, and writes it out.
package export

import (
	"regexp"
	"strings"
)

// KeyIndex provides the per-item lookups used by the header rewrite.
type KeyIndex interface {
	Pin(itemKey string) (string, bool)
	TypeHint(itemKey string) (string, bool)
}

// ProtectedFields lists the fields whose all-caps words get extra braces.
var ProtectedFields = []string{"title", "booktitle", "series", "number"}

// braced matches a brace value allowing one level of nested braces.
const braced = `((?:[^{}]|\{[^{}]*\})*)`

var (
	// Match entry header: @type{key,
	headerRegex = regexp.MustCompile(`@(\w+)\{([^,\n]+),`)
	// Match journal field; content stops at the first closing brace.
	journalRegex = regexp.MustCompile(`(?i)\bjournal\s*=\s*\{([^}]*)\}`)
	// Match a protected field: name, "= {", value, "}"
	protectedRegex = regexp.MustCompile(`(?i)\b(` + strings.Join(ProtectedFields, "|") + `)(\s*=\s*\{)` + braced + `\}`)
	// Whole-word runs of two or more capitals.
	acronymRegex = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	// Match a type field at the start of a line, keeping indent and trailing comma.
	typeFieldRegex = regexp.MustCompile(`(?im)^([ \t]*)type\s*=\s*\{` + braced + `\}(,?)`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// Rewriter applies the rewrite passes to raw BibTeX text.
type Rewriter struct {
	Index   KeyIndex
	TypeMap TypeMap
}

// NewRewriter creates a rewriter. A nil type map means DefaultTypeMap.
func NewRewriter(idx KeyIndex, types TypeMap) *Rewriter {
	if types == nil {
		types = DefaultTypeMap()
	}
	return &Rewriter{Index: idx, TypeMap: types}
}

// Rewrite runs the passes in order. Later passes rely on the shape left by
// earlier ones, so the order is fixed.
func (r *Rewriter) Rewrite(bib string) string {
	bib = r.RewriteHeaders(bib)
	bib = RenameJournal(bib)
	bib = ProtectAcronyms(bib)
	bib = CleanTypeFields(bib)
	return bib
}

// RewriteHeaders replaces each "@type{key," header with the pinned key and
// mapped type when the index has them, keeping the server's values otherwise.
func (r *Rewriter) RewriteHeaders(bib string) string {
	return headerRegex.ReplaceAllStringFunc(bib, func(m string) string {
		sub := headerRegex.FindStringSubmatch(m)
		entryType, key := sub[1], sub[2]
		itemKey := strings.TrimSpace(key)

		if r.Index != nil {
			if pin, ok := r.Index.Pin(itemKey); ok {
				key = pin
			}
			if hint, ok := r.Index.TypeHint(itemKey); ok {
				if mapped, ok := r.TypeMap.Lookup(hint); ok {
					entryType = mapped
				}
			}
		}

		return "@" + entryType + "{" + key + ","
	})
}

// RenameJournal renames every journal field to organization. This applies to
// all entry types, not only the ones mapped to online.
func RenameJournal(bib string) string {
	return journalRegex.ReplaceAllString(bib, "organization = {${1}}")
}

// ProtectAcronyms wraps all-caps words in the protected fields in double
// braces so downstream styles keep their case.
func ProtectAcronyms(bib string) string {
	return protectedRegex.ReplaceAllStringFunc(bib, func(m string) string {
		sub := protectedRegex.FindStringSubmatch(m)
		value := acronymRegex.ReplaceAllString(sub[3], "{{${0}}}")
		return sub[1] + sub[2] + value + "}"
	})
}

// CleanTypeFields strips braces from type field values and normalizes their
// whitespace, keeping indentation and the trailing comma.
func CleanTypeFields(bib string) string {
	return typeFieldRegex.ReplaceAllStringFunc(bib, func(m string) string {
		sub := typeFieldRegex.FindStringSubmatch(m)
		value := strings.NewReplacer("{", "", "}", "").Replace(sub[2])
		value = strings.TrimSpace(whitespaceRun.ReplaceAllString(value, " "))
		return sub[1] + "type = {" + value + "}" + sub[3]
	})
}
