// Package pipeline runs one export: list the collection, index pinned keys,
// fetch BibTeX, rewrite it and write the result.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/matsen/zotbib/internal/citekey"
	"github.com/matsen/zotbib/internal/export"
	"github.com/matsen/zotbib/internal/zotero"
)

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// Source is the part of the Zotero client the pipeline needs.
type Source interface {
	CollectionItems(ctx context.Context, collKey string) ([]zotero.Item, error)
	BibTeX(ctx context.Context, keys []string) ([]string, error)
}

// Options configures a run.
type Options struct {
	CollKey string
	OutPath string
	TypeMap export.TypeMap
	// Stdout receives the bibliography when OutPath is StdoutPath.
	Stdout io.Writer
	Logger *slog.Logger
	// Warn is called for conditions that do not stop the run.
	Warn func(msg string)
}

// Summary describes a finished run.
type Summary struct {
	Items      int      `json:"items"`
	ItemKeys   int      `json:"item_keys"`
	Pinned     int      `json:"pinned"`
	Entries    int      `json:"entries"`
	Duplicates []string `json:"duplicate_keys,omitempty"`
	Path       string   `json:"path"`
}

// Run executes the pipeline. Any fetch error aborts the run and nothing is written.
func Run(ctx context.Context, src Source, opts Options) (*Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	warn := func(msg string, args ...any) {
		logger.Warn(msg, args...)
		if opts.Warn != nil {
			opts.Warn(msg)
		}
	}

	items, err := src.CollectionItems(ctx, opts.CollKey)
	if err != nil {
		return nil, fmt.Errorf("listing collection %s: %w", opts.CollKey, err)
	}

	idx := citekey.Build(items)
	for _, title := range idx.Skipped {
		logger.Debug("skipped item without key", "title", title)
	}
	if idx.Empty() {
		warn("no items found in collection", "collection", opts.CollKey)
	}
	logger.Info("indexed collection",
		"items", len(items),
		"keys", len(idx.Keys),
		"pinned", len(idx.Pins),
		"skipped", len(idx.Skipped),
	)

	blocks, err := src.BibTeX(ctx, idx.Keys)
	if err != nil {
		return nil, fmt.Errorf("fetching bibtex: %w", err)
	}

	raw := zotero.JoinBlocks(blocks)
	final := export.NewRewriter(idx, opts.TypeMap).Rewrite(raw)

	bibIdx := export.ParseBibTeX(final)
	dups := bibIdx.Duplicates()
	if len(dups) > 0 {
		warn(fmt.Sprintf("duplicate citation keys in output: %v", dups))
	}

	if err := writeOutput(opts, final); err != nil {
		return nil, err
	}

	return &Summary{
		Items:      len(items),
		ItemKeys:   len(idx.Keys),
		Pinned:     len(idx.Pins),
		Entries:    bibIdx.Entries,
		Duplicates: dups,
		Path:       opts.OutPath,
	}, nil
}

func writeOutput(opts Options, content string) error {
	if opts.OutPath == StdoutPath {
		if opts.Stdout == nil {
			return fmt.Errorf("no stdout writer configured")
		}
		_, err := io.WriteString(opts.Stdout, content)
		return err
	}
	return export.WriteBibFile(opts.OutPath, content)
}
