package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matsen/zotbib/internal/pipeline"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputSummary reports a finished run in the selected format.
func outputSummary(w io.Writer, sum *pipeline.Summary) error {
	if !humanOutput {
		return outputJSON(w, sum)
	}

	fmt.Fprintf(w, "Wrote %d entries to %s (%d pinned keys)\n", sum.Entries, sum.Path, sum.Pinned)
	if len(sum.Duplicates) > 0 {
		fmt.Fprintf(w, "Duplicate keys: %v\n", sum.Duplicates)
	}
	return nil
}
