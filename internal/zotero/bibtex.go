package zotero

import (
	"context"
	"net/url"
	"strings"
)

// BibTeX fetches the BibTeX export of the given item keys, BatchSize keys per
// request, and returns one raw text block per batch in request order.
func (c *Client) BibTeX(ctx context.Context, keys []string) ([]string, error) {
	var blocks []string

	for _, batch := range Batches(keys, BatchSize) {
		query := url.Values{}
		query.Set("format", "bibtex")
		query.Set("itemKey", strings.Join(batch, ","))
		batchURL := c.libraryURL("/items", query)

		_, body, err := c.get(ctx, batchURL, false)
		if err != nil {
			return nil, err
		}

		c.logger.Debug("fetched bibtex batch", "keys", len(batch), "bytes", len(body))
		blocks = append(blocks, string(body))
	}

	return blocks, nil
}

// Batches splits keys into contiguous chunks of at most size elements.
func Batches(keys []string, size int) [][]string {
	if size <= 0 {
		size = BatchSize
	}
	var out [][]string
	for i := 0; i < len(keys); i += size {
		end := i + size
		if end > len(keys) {
			end = len(keys)
		}
		out = append(out, keys[i:end])
	}
	return out
}

// JoinBlocks assembles raw batch blocks into a single text. Each block is
// trimmed and newline-terminated; empty blocks are dropped and the rest are
// separated by exactly one newline.
func JoinBlocks(blocks []string) string {
	var parts []string
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		parts = append(parts, b+"\n")
	}
	return strings.Join(parts, "\n")
}
