package zotero

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// TotalResultsHeader carries the server's item count for a listing query.
const TotalResultsHeader = "Total-Results"

// CollectionItems fetches every top-level item of a collection as CSL-JSON.
//
// Pages of PageSize are requested from start 0, each start advancing by the
// number of items received. Fetching stops on a short page or once the
// accumulated count reaches Total-Results. When that header is missing the
// page length stands in for the total, so only one page is read.
func (c *Client) CollectionItems(ctx context.Context, collKey string) ([]Item, error) {
	var all []Item
	start := 0

	for {
		query := url.Values{}
		query.Set("format", "csljson")
		query.Set("recursive", "1")
		query.Set("top", "1")
		query.Set("limit", strconv.Itoa(PageSize))
		query.Set("start", strconv.Itoa(start))
		pageURL := c.libraryURL("/collections/"+url.PathEscape(collKey)+"/items", query)

		header, body, err := c.get(ctx, pageURL, true)
		if err != nil {
			return nil, err
		}

		items, err := decodeItems(body)
		if err != nil {
			return nil, err
		}

		total := parseTotal(header.Get(TotalResultsHeader), len(items))
		all = append(all, items...)
		c.logger.Info("fetched collection page",
			"items", len(items),
			"start", start,
			"total", total,
		)

		start += len(items)
		if len(items) < PageSize || len(all) >= total {
			break
		}
	}

	return all, nil
}

// parseTotal reads a Total-Results value, falling back when absent or malformed.
func parseTotal(v string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}
