// Package zotero provides a client for the Zotero Web API (v3).
package zotero

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleString can unmarshal from either string or number JSON values.
// CSL-JSON allows numeric ids.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleString(n.String())
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*f = FlexibleString(strconv.Itoa(i))
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleString", string(data))
}

func (f FlexibleString) String() string {
	return string(f)
}

// Item is one CSL-JSON entry as returned by the collection items endpoint.
// Only the fields used downstream are decoded; everything else is ignored.
type Item struct {
	ID    FlexibleString `json:"id"`
	Type  string         `json:"type,omitempty"`
	Note  string         `json:"note,omitempty"`
	Title string         `json:"title,omitempty"`
}

// Key returns the item key, i.e. the part of ID after the last "/".
// Returns "" when there is none.
func (it Item) Key() string {
	return ItemKey(it.ID.String())
}

// ItemKey extracts the item key from a "<libraryId>/<itemKey>" identifier.
func ItemKey(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// decodeItems normalizes a collection page body. A bare array is used as is,
// an object with an "items" array yields that array, anything else is empty.
func decodeItems(body []byte) ([]Item, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var items []Item
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("%w: parsing item list: %v", ErrInvalidResponse, err)
		}
		return items, nil
	case '{':
		var wrapper struct {
			Items json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(body, &wrapper); err != nil {
			return nil, fmt.Errorf("%w: parsing item wrapper: %v", ErrInvalidResponse, err)
		}
		raw := strings.TrimSpace(string(wrapper.Items))
		if !strings.HasPrefix(raw, "[") {
			return nil, nil
		}
		var items []Item
		if err := json.Unmarshal(wrapper.Items, &items); err != nil {
			return nil, fmt.Errorf("%w: parsing items field: %v", ErrInvalidResponse, err)
		}
		return items, nil
	default:
		return nil, nil
	}
}
