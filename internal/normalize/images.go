// Package normalize reconciles the historical data shapes a property record
// may arrive in, and builds the canonical submission payload going back out.
package normalize

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ImageShape is one of the four shapes image data has been persisted under.
// The set is closed: DetectImageShape returns exactly one of StringList,
// URLObjectList, URLsWrapper, or KeyedSlots.
type ImageShape interface {
	imageShape()
	// URLStrings flattens the shape into an ordered list of URL strings.
	URLStrings() []string
}

// StringList is the modern array-of-strings shape: ["https://...", ...].
type StringList []string

// URLObjectList is the array-of-objects shape: [{"url": "..."}, ...].
type URLObjectList []ImageEntry

// ImageEntry is one element of a URLObjectList.
type ImageEntry struct {
	URL string `json:"url"`
}

// URLsWrapper is the canonical object shape: {"urls": [...]}.
type URLsWrapper struct {
	URLs []string `json:"urls"`
}

// KeyedSlots is the legacy per-slot object shape: {"main": "...",
// "gallery1": "...", ...}. Slot order is not stored, so slots flatten in
// sorted key order for determinism.
type KeyedSlots map[string]string

func (StringList) imageShape()    {}
func (URLObjectList) imageShape() {}
func (URLsWrapper) imageShape()   {}
func (KeyedSlots) imageShape()    {}

func (s StringList) URLStrings() []string { return nonEmpty(s) }

func (l URLObjectList) URLStrings() []string {
	urls := make([]string, 0, len(l))
	for _, e := range l {
		if e.URL != "" {
			urls = append(urls, e.URL)
		}
	}
	return urls
}

func (w URLsWrapper) URLStrings() []string { return nonEmpty(w.URLs) }

func (k KeyedSlots) URLStrings() []string {
	keys := make([]string, 0, len(k))
	for key := range k {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		if k[key] != "" {
			urls = append(urls, k[key])
		}
	}
	return urls
}

// DetectImageShape classifies raw image JSON into one of the four shapes.
// Null or absent data is an empty StringList.
func DetectImageShape(raw json.RawMessage) (ImageShape, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return StringList(nil), nil
	}

	var anyList []json.RawMessage
	if err := json.Unmarshal(raw, &anyList); err == nil {
		if len(anyList) == 0 {
			return StringList(nil), nil
		}
		var s string
		if json.Unmarshal(anyList[0], &s) == nil {
			var list StringList
			if err := json.Unmarshal(raw, &list); err != nil {
				return nil, fmt.Errorf("mixed image array: %w", err)
			}
			return list, nil
		}
		var list URLObjectList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("image object array: %w", err)
		}
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("unrecognized image shape: %w", err)
	}
	if _, ok := obj["urls"]; ok {
		var w URLsWrapper
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("image urls wrapper: %w", err)
		}
		return w, nil
	}
	var slots KeyedSlots
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, fmt.Errorf("image slot object: %w", err)
	}
	return slots, nil
}

// NormalizeImages reduces any persisted image shape to a flat ordered list of
// URL strings.
func NormalizeImages(raw json.RawMessage) ([]string, error) {
	shape, err := DetectImageShape(raw)
	if err != nil {
		return nil, err
	}
	return shape.URLStrings(), nil
}

func nonEmpty(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}
