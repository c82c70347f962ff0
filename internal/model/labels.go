package model

import (
	"encoding/json"
	"strings"
)

// MarkerTag is the label the processing pipeline attaches to every item it
// has finished. Comparison against it is always case-insensitive.
const MarkerTag = "rustizarr"

// labelField mirrors one label object in the backend payload.
type labelField struct {
	Tag string `json:"tag"`
}

// NormalizeLabels converts the raw "Label" field of a library entry into a
// flat list of tags. The upstream server is inconsistent about the field's
// shape: it may be absent, a single {"tag": ...} object, or an array of
// such objects. Bare strings are accepted too. Duplicate tags (compared
// case-insensitively) are collapsed keeping first-seen order; elements
// without usable tag text are skipped, never reported as an error.
func NormalizeLabels(raw json.RawMessage) []string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var values []string

	// Most common shapes first: array of objects, then a lone object.
	var fields []labelField
	if err := json.Unmarshal(raw, &fields); err == nil {
		for _, f := range fields {
			values = append(values, f.Tag)
		}
	} else {
		var single labelField
		if err := json.Unmarshal(raw, &single); err == nil {
			values = append(values, single.Tag)
		} else {
			// Fall back to plain strings for older payloads.
			var tags []string
			if err := json.Unmarshal(raw, &tags); err == nil {
				values = append(values, tags...)
			} else {
				var tag string
				if err := json.Unmarshal(raw, &tag); err == nil {
					values = append(values, tag)
				}
			}
		}
	}

	seen := make(map[string]bool, len(values))
	var result []string
	for _, v := range values {
		tag := strings.TrimSpace(v)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, tag)
	}
	return result
}

// HasMarkerTag returns true if any tag equals MarkerTag ignoring case
func HasMarkerTag(tags []string) bool {
	for _, tag := range tags {
		if strings.EqualFold(strings.TrimSpace(tag), MarkerTag) {
			return true
		}
	}
	return false
}
