package record

import "strings"

// Record is a single selectable entry loaded from the record source.
type Record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Clone produces a shallow copy of the provided records.
func Clone(items []Record) []Record {
	dup := make([]Record, len(items))
	copy(dup, items)
	return dup
}

// Filter returns the records whose name contains keyword, ignoring case.
// Order is preserved and an empty keyword keeps every record.
func Filter(full []Record, keyword string) []Record {
	if keyword == "" {
		return Clone(full)
	}
	lower := strings.ToLower(keyword)
	filtered := make([]Record, 0, len(full))
	for _, rec := range full {
		if strings.Contains(strings.ToLower(rec.Name), lower) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// IndexOf returns the position of the record with the given id, or -1.
func IndexOf(items []Record, id string) int {
	if id == "" {
		return -1
	}
	for i, rec := range items {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
