package calendar

import (
	"sort"
)

// HolidayIndex maps YYYY-MM-DD keys to holiday names. It is read-only once
// built.
type HolidayIndex struct {
	byKey map[string]string
}

// IndexEntry is one holiday of the index.
type IndexEntry struct {
	Key  string `json:"date"`
	Name string `json:"name"`
}

// BuildHolidayIndex builds the lookup table for the given year. A later
// holiday with the same date replaces an earlier one.
func BuildHolidayIndex(year int, holidays []Holiday) HolidayIndex {
	byKey := make(map[string]string, len(holidays))
	for _, h := range holidays {
		byKey[FormatDateKey(year, h.Month+1, h.Day)] = h.Name
	}
	return HolidayIndex{byKey: byKey}
}

// Lookup returns the holiday name for a date key.
func (idx HolidayIndex) Lookup(key string) (string, bool) {
	name, ok := idx.byKey[key]
	return name, ok
}

// Len returns the number of distinct holiday dates.
func (idx HolidayIndex) Len() int {
	return len(idx.byKey)
}

// Entries returns all holidays sorted by date.
func (idx HolidayIndex) Entries() []IndexEntry {
	entries := make([]IndexEntry, 0, len(idx.byKey))
	for key, name := range idx.byKey {
		entries = append(entries, IndexEntry{Key: key, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}
