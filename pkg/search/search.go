// Package search filters journal entries by free text.
package search

import (
	"strings"
	"time"

	"tableflip.dev/moodlog/pkg/aggregate"
	"tableflip.dev/moodlog/pkg/entry"
)

// Search returns the entries matching query, case-insensitively, against the
// entry date as "02 January 2006", the mood name, the note, or any of the
// entry's activity labels. A blank query returns the entries of month.
func Search(entries []*entry.JournalEntry, activities []entry.Activity, query string, month time.Time) []*entry.JournalEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return aggregate.FilterByMonth(entries, month)
	}

	catalog := entry.NewCatalog(activities)
	out := make([]*entry.JournalEntry, 0)
	for _, e := range entries {
		if e != nil && Matches(e, catalog, q) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether e matches the lower-cased query q.
func Matches(e *entry.JournalEntry, catalog entry.Catalog, q string) bool {
	fields := []string{
		e.Timestamp.Local().Format(entry.SearchDateLayout),
		e.Mood.Label,
		e.Mood.Name,
		e.Note,
	}
	fields = append(fields, catalog.Labels(e.Activities)...)
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
