// Package collection names the persisted record collections.
package collection

import (
	"fmt"
	"strings"
)

// Name is the storage key of a collection.
type Name string

const (
	// Journal holds every journal entry, newest first.
	Journal Name = "journal_entries"
	// Moods is the append-only mood log, one record per journal save.
	Moods Name = "mood_entries"
	// Favorites holds full snapshots of favorited journal entries.
	Favorites Name = "favorite_journals"
	// Activities is the activity catalog.
	Activities Name = "activities"
	// Settings is the mood palette, emoji theme and names.
	Settings Name = "mood_settings"
	// LastMood remembers the most recently picked mood.
	LastMood Name = "last_selected_mood"
)

const draftPrefix = "journal_draft_"

// All returns the fixed collections in display order.
func All() []Name {
	return []Name{
		Journal,
		Moods,
		Favorites,
		Activities,
		Settings,
		LastMood,
	}
}

// Parse converts a string to a Name or returns an error for unknown values.
// Draft keys are accepted as-is.
func Parse(raw string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := DraftID(string(n)); ok {
		return n, nil
	}
	for _, candidate := range All() {
		if candidate == n {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("collection: unknown collection %q", raw)
}

// DraftKey is the key of the autosaved draft for a journal id.
func DraftKey(id string) Name {
	return Name(draftPrefix + id)
}

// DraftID reports the journal id a draft key belongs to.
func DraftID(key string) (string, bool) {
	if !strings.HasPrefix(key, draftPrefix) || len(key) == len(draftPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, draftPrefix), true
}

func (n Name) String() string {
	return string(n)
}
