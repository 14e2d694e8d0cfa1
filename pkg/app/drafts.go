package app

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/moodlog/pkg/collection"
	"tableflip.dev/moodlog/pkg/entry"
)

// Draft is an autosaved, not yet committed edit of a journal entry.
type Draft struct {
	JournalID     string          `json:"journalId"`
	Mood          *entry.Mood     `json:"mood,omitempty"`
	Note          string          `json:"note"`
	Activities    []int           `json:"activities"`
	Photos        []entry.Photo   `json:"photos,omitempty"`
	RecordingPath string          `json:"recordingPath,omitempty"`
	SavedAt       entry.Timestamp `json:"savedAt"`
}

// SaveDraft stores d under the draft key of its journal id.
func (s *Service) SaveDraft(ctx context.Context, d Draft) error {
	if d.JournalID == "" {
		d.JournalID = "new"
	}
	if d.Activities == nil {
		d.Activities = []int{}
	}
	d.SavedAt = entry.Timestamp{Time: s.now()}
	return s.records.StoreValue(ctx, collection.DraftKey(d.JournalID), d)
}

// LoadDraft returns the draft for id, if one was saved.
func (s *Service) LoadDraft(ctx context.Context, id string) (*Draft, bool) {
	if id == "" {
		id = "new"
	}
	d := &Draft{}
	if !s.records.Value(ctx, collection.DraftKey(id), d) {
		return nil, false
	}
	return d, true
}

// DiscardDraft removes the draft for id.
func (s *Service) DiscardDraft(ctx context.Context, id string) error {
	if id == "" {
		id = "new"
	}
	return s.records.Erase(ctx, collection.DraftKey(id))
}

// Drafts lists the journal ids with a saved draft.
func (s *Service) Drafts(ctx context.Context) []string {
	var ids []string
	for _, meta := range s.records.Collections(ctx) {
		if id, ok := collection.DraftID(string(meta.Name)); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Apply builds the journal entry a draft describes on top of base, which may
// be nil for a new entry.
func (d *Draft) Apply(base *entry.JournalEntry) *entry.JournalEntry {
	var e *entry.JournalEntry
	if base != nil {
		e = base.Clone()
	} else {
		e = &entry.JournalEntry{}
		if d.JournalID != "new" {
			e.ID = d.JournalID
		}
	}
	if d.Mood != nil {
		e.Mood = *d.Mood
		e.MoodID = d.Mood.ID
	}
	e.Note = d.Note
	e.Activities = append([]int{}, d.Activities...)
	if len(d.Photos) > 0 {
		e.Photos = append([]entry.Photo(nil), d.Photos...)
		first := e.Photos[0]
		e.Photo = &first
		e.PhotoBase64 = ""
	}
	if d.RecordingPath != "" {
		e.RecordingPath = d.RecordingPath
	}
	e.Normalize()
	return e
}

// LastMood returns the most recently remembered mood.
func (s *Service) LastMood(ctx context.Context) (entry.Mood, bool) {
	var m entry.Mood
	if !s.records.Value(ctx, collection.LastMood, &m) {
		return entry.Mood{}, false
	}
	return m, true
}

// RememberMood records m as the last selected mood. Failures are logged only.
func (s *Service) RememberMood(ctx context.Context, m entry.Mood) {
	if err := s.records.StoreValue(ctx, collection.LastMood, m); err != nil {
		s.logger.Warn("remember mood failed", zap.Error(err))
	}
}
