package entry

import (
	"strings"
	"time"
)

// Mood is the snapshot of a mood definition embedded in records. Historical
// records keep the copy they were written with.
type Mood struct {
	ID    int    `json:"id"`
	Color string `json:"color,omitempty"`
	Emoji string `json:"emoji,omitempty"`
	Name  string `json:"name,omitempty"`
	// Label is written by older records in place of Name.
	Label string `json:"label,omitempty"`
}

// DisplayName prefers Name and falls back to the legacy Label.
func (m Mood) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Label
}

// Key is the lower-cased display name used for aggregation.
func (m Mood) Key() string {
	return strings.ToLower(strings.TrimSpace(m.DisplayName()))
}

// JournalEntry is the primary record of the journal collection.
type JournalEntry struct {
	ID            string     `json:"id"`
	Timestamp     Timestamp  `json:"timestamp"`
	MoodID        int        `json:"moodId"`
	Mood          Mood       `json:"mood"`
	Note          string     `json:"note"`
	Activities    []int      `json:"activities"`
	Photo         *Photo     `json:"photo,omitempty"`
	Photos        []Photo    `json:"photos,omitempty"`
	PhotoBase64   string     `json:"photoBase64,omitempty"`
	RecordingPath string     `json:"recordingPath,omitempty"`
	HasRecording  bool       `json:"hasRecording"`
	IsFavorite    bool       `json:"isFavorite"`
	UpdatedAt     *Timestamp `json:"updatedAt,omitempty"`
}

// New builds a journal entry for the given mood at the given instant.
func New(mood Mood, note string, activities []int, at time.Time) *JournalEntry {
	e := &JournalEntry{
		Timestamp:  Timestamp{Time: at},
		MoodID:     mood.ID,
		Mood:       mood,
		Note:       note,
		Activities: activities,
	}
	e.Normalize()
	return e
}

// Normalize defaults missing fields in place.
func (e *JournalEntry) Normalize() {
	if e.Activities == nil {
		e.Activities = []int{}
	} else {
		e.Activities = UniqueActivities(e.Activities)
	}
	if e.RecordingPath != "" {
		e.HasRecording = true
	}
}

// Clone returns a deep copy so snapshots never alias live records.
func (e *JournalEntry) Clone() *JournalEntry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Activities = append([]int(nil), e.Activities...)
	if e.Activities != nil && cp.Activities == nil {
		cp.Activities = []int{}
	}
	if e.Photo != nil {
		p := *e.Photo
		cp.Photo = &p
	}
	if e.Photos != nil {
		cp.Photos = append([]Photo(nil), e.Photos...)
	}
	if e.UpdatedAt != nil {
		u := *e.UpdatedAt
		cp.UpdatedAt = &u
	}
	return &cp
}

func (e *JournalEntry) When() time.Time {
	return e.Timestamp.Time
}

func (e *JournalEntry) MoodKey() string {
	return e.Mood.Key()
}

func (e *JournalEntry) MoodColor() string {
	return e.Mood.Color
}

// MediaPaths lists every file the entry owns.
func (e *JournalEntry) MediaPaths() []string {
	var paths []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}
	if e.Photo != nil {
		add(e.Photo.URI)
	}
	for _, p := range e.Photos {
		add(p.URI)
	}
	add(e.RecordingPath)
	return paths
}

// MoodEntry is the denormalized, append-only record used by the calendar and
// chart views.
type MoodEntry struct {
	ID        string    `json:"id"`
	Date      Timestamp `json:"date"`
	MoodID    int       `json:"moodId"`
	MoodData  Mood      `json:"moodData"`
	JournalID string    `json:"journalId"`
	// Note is carried by a few older records and shown in day lists.
	Note string `json:"note,omitempty"`
}

func (m *MoodEntry) When() time.Time {
	return m.Date.Time
}

func (m *MoodEntry) MoodKey() string {
	return m.MoodData.Key()
}

func (m *MoodEntry) MoodColor() string {
	return m.MoodData.Color
}
