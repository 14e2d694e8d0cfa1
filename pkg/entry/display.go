package entry

import (
	"fmt"
	"strings"
	"time"
)

const (
	// SearchDateLayout is the date text search queries match against.
	SearchDateLayout = "02 January 2006"
	shareDateLayout  = "02 January 2006 15:04"
	exportLayout     = "20060102_150405"
)

// Row renders the entry for tabular output: time, mood, activities, note.
func (e *JournalEntry) Row(c Catalog) (string, string, string, string) {
	mood := strings.TrimSpace(fmt.Sprintf("%s %s", e.Mood.Emoji, e.Mood.DisplayName()))
	return e.Timestamp.Local().Format("15:04"), mood, strings.Join(c.Labels(e.Activities), ", "), e.Note
}

// ShareText renders a plain-text summary of the entry.
func ShareText(e *JournalEntry, c Catalog) string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("moodlog Journal Entry - %s\n\n", e.Timestamp.Local().Format(shareDateLayout)))

	mood := e.Mood.DisplayName()
	if mood == "" {
		mood = "Not specified"
	}
	b.WriteString(fmt.Sprintf("Mood: %s\n\n", mood))

	if labels := c.Labels(e.Activities); len(labels) > 0 {
		b.WriteString("Activities: " + strings.Join(labels, ", ") + "\n\n")
	}
	if e.Note != "" {
		b.WriteString(fmt.Sprintf("Note: %s\n\n", e.Note))
	}
	if n := e.PhotoRef().Count(); n > 0 {
		b.WriteString(fmt.Sprintf("Photos: %d\n\n", n))
	}
	if e.RecordingPath != "" {
		b.WriteString("Voice memo attached\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// VoiceMemoName is the file name a voice memo is exported under.
func VoiceMemoName(at time.Time) string {
	return fmt.Sprintf("moodlog_voice_%s.m4a", at.Local().Format(exportLayout))
}
