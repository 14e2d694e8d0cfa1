package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/moodlog/pkg/collection"
	"tableflip.dev/moodlog/pkg/entry"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

const noteWidth = 72

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Entries prints one line per entry followed by its wrapped note.
func (pp *PrettyPrint) Entries(catalog entry.Catalog, entries ...*entry.JournalEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)
	star := color.New(color.FgHiYellow)

	for _, e := range entries {
		if pp.ShowID {
			id := shortID(e.ID)
			_, _ = y.Fprint(pp.out(), id)
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", len(spacing)-len(id)))
		}
		_, _ = f.Fprintf(pp.out(), "%s ", e.Timestamp.Local().Format("15:04"))
		pp.mood(e.Mood)
		if e.IsFavorite {
			_, _ = star.Fprint(pp.out(), " ★")
		}
		if labels := catalog.Labels(e.Activities); len(labels) > 0 {
			_, _ = f.Fprintf(pp.out(), "  %s", strings.Join(labels, ", "))
		}
		if n := e.PhotoRef().Count(); n > 0 {
			_, _ = f.Fprintf(pp.out(), "  [%d photo%s]", n, plural(n))
		}
		if e.HasRecording {
			_, _ = f.Fprint(pp.out(), "  [memo]")
		}
		_, _ = t.Fprintln(pp.out(), "")
		if note := strings.TrimSpace(e.Note); note != "" {
			pad := uint(6)
			if pp.ShowID {
				pad += uint(len(spacing))
			}
			_, _ = t.Fprintln(pp.out(), indent.String(wordwrap.String(note, noteWidth), pad))
		}
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Entry prints every field of a single entry.
func (pp *PrettyPrint) Entry(catalog entry.Catalog, e *entry.JournalEntry) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = noteWidth
	tbl.AddRow(bold.Sprint("ID"), e.ID)
	tbl.AddRow(bold.Sprint("When"), e.Timestamp.Local().Format(entry.SearchDateLayout+" 15:04"))
	tbl.AddRow(bold.Sprint("Mood"), moodString(e.Mood))
	if labels := catalog.Labels(e.Activities); len(labels) > 0 {
		tbl.AddRow(bold.Sprint("Activities"), strings.Join(labels, ", "))
	}
	if note := strings.TrimSpace(e.Note); note != "" {
		tbl.AddRow(bold.Sprint("Note"), note)
	}
	ref := e.PhotoRef()
	switch ref.Kind {
	case entry.PhotoMultiple, entry.PhotoSingle:
		for i, img := range ref.Images() {
			label := ""
			if i == 0 {
				label = bold.Sprint("Photos")
			}
			tbl.AddRow(label, img)
		}
	case entry.PhotoInlineBase64:
		tbl.AddRow(bold.Sprint("Photos"), "inline image")
	}
	if e.HasRecording {
		tbl.AddRow(bold.Sprint("Recording"), e.RecordingPath)
	}
	tbl.AddRow(bold.Sprint("Favorite"), yesNo(e.IsFavorite))
	if e.UpdatedAt != nil {
		tbl.AddRow(bold.Sprint("Updated"), e.UpdatedAt.Local().Format(entry.SearchDateLayout+" 15:04"))
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Table prints entries one row each: date, time, mood, activities, note.
func (pp *PrettyPrint) Table(catalog entry.Catalog, entries ...*entry.JournalEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	for _, e := range entries {
		at, m, activities, note := e.Row(catalog)
		cells := []interface{}{e.Timestamp.Local().Format("Jan 02"), at, color.New(Attribute(e.Mood.Color)).Sprint(m), activities, note}
		if pp.ShowID {
			cells = append([]interface{}{y.Sprint(shortID(e.ID))}, cells...)
		}
		tbl.AddRow(cells...)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Activities prints the activity catalog.
func (pp *PrettyPrint) Activities(activities []entry.Activity) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Label"), bold.Sprint("Icon"))
	for _, a := range activities {
		tbl.AddRow(a.ID, a.Label, a.Icon)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Moods prints the current mood definitions.
func (pp *PrettyPrint) Moods(moods []entry.Mood) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Mood"), bold.Sprint("Colour"))
	for _, m := range moods {
		tbl.AddRow(m.ID, moodString(m), m.Color)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Collections prints stored collection metadata.
func (pp *PrettyPrint) Collections(metas []collection.Meta) {
	if len(metas) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	bad := color.New(color.FgRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Collection"), bold.Sprint("Records"), bold.Sprint("Bytes"), "")
	for _, m := range metas {
		status := ""
		if !m.Healthy() {
			status = bad.Sprint(m.Error)
		}
		tbl.AddRow(m.Name.String(), m.Records, m.Bytes, status)
	}
	tbl.RightAlign(1)
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) mood(m entry.Mood) {
	_, _ = fmt.Fprint(pp.out(), moodString(m))
}

func moodString(m entry.Mood) string {
	c := color.New(Attribute(m.Color), color.Bold)
	name := m.DisplayName()
	if m.Emoji != "" {
		return c.Sprintf("%s %s", m.Emoji, name)
	}
	return c.Sprint(name)
}

func shortID(id string) string {
	if len(id) > len(spacing)-2 {
		return id[:len(spacing)-2]
	}
	return id
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
