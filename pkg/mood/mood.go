// Package mood defines the five mood slots, their palettes and emoji themes,
// and the user settings that select between them.
package mood

import (
	"strconv"
	"strings"

	"tableflip.dev/moodlog/pkg/entry"
)

// Count is the number of mood slots; moods are identified by position.
const Count = 5

const (
	Rad   = "rad"
	Good  = "good"
	Meh   = "meh"
	Bad   = "bad"
	Awful = "awful"
)

// Names is the canonical mood order used by every aggregate view.
func Names() []string {
	return []string{Rad, Good, Meh, Bad, Awful}
}

// DefaultNames are the names a fresh install uses.
func DefaultNames() []string {
	return Names()
}

// NeutralValue is used for mood names outside the canonical set.
const NeutralValue = 3

var values = map[string]int{
	Awful: 1,
	Bad:   2,
	Meh:   3,
	Good:  4,
	Rad:   5,
}

// Value maps a mood name to its ordinal (awful=1 .. rad=5).
func Value(name string) (int, bool) {
	v, ok := values[strings.ToLower(strings.TrimSpace(name))]
	return v, ok
}

// ValueOr is Value with NeutralValue for unknown names.
func ValueOr(name string) int {
	if v, ok := Value(name); ok {
		return v
	}
	return NeutralValue
}

// IsCanonical reports whether name is one of the five canonical moods.
func IsCanonical(name string) bool {
	_, ok := Value(name)
	return ok
}

// Style is a colour and icon used when rendering a canonical mood.
type Style struct {
	Color string
	Icon  string
	Emoji string
}

// ChartStyles colour the weekly chart and insights.
func ChartStyles() map[string]Style {
	return map[string]Style{
		Awful: {Color: "#F25749", Icon: "emoticon-sad-outline"},
		Bad:   {Color: "#F98E3C", Icon: "emoticon-confused-outline"},
		Meh:   {Color: "#4A9DE7", Icon: "emoticon-neutral-outline"},
		Good:  {Color: "#9ACD32", Icon: "emoticon-happy-outline"},
		Rad:   {Color: "#1AB19B", Icon: "emoticon-excited-outline"},
	}
}

// GaugeStyles colour the calendar gauge.
func GaugeStyles() map[string]Style {
	return map[string]Style{
		Rad:   {Color: "#AED6F1", Emoji: "😃"},
		Good:  {Color: "#FAD7A0", Emoji: "😊"},
		Meh:   {Color: "#D7BDE2", Emoji: "😐"},
		Bad:   {Color: "#ABEBC6", Emoji: "😔"},
		Awful: {Color: "#F5B7B1", Emoji: "😫"},
	}
}

// Colors flattens styles to a name → colour map.
func Colors(styles map[string]Style) map[string]string {
	out := make(map[string]string, len(styles))
	for k, v := range styles {
		out[k] = v.Color
	}
	return out
}

// Find returns the mood whose id or name matches raw.
func Find(moods []entry.Mood, raw string) (entry.Mood, bool) {
	raw = strings.TrimSpace(raw)
	for _, m := range moods {
		if strings.EqualFold(m.DisplayName(), raw) {
			return m, true
		}
	}
	for _, m := range moods {
		if raw == strconv.Itoa(m.ID) {
			return m, true
		}
	}
	return entry.Mood{}, false
}
