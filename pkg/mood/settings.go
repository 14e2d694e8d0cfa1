package mood

import (
	"errors"
	"strings"

	"tableflip.dev/moodlog/pkg/entry"
)

// Settings selects the palette, emoji theme and names used to build the
// current moods. It is loaded once at start-up and passed to whatever needs
// the current mood definitions.
type Settings struct {
	Palette    int      `json:"palette"`
	EmojiTheme int      `json:"emojiTheme"`
	Names      []string `json:"names"`
}

// DefaultSettings is the first palette, first theme and default names.
func DefaultSettings() Settings {
	return Settings{Names: DefaultNames()}
}

// Normalize replaces out-of-range selections with defaults. A name list must
// hold exactly five entries to be kept.
func (s Settings) Normalize() Settings {
	if s.Palette < 0 || s.Palette >= len(Palettes()) {
		s.Palette = 0
	}
	if s.EmojiTheme < 0 || s.EmojiTheme >= len(EmojiThemes()) {
		s.EmojiTheme = 0
	}
	if len(s.Names) != Count {
		s.Names = DefaultNames()
	} else {
		s.Names = append([]string(nil), s.Names...)
	}
	return s
}

// Moods builds the five current mood definitions.
func (s Settings) Moods() []entry.Mood {
	s = s.Normalize()
	palette := Palettes()[s.Palette]
	theme := EmojiThemes()[s.EmojiTheme]

	moods := make([]entry.Mood, 0, Count)
	for i, swatch := range palette {
		name := strings.TrimSpace(s.Names[i])
		if name == "" {
			name = swatch.Name
		}
		emoji := FallbackEmoji
		if i < len(theme) && theme[i] != "" {
			emoji = theme[i]
		}
		moods = append(moods, entry.Mood{
			ID:    i,
			Color: swatch.Color,
			Emoji: emoji,
			Name:  name,
		})
	}
	return moods
}

// Rename returns a copy with slot id renamed.
func (s Settings) Rename(id int, name string) (Settings, error) {
	s = s.Normalize()
	if id < 0 || id >= Count {
		return s, ErrUnknownSlot
	}
	s.Names[id] = strings.TrimSpace(name)
	return s, nil
}

// ErrUnknownSlot is returned for mood ids outside 0-4.
var ErrUnknownSlot = errors.New("mood: unknown mood slot")
