package mood

import (
	"testing"
)

func TestSettingsMoodsDefaults(t *testing.T) {
	moods := DefaultSettings().Moods()
	if len(moods) != Count {
		t.Fatalf("expected %d moods, got %d", Count, len(moods))
	}
	for i, m := range moods {
		if m.ID != i {
			t.Fatalf("mood %d has id %d", i, m.ID)
		}
		if m.Name != Names()[i] {
			t.Fatalf("mood %d: expected %q, got %q", i, Names()[i], m.Name)
		}
		if !ValidColor(m.Color) {
			t.Fatalf("mood %d has invalid colour %q", i, m.Color)
		}
	}
	if moods[0].Emoji != "•◡•" {
		t.Fatalf("unexpected emoji %q", moods[0].Emoji)
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := Settings{Palette: 42, EmojiTheme: -1, Names: []string{"a", "b"}}.Normalize()
	if s.Palette != 0 || s.EmojiTheme != 0 {
		t.Fatalf("expected out-of-range selections reset, got %+v", s)
	}
	if len(s.Names) != Count || s.Names[0] != Rad {
		t.Fatalf("expected default names, got %v", s.Names)
	}
}

func TestSettingsBlankNameFallsBackToSwatch(t *testing.T) {
	s := Settings{Palette: 1, EmojiTheme: 6, Names: []string{"", "good", "meh", "bad", "awful"}}
	moods := s.Moods()
	if moods[0].Name != "Purple" {
		t.Fatalf("expected swatch name, got %q", moods[0].Name)
	}
	if moods[0].Emoji != "(ᵔᴥᵔ)" {
		t.Fatalf("unexpected emoji %q", moods[0].Emoji)
	}
}

func TestRename(t *testing.T) {
	s, err := DefaultSettings().Rename(2, " okay ")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if s.Moods()[2].Name != "okay" {
		t.Fatalf("expected renamed slot, got %+v", s.Moods()[2])
	}
	if _, err := s.Rename(7, "x"); err != ErrUnknownSlot {
		t.Fatalf("expected ErrUnknownSlot, got %v", err)
	}
	if DefaultNames()[2] != Meh {
		t.Fatalf("rename must not mutate defaults")
	}
}

func TestValue(t *testing.T) {
	if v, ok := Value("RAD"); !ok || v != 5 {
		t.Fatalf("expected rad=5, got %d %v", v, ok)
	}
	if ValueOr("sleepy") != NeutralValue {
		t.Fatalf("unknown names should be neutral")
	}
}

func TestTint(t *testing.T) {
	got, err := Tint("#000000", 0.5)
	if err != nil {
		t.Fatalf("tint: %v", err)
	}
	if got != "#808080" {
		t.Fatalf("expected mid grey, got %s", got)
	}
	if _, err := Tint("nope", 0.2); err == nil {
		t.Fatalf("expected error for invalid colour")
	}
}

func TestFind(t *testing.T) {
	moods := DefaultSettings().Moods()
	if m, ok := Find(moods, "Good"); !ok || m.ID != 1 {
		t.Fatalf("expected good, got %+v %v", m, ok)
	}
	if m, ok := Find(moods, "4"); !ok || m.Name != Awful {
		t.Fatalf("expected awful by id, got %+v %v", m, ok)
	}
}
