package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/collection"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

func TestDiskvRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	r := NewRecords(p)

	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	e := entry.New(entry.Mood{ID: 1, Color: "#A7D129", Emoji: "•ᴗ•", Name: "good"}, "ran 5k", []int{4, 5}, at)
	e.ID = "j1"
	if err := r.StoreJournal(ctx, []*entry.JournalEntry{e}); err != nil {
		t.Fatalf("store: %v", err)
	}

	got := r.Journal(ctx)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	got[0].Timestamp = e.Timestamp
	if !reflect.DeepEqual(got[0], e) {
		t.Fatalf("round trip mismatch:\nwant %#v\n got %#v", e, got[0])
	}

	if keys := p.Keys(ctx); !reflect.DeepEqual(keys, []string{"journal_entries"}) {
		t.Fatalf("unexpected keys %v", keys)
	}

	if err := p.Erase(ctx, "journal_entries"); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := p.Erase(ctx, "journal_entries"); err != nil {
		t.Fatalf("erase absent key should be a no-op: %v", err)
	}
	if _, err := p.Read(ctx, "journal_entries"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReadsDegradeToEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory(map[string][]byte{
		string(collection.Journal):    []byte(`{not json`),
		string(collection.Activities): []byte(`[{"id":`),
	})
	r := NewRecords(kv)

	if got := r.Journal(ctx); len(got) != 0 {
		t.Fatalf("expected empty journal, got %d", len(got))
	}
	if got := r.Moods(ctx); len(got) != 0 {
		t.Fatalf("expected empty moods, got %d", len(got))
	}
	if got := r.Activities(ctx); len(got) != len(entry.DefaultActivities()) {
		t.Fatalf("expected default activities, got %d", len(got))
	}

	_, err := r.Raw(ctx, collection.Journal)
	var re *ReadError
	if !errors.As(err, &re) || re.Key != string(collection.Journal) {
		t.Fatalf("expected ReadError for journal, got %v", err)
	}
	if _, err := r.Raw(ctx, collection.Favorites); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPartiallyDecodedJournalReadsEmpty(t *testing.T) {
	ctx := context.Background()
	journal := []byte(`[{"id":"good","timestamp":"2025-03-01T10:00:00Z"},{"id":"bad","timestamp":"March 2nd"}]`)
	kv := NewMemory(map[string][]byte{string(collection.Journal): journal})
	r := NewRecords(kv)

	if got := r.Journal(ctx); len(got) != 0 {
		t.Fatalf("expected empty journal, got %d entries", len(got))
	}
	got, err := r.LoadJournal(ctx)
	var re *ReadError
	if !errors.As(err, &re) || re.Key != string(collection.Journal) || got != nil {
		t.Fatalf("expected ReadError for journal, got %v, %v", got, err)
	}
}

func TestStrictReadsTreatAbsentAsEmpty(t *testing.T) {
	ctx := context.Background()
	r := NewRecords(NewMemory(nil))

	if got, err := r.LoadJournal(ctx); err != nil || len(got) != 0 {
		t.Fatalf("LoadJournal = %v, %v", got, err)
	}
	if got, err := r.LoadMoods(ctx); err != nil || len(got) != 0 {
		t.Fatalf("LoadMoods = %v, %v", got, err)
	}
	if got, err := r.LoadFavorites(ctx); err != nil || len(got) != 0 {
		t.Fatalf("LoadFavorites = %v, %v", got, err)
	}
	if got, err := r.LoadActivities(ctx); err != nil || len(got) != len(entry.DefaultActivities()) {
		t.Fatalf("LoadActivities = %v, %v", got, err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory(map[string][]byte{string(collection.Moods): []byte(`[]`)})
	r := NewRecords(kv)

	moods, err := r.Snapshot(ctx, collection.Moods)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	favs, err := r.Snapshot(ctx, collection.Favorites)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if err := r.StoreMoods(ctx, []*entry.MoodEntry{{ID: "m1"}}); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := r.StoreFavorites(ctx, nil); err != nil {
		t.Fatalf("store: %v", err)
	}

	if err := r.Restore(ctx, favs); err != nil {
		t.Fatalf("restore favorites: %v", err)
	}
	if err := r.Restore(ctx, moods); err != nil {
		t.Fatalf("restore moods: %v", err)
	}
	if _, err := kv.Read(ctx, string(collection.Favorites)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected favorites to be erased, got %v", err)
	}
	if data, err := kv.Read(ctx, string(collection.Moods)); err != nil || string(data) != "[]" {
		t.Fatalf("expected moods restored, got %q, %v", data, err)
	}

	// Unchanged keys are not written again.
	kv.FailWrites = errors.New("disk full")
	if err := r.Restore(ctx, moods); err != nil {
		t.Fatalf("restore of unchanged key: %v", err)
	}
}

func TestWriteErrorsPropagate(t *testing.T) {
	kv := NewMemory(nil)
	kv.FailWrites = errors.New("disk full")
	r := NewRecords(kv)
	if err := r.StoreMoods(context.Background(), nil); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestSettingsNormalizedOnRead(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory(map[string][]byte{
		string(collection.Settings): []byte(`{"palette":99,"emojiTheme":2,"names":["a"]}`),
	})
	r := NewRecords(kv)
	s := r.Settings(ctx)
	if s.Palette != 0 || s.EmojiTheme != 2 || !reflect.DeepEqual(s.Names, mood.DefaultNames()) {
		t.Fatalf("unexpected settings %+v", s)
	}

	s.Names = []string{"great", "fine", "okay", "low", "awful"}
	if err := r.StoreSettings(ctx, s); err != nil {
		t.Fatalf("store settings: %v", err)
	}
	if got := r.Settings(ctx).Moods()[0].Name; got != "great" {
		t.Fatalf("expected renamed mood, got %q", got)
	}
}

func TestCollectionsMeta(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory(map[string][]byte{
		string(collection.Moods):     []byte(`[{},{},{}]`),
		string(collection.Favorites): []byte(`[{`),
	})
	metas := NewRecords(kv).Collections(ctx)
	if len(metas) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(metas))
	}
	// Keys are sorted: favorite_journals, mood_entries.
	if metas[0].Healthy() {
		t.Fatalf("expected favorites to be reported unhealthy")
	}
	if metas[1].Records != 3 || metas[1].Bytes != len(`[{},{},{}]`) {
		t.Fatalf("unexpected mood meta %+v", metas[1])
	}
}

func TestParseWeekday(t *testing.T) {
	for raw, want := range map[string]time.Weekday{
		"":       time.Sunday,
		"Monday": time.Monday,
		"sat":    time.Saturday,
		"3":      time.Wednesday,
	} {
		got, err := ParseWeekday(raw)
		if err != nil || got != want {
			t.Fatalf("ParseWeekday(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := ParseWeekday("someday"); err == nil {
		t.Fatalf("expected error")
	}
}
