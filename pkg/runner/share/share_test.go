package share

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/media"
	"tableflip.dev/moodlog/pkg/store"
)

func TestExportVoiceMemo(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	svc := app.New(store.NewRecords(store.NewMemory(nil)))
	files := media.NewMemory("/media")
	if err := afero.WriteFile(files.FS, "/media/journal_x/recording.m4a", []byte("aac"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	e := entry.New(entry.Mood{ID: 1, Name: "good"}, "walk", nil, time.Date(2025, 3, 1, 8, 0, 0, 0, time.Local))
	e.ID = "x"
	e.RecordingPath = "/media/journal_x/recording.m4a"
	if _, err := svc.Create(ctx, e); err != nil {
		t.Fatalf("create: %v", err)
	}

	s := &Share{
		ID:      "x",
		MemoDir: "/exports",
		App:     svc,
		Media:   files,
		Now:     func() time.Time { return time.Date(2025, 3, 2, 10, 4, 5, 0, time.Local) },
	}
	if err := s.Do(ctx); err != nil {
		t.Fatalf("share: %v", err)
	}
	want := filepath.Join("/exports", "moodlog_voice_20250302_100405.m4a")
	data, err := afero.ReadFile(files.FS, want)
	if err != nil || string(data) != "aac" {
		t.Fatalf("expected exported memo at %s: %q, %v", want, data, err)
	}
}

func TestExportWithoutMemo(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	svc := app.New(store.NewRecords(store.NewMemory(nil)))
	e := entry.New(entry.Mood{ID: 2, Name: "meh"}, "", nil, time.Now())
	e.ID = "y"
	if _, err := svc.Create(ctx, e); err != nil {
		t.Fatalf("create: %v", err)
	}
	s := &Share{ID: "y", MemoDir: "/exports", App: svc, Media: media.NewMemory("/media")}
	if err := s.Do(ctx); err == nil {
		t.Fatalf("expected an error for an entry without a voice memo")
	}
}
