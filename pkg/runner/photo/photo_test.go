package photo

import (
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/media"
	"tableflip.dev/moodlog/pkg/store"
)

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)

func init() {
	color.NoColor = true
}

func setup(t *testing.T) (*app.Service, *media.Store, string) {
	t.Helper()
	svc := app.New(store.NewRecords(store.NewMemory(nil)),
		app.WithIDGenerator(func() string { return "abc123" }),
		app.WithClock(func() time.Time { return now }))
	id, err := svc.Create(context.Background(), entry.New(entry.Mood{ID: 1, Name: "good"}, "", nil, now))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	files := media.NewMemory("/media")
	if err := afero.WriteFile(files.FS, "/cam/a.jpg", []byte("a"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return svc, files, id
}

func TestPhotoAttachesByPrefix(t *testing.T) {
	ctx := context.Background()
	svc, files, id := setup(t)

	p := &Photo{ID: "abc", Paths: []string{"/cam/a.jpg"}, App: svc, Media: files, Now: func() time.Time { return now }}
	if err := p.Do(ctx); err != nil {
		t.Fatalf("photo: %v", err)
	}
	e, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(e.Photos) != 1 || e.Photo == nil || e.Photo.URI != e.Photos[0].URI {
		t.Fatalf("unexpected photos %+v", e.Photos)
	}
}

func TestPhotoSkipsUnreadableFiles(t *testing.T) {
	ctx := context.Background()
	svc, files, id := setup(t)
	core, logs := observer.New(zap.WarnLevel)

	p := &Photo{
		ID:     id,
		Paths:  []string{"/cam/gone.jpg", "/cam/a.jpg"},
		App:    svc,
		Media:  files,
		Logger: zap.New(core),
		Now:    func() time.Time { return now },
	}
	if err := p.Do(ctx); err != nil {
		t.Fatalf("photo: %v", err)
	}
	e, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(e.Photos) != 1 {
		t.Fatalf("expected the readable photo attached, got %+v", e.Photos)
	}
	if logs.FilterMessage("photo skipped").Len() != 1 {
		t.Fatalf("expected the skipped photo logged, got %v", logs.All())
	}
}

func TestPhotoFailsWhenNothingCopied(t *testing.T) {
	svc, files, id := setup(t)
	p := &Photo{ID: id, Paths: []string{"/cam/gone.jpg"}, App: svc, Media: files}
	if err := p.Do(context.Background()); err == nil {
		t.Fatalf("expected an error when no photo could be copied")
	}
}
