package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestImportPhotoAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory("/media")
	if err := afero.WriteFile(s.FS, "/tmp/cam.jpg", []byte("jpeg"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	at := time.UnixMilli(1700000000123)
	p, err := ImportPhoto(ctx, s, "abc", "file:///tmp/cam.jpg", at)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := filepath.Join("/media", "journal_abc", "photo_1700000000123.jpg")
	if p.URI != "file://"+filepath.ToSlash(want) || p.Name != "photo_1700000000123.jpg" {
		t.Fatalf("unexpected photo %+v", p)
	}

	b64, err := s.ReadAsBase64(ctx, p.URI)
	if err != nil || b64 != "anBlZw==" {
		t.Fatalf("read base64 = %q, %v", b64, err)
	}

	if err := s.Delete(ctx, p.URI); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, p.URI); err != nil {
		t.Fatalf("deleting a missing file should succeed: %v", err)
	}
	if err := s.RemoveAll(ctx, s.JournalDir("abc")); err != nil {
		t.Fatalf("remove all: %v", err)
	}
	if ok, _ := afero.DirExists(s.FS, s.JournalDir("abc")); ok {
		t.Fatalf("expected journal dir removed")
	}
}

func TestCopyMissingSourceIsMediaError(t *testing.T) {
	s := NewMemory("/media")
	err := s.Copy(context.Background(), "/nope.jpg", "/media/x.jpg")
	var me *Error
	if !errors.As(err, &me) || me.Op != "copy" {
		t.Fatalf("expected media copy error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestImportRecording(t *testing.T) {
	ctx := context.Background()
	s := NewMemory("/media")
	if err := afero.WriteFile(s.FS, "/tmp/memo.M4A", []byte("aac"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := ImportRecording(ctx, s, "j1", "/tmp/memo.M4A")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got != filepath.Join("/media", "journal_j1", "recording.m4a") {
		t.Fatalf("unexpected path %s", got)
	}
}
