// Package media manages the photo and voice memo files owned by journal
// entries.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"tableflip.dev/moodlog/pkg/entry"
)

// Files is the file-system collaborator used by the journal repository.
type Files interface {
	Copy(ctx context.Context, from, to string) error
	// Delete removes one file. Missing files are not an error.
	Delete(ctx context.Context, path string) error
	// RemoveAll removes a directory tree. Missing directories are not an error.
	RemoveAll(ctx context.Context, dir string) error
	ReadAsBase64(ctx context.Context, path string) (string, error)
	// JournalDir is the directory holding files for a journal entry.
	JournalDir(id string) string
}

// Error wraps a failed media operation.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("media: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsError reports whether err came from a media file operation.
func IsError(err error) bool {
	var me *Error
	return errors.As(err, &me)
}

// Store implements Files over an afero file system rooted at Root.
type Store struct {
	FS   afero.Fs
	Root string
}

var _ Files = (*Store)(nil)

// New returns a Store on the OS file system.
func New(root string) *Store {
	return &Store{FS: afero.NewOsFs(), Root: root}
}

// NewMemory returns a Store backed by an in-memory file system.
func NewMemory(root string) *Store {
	return &Store{FS: afero.NewMemMapFs(), Root: root}
}

func (s *Store) JournalDir(id string) string {
	return filepath.Join(s.Root, "journal_"+id)
}

func (s *Store) Copy(ctx context.Context, from, to string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src, err := s.FS.Open(from)
	if err != nil {
		return &Error{Op: "copy", Path: from, Err: err}
	}
	defer src.Close()

	if err := s.FS.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return &Error{Op: "copy", Path: to, Err: err}
	}
	dst, err := s.FS.Create(to)
	if err != nil {
		return &Error{Op: "copy", Path: to, Err: err}
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return &Error{Op: "copy", Path: to, Err: err}
	}
	if err := dst.Close(); err != nil {
		return &Error{Op: "copy", Path: to, Err: err}
	}
	return nil
}

func (s *Store) Delete(_ context.Context, p string) error {
	p = localPath(p)
	if p == "" {
		return nil
	}
	if err := s.FS.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &Error{Op: "delete", Path: p, Err: err}
	}
	return nil
}

func (s *Store) RemoveAll(_ context.Context, dir string) error {
	if dir == "" {
		return nil
	}
	if err := s.FS.RemoveAll(dir); err != nil {
		return &Error{Op: "remove", Path: dir, Err: err}
	}
	return nil
}

func (s *Store) ReadAsBase64(_ context.Context, p string) (string, error) {
	p = localPath(p)
	data, err := afero.ReadFile(s.FS, p)
	if err != nil {
		return "", &Error{Op: "read", Path: p, Err: err}
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// ImportPhoto copies src into the journal directory as photo_<unix ms>.jpg and
// returns the photo reference to store on the entry.
func ImportPhoto(ctx context.Context, files Files, journalID, src string, at time.Time) (entry.Photo, error) {
	name := fmt.Sprintf("photo_%d.jpg", at.UnixMilli())
	dst := filepath.Join(files.JournalDir(journalID), name)
	if err := files.Copy(ctx, localPath(src), dst); err != nil {
		return entry.Photo{}, err
	}
	return entry.Photo{URI: "file://" + filepath.ToSlash(dst), Name: name, Type: "image/jpeg"}, nil
}

// ImportRecording copies a voice memo into the journal directory and returns
// its stored path.
func ImportRecording(ctx context.Context, files Files, journalID, src string) (string, error) {
	dst := filepath.Join(files.JournalDir(journalID), "recording"+strings.ToLower(path.Ext(src)))
	if err := files.Copy(ctx, localPath(src), dst); err != nil {
		return "", err
	}
	return dst, nil
}

// localPath strips a file:// scheme.
func localPath(uri string) string {
	return filepath.FromSlash(strings.TrimPrefix(uri, "file://"))
}
