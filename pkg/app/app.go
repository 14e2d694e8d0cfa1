// Package app is the journal repository: it keeps the journal, mood log and
// favorites collections consistent across every mutation.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/moodlog/pkg/collection"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/media"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/store"
)

// Service provides high-level operations for journal entries. It wraps the
// record store so CLIs and the MCP server share one consistency boundary.
type Service struct {
	records *store.Records
	media   media.Files
	logger  *zap.Logger
	newID   func() string
	now     func() time.Time

	// mu serializes every read-modify-write across collections.
	mu sync.Mutex
}

var (
	// ErrNotFound is returned when an operation targets an unknown id.
	ErrNotFound = errors.New("app: journal entry not found")
	// ErrValidation is returned for records that cannot be stored.
	ErrValidation = errors.New("app: invalid journal entry")
)

// Option configures a Service.
type Option func(*Service)

// WithMedia sets the file collaborator used to remove deleted media.
func WithMedia(files media.Files) Option {
	return func(s *Service) {
		s.media = files
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator overrides UUID generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock overrides the time source.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// New returns a Service over records.
func New(records *store.Records, opts ...Option) *Service {
	s := &Service{
		records: records,
		logger:  zap.NewNop(),
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Records exposes the underlying store.
func (s *Service) Records() *store.Records {
	return s.records
}

// Create stores e, assigning an id and timestamp when absent, and appends a
// matching mood log record. An entry whose id already exists is replaced. The
// stored entry is returned by id.
func (s *Service) Create(ctx context.Context, e *entry.JournalEntry) (string, error) {
	if e == nil {
		return "", fmt.Errorf("%w: nil entry", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e = e.Clone()
	if strings.TrimSpace(e.ID) == "" {
		e.ID = s.newID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = entry.Timestamp{Time: s.now()}
	}
	e.MoodID = e.Mood.ID
	e.Normalize()

	journal, err := s.records.LoadJournal(ctx)
	if err != nil {
		return "", err
	}
	moods, err := s.records.LoadMoods(ctx)
	if err != nil {
		return "", err
	}
	favs, err := s.records.LoadFavorites(ctx)
	if err != nil {
		return "", err
	}

	out := make([]*entry.JournalEntry, 0, len(journal)+1)
	out = append(out, e)
	for _, existing := range journal {
		if existing.ID != e.ID {
			out = append(out, existing)
		}
	}
	moods = append(moods, &entry.MoodEntry{
		ID:        s.newID(),
		Date:      e.Timestamp,
		MoodID:    e.MoodID,
		MoodData:  e.Mood,
		JournalID: e.ID,
	})

	err = s.atomically(ctx, func() error {
		if err := s.records.StoreJournal(ctx, out); err != nil {
			return err
		}
		if err := s.records.StoreMoods(ctx, moods); err != nil {
			return err
		}
		if next, changed := syncFavorite(favs, e); changed {
			return s.records.StoreFavorites(ctx, next)
		}
		return nil
	}, collection.Journal, collection.Moods, collection.Favorites)
	if err != nil {
		return "", err
	}

	s.logger.Debug("journal entry created", zap.String("id", e.ID), zap.String("mood", e.MoodKey()))
	return e.ID, nil
}

// Patch lists the fields Update may change. Nil fields are left untouched.
type Patch struct {
	Mood          *entry.Mood
	Timestamp     *time.Time
	Note          *string
	Activities    *[]int
	RecordingPath *string
	IsFavorite    *bool
}

// Update applies patch to the entry id and stamps updatedAt.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*entry.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	journal, err := s.records.LoadJournal(ctx)
	if err != nil {
		return nil, err
	}
	e := find(journal, id)
	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if patch.Mood != nil {
		e.Mood = *patch.Mood
		e.MoodID = patch.Mood.ID
	}
	if patch.Timestamp != nil {
		e.Timestamp = entry.Timestamp{Time: *patch.Timestamp}
	}
	if patch.Note != nil {
		e.Note = *patch.Note
	}
	if patch.Activities != nil {
		e.Activities = append([]int{}, (*patch.Activities)...)
	}
	if patch.RecordingPath != nil {
		e.RecordingPath = *patch.RecordingPath
		e.HasRecording = e.RecordingPath != ""
	}
	if patch.IsFavorite != nil {
		e.IsFavorite = *patch.IsFavorite
	}
	now := entry.Timestamp{Time: s.now()}
	e.UpdatedAt = &now
	e.Normalize()

	if err := s.commit(ctx, journal, e); err != nil {
		return nil, err
	}
	return e.Clone(), nil
}

// Delete removes the entry, its mood log records and its favorite snapshot,
// then removes its media files. Unknown ids are a no-op. Media failures are
// logged and do not fail the call.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	journal, err := s.records.LoadJournal(ctx)
	if err != nil {
		return err
	}
	moods, err := s.records.LoadMoods(ctx)
	if err != nil {
		return err
	}
	favs, err := s.records.LoadFavorites(ctx)
	if err != nil {
		return err
	}

	target := find(journal, id)
	kept := make([]*entry.JournalEntry, 0, len(journal))
	for _, e := range journal {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	keptMoods := make([]*entry.MoodEntry, 0, len(moods))
	for _, m := range moods {
		if m.JournalID != id {
			keptMoods = append(keptMoods, m)
		}
	}

	err = s.atomically(ctx, func() error {
		if target != nil {
			if err := s.records.StoreJournal(ctx, kept); err != nil {
				return err
			}
		}
		if len(keptMoods) != len(moods) {
			if err := s.records.StoreMoods(ctx, keptMoods); err != nil {
				return err
			}
		}
		if next, changed := removeFavorite(favs, id); changed {
			return s.records.StoreFavorites(ctx, next)
		}
		return nil
	}, collection.Journal, collection.Moods, collection.Favorites)
	if err != nil {
		return err
	}

	if target != nil {
		s.removeMedia(ctx, target)
	}
	return nil
}

func (s *Service) removeMedia(ctx context.Context, e *entry.JournalEntry) {
	if s.media == nil {
		return
	}
	for _, p := range e.MediaPaths() {
		if err := s.media.Delete(ctx, p); err != nil {
			s.logger.Warn("media delete failed", zap.String("id", e.ID), zap.Error(err))
		}
	}
	if err := s.media.RemoveAll(ctx, s.media.JournalDir(e.ID)); err != nil {
		s.logger.Warn("media directory removal failed", zap.String("id", e.ID), zap.Error(err))
	}
}

// ToggleFavorite flips isFavorite and adds or removes the favorite snapshot.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	journal, err := s.records.LoadJournal(ctx)
	if err != nil {
		return false, err
	}
	e := find(journal, id)
	if e == nil {
		return false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e.IsFavorite = !e.IsFavorite
	if err := s.commit(ctx, journal, e); err != nil {
		return !e.IsFavorite, err
	}
	return e.IsFavorite, nil
}

// AddPhotos appends photos to the entry. A legacy single photo moves to the
// front of the sequence, the inline base64 image is dropped and the single
// photo field keeps pointing at the first photo.
func (s *Service) AddPhotos(ctx context.Context, id string, photos []entry.Photo) (*entry.JournalEntry, error) {
	for _, p := range photos {
		if strings.TrimSpace(p.URI) == "" {
			return nil, fmt.Errorf("%w: photo uri required", ErrValidation)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	journal, err := s.records.LoadJournal(ctx)
	if err != nil {
		return nil, err
	}
	e := find(journal, id)
	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	current := append([]entry.Photo(nil), e.Photos...)
	if len(current) == 0 && e.Photo != nil && e.Photo.URI != "" {
		current = append(current, *e.Photo)
	}
	current = append(current, photos...)
	e.Photos = current
	if len(current) > 0 {
		first := current[0]
		e.Photo = &first
	}
	e.PhotoBase64 = ""
	now := entry.Timestamp{Time: s.now()}
	e.UpdatedAt = &now

	if err := s.commit(ctx, journal, e); err != nil {
		return nil, err
	}
	return e.Clone(), nil
}

// commit writes journal, which already contains the modified e, and
// refreshes the favorites snapshot for e. Must be called with mu held.
func (s *Service) commit(ctx context.Context, journal []*entry.JournalEntry, e *entry.JournalEntry) error {
	favs, err := s.records.LoadFavorites(ctx)
	if err != nil {
		return err
	}
	return s.atomically(ctx, func() error {
		if err := s.records.StoreJournal(ctx, journal); err != nil {
			return err
		}
		if next, changed := syncFavorite(favs, e); changed {
			return s.records.StoreFavorites(ctx, next)
		}
		return nil
	}, collection.Journal, collection.Favorites)
}

// atomically runs write, which stores some of keys. If write fails every key
// is put back the way it was before, newest write first. Must be called with
// mu held.
func (s *Service) atomically(ctx context.Context, write func() error, keys ...collection.Name) error {
	snaps := make([]store.Snapshot, 0, len(keys))
	for _, key := range keys {
		snap, err := s.records.Snapshot(ctx, key)
		if err != nil {
			return err
		}
		snaps = append(snaps, snap)
	}
	err := write()
	if err == nil {
		return nil
	}
	for i := len(snaps) - 1; i >= 0; i-- {
		if rerr := s.records.Restore(ctx, snaps[i]); rerr != nil {
			s.logger.Error("rollback failed, collections may disagree",
				zap.String("collection", string(snaps[i].Key)),
				zap.NamedError("cause", err),
				zap.Error(rerr))
		}
	}
	return err
}

// Get returns a copy of the entry id.
func (s *Service) Get(ctx context.Context, id string) (*entry.JournalEntry, error) {
	e := find(s.records.Journal(ctx), id)
	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e.Clone(), nil
}

// Resolve finds an entry by id or by a unique id prefix.
func (s *Service) Resolve(ctx context.Context, ref string) (*entry.JournalEntry, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	journal := s.records.Journal(ctx)
	if e := find(journal, ref); e != nil {
		return e, nil
	}
	var match *entry.JournalEntry
	for _, e := range journal {
		if strings.HasPrefix(e.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("app: id prefix %q is ambiguous", ref)
			}
			match = e
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return match, nil
}

// Entries returns every journal entry, newest first.
func (s *Service) Entries(ctx context.Context) []*entry.JournalEntry {
	entries := s.records.Journal(ctx)
	sortNewestFirst(entries)
	return entries
}

// MoodEntries returns the mood log.
func (s *Service) MoodEntries(ctx context.Context) []*entry.MoodEntry {
	return s.records.Moods(ctx)
}

// Favorites returns the favorite snapshots, newest first.
func (s *Service) Favorites(ctx context.Context) []*entry.JournalEntry {
	favs := s.records.Favorites(ctx)
	sortNewestFirst(favs)
	return favs
}

// Activities returns the activity catalog.
func (s *Service) Activities(ctx context.Context) []entry.Activity {
	return s.records.Activities(ctx)
}

// Catalog returns the activity catalog keyed by id.
func (s *Service) Catalog(ctx context.Context) entry.Catalog {
	return entry.NewCatalog(s.records.Activities(ctx))
}

// Settings returns the mood settings.
func (s *Service) Settings(ctx context.Context) mood.Settings {
	return s.records.Settings(ctx)
}

// SaveSettings persists the mood settings. Existing entries keep their mood
// snapshots.
func (s *Service) SaveSettings(ctx context.Context, settings mood.Settings) error {
	return s.records.StoreSettings(ctx, settings)
}

// Moods returns the current mood definitions.
func (s *Service) Moods(ctx context.Context) []entry.Mood {
	return s.records.Settings(ctx).Moods()
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.records.Watch(ctx)
}

func find(entries []*entry.JournalEntry, id string) *entry.JournalEntry {
	if id == "" {
		return nil
	}
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// syncFavorite makes favorites membership of e match e.IsFavorite, replacing a
// stale snapshot in place.
func syncFavorite(favs []*entry.JournalEntry, e *entry.JournalEntry) ([]*entry.JournalEntry, bool) {
	if !e.IsFavorite {
		return removeFavorite(favs, e.ID)
	}
	for i, f := range favs {
		if f.ID == e.ID {
			favs[i] = e.Clone()
			return favs, true
		}
	}
	return append(favs, e.Clone()), true
}

func removeFavorite(favs []*entry.JournalEntry, id string) ([]*entry.JournalEntry, bool) {
	out := make([]*entry.JournalEntry, 0, len(favs))
	for _, f := range favs {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out, len(out) != len(favs)
}

func sortNewestFirst(entries []*entry.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp.Time)
	})
}
