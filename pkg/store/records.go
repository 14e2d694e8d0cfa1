package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/moodlog/pkg/collection"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

// Records reads and writes the typed collections on top of a Persistence.
// Typed reads never fail: an absent collection is empty and an undecodable one
// is logged as a ReadError and treated as empty. The Load variants are the
// strict reads for read-modify-write paths and return the ReadError instead.
// Writes replace the whole collection and return any error.
type Records struct {
	kv     Persistence
	logger *zap.Logger
}

// Option configures Records.
type Option func(*Records)

// WithLogger sets the logger used to report degraded reads.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Records) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRecords wraps kv.
func NewRecords(kv Persistence, opts ...Option) *Records {
	r := &Records{kv: kv, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Journal returns the journal entries in stored order (newest first).
func (r *Records) Journal(ctx context.Context) []*entry.JournalEntry {
	var list []*entry.JournalEntry
	if !r.load(ctx, collection.Journal, &list) {
		return []*entry.JournalEntry{}
	}
	return compactEntries(list)
}

// LoadJournal is the strict form of Journal.
func (r *Records) LoadJournal(ctx context.Context) ([]*entry.JournalEntry, error) {
	var list []*entry.JournalEntry
	if _, err := r.decode(ctx, collection.Journal, &list); err != nil {
		return nil, err
	}
	return compactEntries(list), nil
}

// StoreJournal replaces the journal collection.
func (r *Records) StoreJournal(ctx context.Context, entries []*entry.JournalEntry) error {
	return r.store(ctx, collection.Journal, nonNil(entries))
}

// Moods returns the mood log in append order.
func (r *Records) Moods(ctx context.Context) []*entry.MoodEntry {
	var list []*entry.MoodEntry
	if !r.load(ctx, collection.Moods, &list) {
		return []*entry.MoodEntry{}
	}
	return compactMoods(list)
}

// LoadMoods is the strict form of Moods.
func (r *Records) LoadMoods(ctx context.Context) ([]*entry.MoodEntry, error) {
	var list []*entry.MoodEntry
	if _, err := r.decode(ctx, collection.Moods, &list); err != nil {
		return nil, err
	}
	return compactMoods(list), nil
}

// StoreMoods replaces the mood log.
func (r *Records) StoreMoods(ctx context.Context, moods []*entry.MoodEntry) error {
	if moods == nil {
		moods = []*entry.MoodEntry{}
	}
	return r.store(ctx, collection.Moods, moods)
}

// Favorites returns the favorite snapshots.
func (r *Records) Favorites(ctx context.Context) []*entry.JournalEntry {
	var list []*entry.JournalEntry
	if !r.load(ctx, collection.Favorites, &list) {
		return []*entry.JournalEntry{}
	}
	return compactEntries(list)
}

// LoadFavorites is the strict form of Favorites.
func (r *Records) LoadFavorites(ctx context.Context) ([]*entry.JournalEntry, error) {
	var list []*entry.JournalEntry
	if _, err := r.decode(ctx, collection.Favorites, &list); err != nil {
		return nil, err
	}
	return compactEntries(list), nil
}

// StoreFavorites replaces the favorite snapshots.
func (r *Records) StoreFavorites(ctx context.Context, entries []*entry.JournalEntry) error {
	return r.store(ctx, collection.Favorites, nonNil(entries))
}

// Activities returns the activity catalog, or the defaults when none is
// stored or it cannot be decoded.
func (r *Records) Activities(ctx context.Context) []entry.Activity {
	var list []entry.Activity
	if !r.load(ctx, collection.Activities, &list) || len(list) == 0 {
		return entry.DefaultActivities()
	}
	return list
}

// LoadActivities is the strict form of Activities.
func (r *Records) LoadActivities(ctx context.Context) ([]entry.Activity, error) {
	var list []entry.Activity
	found, err := r.decode(ctx, collection.Activities, &list)
	if err != nil {
		return nil, err
	}
	if !found || len(list) == 0 {
		return entry.DefaultActivities(), nil
	}
	return list, nil
}

// StoreActivities replaces the activity catalog.
func (r *Records) StoreActivities(ctx context.Context, activities []entry.Activity) error {
	if activities == nil {
		activities = []entry.Activity{}
	}
	return r.store(ctx, collection.Activities, activities)
}

// Settings returns the normalized mood settings.
func (r *Records) Settings(ctx context.Context) mood.Settings {
	s := mood.DefaultSettings()
	if !r.load(ctx, collection.Settings, &s) {
		return mood.DefaultSettings()
	}
	return s.Normalize()
}

// StoreSettings persists the mood settings.
func (r *Records) StoreSettings(ctx context.Context, s mood.Settings) error {
	return r.store(ctx, collection.Settings, s.Normalize())
}

// Value decodes an arbitrary key into out and reports whether it was found
// and decoded.
func (r *Records) Value(ctx context.Context, key collection.Name, out interface{}) bool {
	return r.load(ctx, key, out)
}

// StoreValue persists v under key.
func (r *Records) StoreValue(ctx context.Context, key collection.Name, v interface{}) error {
	return r.store(ctx, key, v)
}

// Erase removes key.
func (r *Records) Erase(ctx context.Context, key collection.Name) error {
	return r.kv.Erase(ctx, string(key))
}

// Raw is the strict read: ErrNotFound for absent keys, a ReadError for data
// that is not valid JSON.
func (r *Records) Raw(ctx context.Context, key collection.Name) ([]byte, error) {
	data, err := r.kv.Read(ctx, string(key))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, &ReadError{Key: string(key), Err: err}
	}
	if len(data) > 0 && !json.Valid(data) {
		return data, &ReadError{Key: string(key), Err: errors.New("invalid JSON")}
	}
	return data, nil
}

// Collections describes every stored key.
func (r *Records) Collections(ctx context.Context) []collection.Meta {
	keys := r.kv.Keys(ctx)
	metas := make([]collection.Meta, 0, len(keys))
	for _, key := range keys {
		meta := collection.Meta{Name: collection.Name(key)}
		data, err := r.kv.Read(ctx, key)
		if err != nil {
			meta.Error = err.Error()
			metas = append(metas, meta)
			continue
		}
		meta.Bytes = len(data)
		if n, err := collection.CountRecords(data); err != nil {
			meta.Error = err.Error()
		} else {
			meta.Records = n
		}
		metas = append(metas, meta)
	}
	return metas
}

// Watch forwards to the underlying Persistence.
func (r *Records) Watch(ctx context.Context) (<-chan Event, error) {
	return r.kv.Watch(ctx)
}

// Snapshot holds the stored bytes of one collection so a failed multi-collection
// write can be undone.
type Snapshot struct {
	Key     collection.Name
	data    []byte
	present bool
}

// Snapshot captures key as it is stored now.
func (r *Records) Snapshot(ctx context.Context, key collection.Name) (Snapshot, error) {
	data, err := r.kv.Read(ctx, string(key))
	if errors.Is(err, ErrNotFound) {
		return Snapshot{Key: key}, nil
	}
	if err != nil {
		return Snapshot{}, &ReadError{Key: string(key), Err: err}
	}
	return Snapshot{Key: key, data: append([]byte(nil), data...), present: true}, nil
}

// Restore puts snap back. A key that was absent is erased. A key that still
// holds the captured bytes is left alone.
func (r *Records) Restore(ctx context.Context, snap Snapshot) error {
	data, err := r.kv.Read(ctx, string(snap.Key))
	switch {
	case errors.Is(err, ErrNotFound):
		if !snap.present {
			return nil
		}
	case err == nil:
		if snap.present && bytes.Equal(data, snap.data) {
			return nil
		}
	}
	if !snap.present {
		return r.kv.Erase(ctx, string(snap.Key))
	}
	return r.kv.Write(ctx, string(snap.Key), snap.data)
}

// decode reads key into out. An absent or empty key reports false with no
// error; unreadable or undecodable data is a ReadError.
func (r *Records) decode(ctx context.Context, key collection.Name, out interface{}) (bool, error) {
	data, err := r.kv.Read(ctx, string(key))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, &ReadError{Key: string(key), Err: err}
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, &ReadError{Key: string(key), Err: err}
	}
	return true, nil
}

// load is decode for the lenient reads. Callers must discard out when it
// returns false, it may hold a partial decode.
func (r *Records) load(ctx context.Context, key collection.Name, out interface{}) bool {
	found, err := r.decode(ctx, key, out)
	if err != nil {
		r.logger.Warn("collection unreadable, using empty",
			zap.String("collection", string(key)),
			zap.Error(err))
		return false
	}
	return found
}

func (r *Records) store(ctx context.Context, key collection.Name, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.kv.Write(ctx, string(key), data)
}

func compactEntries(list []*entry.JournalEntry) []*entry.JournalEntry {
	out := make([]*entry.JournalEntry, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		e.Normalize()
		out = append(out, e)
	}
	return out
}

func compactMoods(list []*entry.MoodEntry) []*entry.MoodEntry {
	out := make([]*entry.MoodEntry, 0, len(list))
	for _, m := range list {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

func nonNil(entries []*entry.JournalEntry) []*entry.JournalEntry {
	out := make([]*entry.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
