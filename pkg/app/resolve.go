package app

import (
	"context"
	"fmt"
	"strings"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

// ResolveMood finds the current mood named by raw (a name or a 0-4 id). A
// blank raw falls back to the last selected mood.
func (s *Service) ResolveMood(ctx context.Context, raw string) (entry.Mood, error) {
	if strings.TrimSpace(raw) == "" {
		if m, ok := s.LastMood(ctx); ok {
			return m, nil
		}
		return entry.Mood{}, fmt.Errorf("%w: mood is required", ErrValidation)
	}
	moods := s.Moods(ctx)
	m, ok := mood.Find(moods, raw)
	if !ok {
		names := make([]string, 0, len(moods))
		for _, m := range moods {
			names = append(names, m.DisplayName())
		}
		return entry.Mood{}, fmt.Errorf("%w: unknown mood %q (expected one of %s)", ErrValidation, raw, strings.Join(names, ", "))
	}
	return m, nil
}

// ResolveActivities maps activity labels or ids to catalog ids.
func (s *Service) ResolveActivities(ctx context.Context, raw []string) ([]int, error) {
	catalog := s.Catalog(ctx)
	ids := make([]int, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		a, ok := catalog.Lookup(r)
		if !ok {
			return nil, fmt.Errorf("%w: unknown activity %q", ErrValidation, r)
		}
		ids = append(ids, a.ID)
	}
	return entry.UniqueActivities(ids), nil
}

// AddActivity appends a new activity to the catalog with the next free id.
// Labels are unique ignoring case.
func (s *Service) AddActivity(ctx context.Context, label, icon string) (entry.Activity, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return entry.Activity{}, fmt.Errorf("%w: activity label is required", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.records.LoadActivities(ctx)
	if err != nil {
		return entry.Activity{}, err
	}
	next := 1
	for _, a := range activities {
		if strings.EqualFold(a.Label, label) {
			return entry.Activity{}, fmt.Errorf("%w: activity %q already exists", ErrValidation, label)
		}
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	a := entry.Activity{ID: next, Icon: strings.TrimSpace(icon), Label: label}
	if err := s.records.StoreActivities(ctx, append(activities, a)); err != nil {
		return entry.Activity{}, err
	}
	return a, nil
}
