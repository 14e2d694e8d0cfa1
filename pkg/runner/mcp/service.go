// Package mcp provides the Model Context Protocol server integration for
// moodlog.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"tableflip.dev/moodlog/pkg/aggregate"
	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/collection"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/search"
)

// Service adapts the journal repository to transport-friendly values.
type Service struct {
	App *app.Service
	// WeekStartsOn is the first weekday of the chart. Calendar views always
	// start on Monday.
	WeekStartsOn time.Weekday
	Now          func() time.Time
}

// NewService builds a service wrapper around the journal repository.
func NewService(svc *app.Service, weekStartsOn time.Weekday) *Service {
	return &Service{App: svc, WeekStartsOn: weekStartsOn, Now: time.Now}
}

// EntryDTO is a transport-friendly projection of a journal entry.
type EntryDTO struct {
	ID           string   `json:"id"`
	Timestamp    string   `json:"timestamp"`
	Day          string   `json:"day"`
	Mood         string   `json:"mood"`
	MoodID       int      `json:"moodId"`
	MoodColor    string   `json:"moodColor,omitempty"`
	Emoji        string   `json:"emoji,omitempty"`
	Note         string   `json:"note,omitempty"`
	Activities   []string `json:"activities"`
	Photos       []string `json:"photos,omitempty"`
	PhotoKind    string   `json:"photoKind"`
	HasRecording bool     `json:"hasRecording"`
	IsFavorite   bool     `json:"isFavorite"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}

// CreateEntryOptions captures the parameters used to create a new entry.
type CreateEntryOptions struct {
	Mood       string
	Note       string
	Activities []string
	At         *time.Time
	Favorite   bool
}

// UpdateEntryOptions captures the fields to change on an entry. Nil fields
// are left untouched.
type UpdateEntryOptions struct {
	ID         string
	Mood       *string
	Note       *string
	Activities *[]string
	At         *time.Time
}

// CalendarDay is one cell of the month calendar.
type CalendarDay struct {
	Day      string   `json:"day"`
	InMonth  bool     `json:"inMonth"`
	Count    int      `json:"count"`
	Colors   []string `json:"colors,omitempty"`
	Overflow int      `json:"overflow,omitempty"`
	Tint     string   `json:"tint,omitempty"`
}

// Calendar is a month of Monday-first weeks.
type Calendar struct {
	Month string          `json:"month"`
	Weeks [][]CalendarDay `json:"weeks"`
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// CreateEntry stores a new journal entry.
func (s *Service) CreateEntry(ctx context.Context, opts CreateEntryOptions) (*EntryDTO, error) {
	m, err := s.App.ResolveMood(ctx, opts.Mood)
	if err != nil {
		return nil, err
	}
	ids, err := s.App.ResolveActivities(ctx, opts.Activities)
	if err != nil {
		return nil, err
	}
	at := s.now()
	if opts.At != nil {
		at = *opts.At
	}

	e := entry.New(m, opts.Note, ids, at)
	e.IsFavorite = opts.Favorite
	id, err := s.App.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	s.App.RememberMood(ctx, m)
	return s.EntryByID(ctx, id)
}

// UpdateEntry applies opts to an existing entry.
func (s *Service) UpdateEntry(ctx context.Context, opts UpdateEntryOptions) (*EntryDTO, error) {
	patch := app.Patch{Note: opts.Note, Timestamp: opts.At}
	if opts.Mood != nil {
		m, err := s.App.ResolveMood(ctx, *opts.Mood)
		if err != nil {
			return nil, err
		}
		patch.Mood = &m
	}
	if opts.Activities != nil {
		ids, err := s.App.ResolveActivities(ctx, *opts.Activities)
		if err != nil {
			return nil, err
		}
		patch.Activities = &ids
	}
	id, err := s.resolveID(ctx, opts.ID)
	if err != nil {
		return nil, err
	}
	e, err := s.App.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, s.App.Catalog(ctx))
	return &dto, nil
}

// DeleteEntry removes an entry and everything that references it.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	id, err := s.resolveID(ctx, id)
	if err != nil {
		return err
	}
	return s.App.Delete(ctx, id)
}

// ToggleFavorite flips the favorite flag of an entry.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (*EntryDTO, error) {
	id, err := s.resolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.App.ToggleFavorite(ctx, id); err != nil {
		return nil, err
	}
	return s.EntryByID(ctx, id)
}

// AddPhotos attaches already stored image files to an entry.
func (s *Service) AddPhotos(ctx context.Context, id string, uris []string) (*EntryDTO, error) {
	if len(uris) == 0 {
		return nil, errors.New("at least one photo uri is required")
	}
	id, err := s.resolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	photos := make([]entry.Photo, 0, len(uris))
	for _, uri := range uris {
		uri = strings.TrimSpace(uri)
		photos = append(photos, entry.Photo{URI: uri, Name: path.Base(uri), Type: "image/jpeg"})
	}
	e, err := s.App.AddPhotos(ctx, id, photos)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, s.App.Catalog(ctx))
	return &dto, nil
}

// EntryByID fetches a single entry.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	e, err := s.App.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, s.App.Catalog(ctx))
	return &dto, nil
}

// ListEntries returns the entries of month, newest first.
func (s *Service) ListEntries(ctx context.Context, month time.Time) []EntryDTO {
	return toDTOs(aggregate.FilterByMonth(s.App.Entries(ctx), month), s.App.Catalog(ctx))
}

// ListFavorites returns the favorite entries.
func (s *Service) ListFavorites(ctx context.Context) []EntryDTO {
	return toDTOs(s.App.Favorites(ctx), s.App.Catalog(ctx))
}

// SearchEntries matches query against dates, moods, notes and activities.
// A blank query lists month.
func (s *Service) SearchEntries(ctx context.Context, query string, month time.Time, limit int) []EntryDTO {
	results := search.Search(s.App.Entries(ctx), s.App.Activities(ctx), query, month)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return toDTOs(results, s.App.Catalog(ctx))
}

// WeeklyCounts tallies the mood log for the Monday-first week containing ref.
func (s *Service) WeeklyCounts(ctx context.Context, ref time.Time) aggregate.MoodCounts {
	return aggregate.WeeklyMoodCounts(s.App.MoodEntries(ctx), ref, time.Monday)
}

// Gauge splits the half-circle gauge for the week containing ref.
func (s *Service) Gauge(ctx context.Context, ref time.Time) []aggregate.Segment {
	return aggregate.GaugeSegments(s.WeeklyCounts(ctx, ref), mood.Colors(mood.GaugeStyles()))
}

// Chart returns the weekly chart for the week containing ref.
func (s *Service) Chart(ctx context.Context, ref time.Time) []aggregate.ChartDay {
	return aggregate.WeeklyChart(s.App.MoodEntries(ctx), ref, s.WeekStartsOn)
}

// Insights summarizes the journal for the month or the week containing ref.
func (s *Service) Insights(ctx context.Context, ref time.Time, period string) (aggregate.Insights, error) {
	entries := s.App.Entries(ctx)
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", "month":
		return aggregate.MonthlyInsights(entries, ref), nil
	case "week":
		return aggregate.WeeklyInsights(entries, ref, s.WeekStartsOn), nil
	default:
		return aggregate.Insights{}, fmt.Errorf("unknown period %q (expected month or week)", period)
	}
}

// Calendar lays out the mood log for month.
func (s *Service) Calendar(ctx context.Context, month time.Time) Calendar {
	grid := aggregate.MonthGrid(s.App.MoodEntries(ctx), month)
	cal := Calendar{Month: grid.Month.Format("January 2006")}
	for _, week := range grid.Weeks {
		days := make([]CalendarDay, 0, len(week))
		for _, c := range week {
			days = append(days, CalendarDay{
				Day:      c.Key,
				InMonth:  c.InMonth,
				Count:    len(c.Items),
				Colors:   c.Colors,
				Overflow: c.Overflow,
				Tint:     c.Tint,
			})
		}
		cal.Weeks = append(cal.Weeks, days)
	}
	return cal
}

// Collections describes the stored collections.
func (s *Service) Collections(ctx context.Context) []collection.Meta {
	return s.App.Records().Collections(ctx)
}

func (s *Service) resolveID(ctx context.Context, ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", errors.New("entry id is required")
	}
	e, err := s.App.Resolve(ctx, ref)
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

func toDTOs(entries []*entry.JournalEntry, catalog entry.Catalog) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e, catalog))
	}
	return out
}

func toDTO(e *entry.JournalEntry, catalog entry.Catalog) EntryDTO {
	ref := e.PhotoRef()
	dto := EntryDTO{
		ID:           e.ID,
		Timestamp:    entry.FormatTime(e.Timestamp.Time),
		Day:          e.Timestamp.DayKey(),
		Mood:         e.Mood.DisplayName(),
		MoodID:       e.MoodID,
		MoodColor:    e.Mood.Color,
		Emoji:        e.Mood.Emoji,
		Note:         e.Note,
		Activities:   catalog.Labels(e.Activities),
		PhotoKind:    ref.Kind.String(),
		HasRecording: e.HasRecording,
		IsFavorite:   e.IsFavorite,
	}
	if ref.Kind != entry.PhotoInlineBase64 {
		dto.Photos = ref.Images()
	}
	if e.UpdatedAt != nil {
		dto.UpdatedAt = entry.FormatTime(e.UpdatedAt.Time)
	}
	if dto.Activities == nil {
		dto.Activities = []string{}
	}
	return dto
}
