package app

import (
	"context"
	"reflect"

	"go.uber.org/zap"

	"tableflip.dev/moodlog/pkg/collection"
	"tableflip.dev/moodlog/pkg/entry"
)

// ReconcileReport counts the repairs Reconcile made.
type ReconcileReport struct {
	// DroppedFavorites are snapshots whose journal entry is gone or no
	// longer flagged as favorite.
	DroppedFavorites int `json:"droppedFavorites"`
	// RefreshedFavorites are snapshots that no longer matched their entry.
	RefreshedFavorites int `json:"refreshedFavorites"`
	// AddedFavorites are flagged entries that had no snapshot.
	AddedFavorites int `json:"addedFavorites"`
	// OrphanMoods are mood log records pointing at a deleted entry.
	OrphanMoods int `json:"orphanMoods"`
}

// Changed reports whether any repair was made.
func (r ReconcileReport) Changed() bool {
	return r != ReconcileReport{}
}

// Reconcile repairs drift between the journal and the favorites and mood log
// collections. The journal entry's isFavorite flag is authoritative. Mood log
// records without a journal id are kept.
func (s *Service) Reconcile(ctx context.Context) (ReconcileReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report ReconcileReport
	journal, err := s.records.LoadJournal(ctx)
	if err != nil {
		return report, err
	}
	favs, err := s.records.LoadFavorites(ctx)
	if err != nil {
		return report, err
	}
	moods, err := s.records.LoadMoods(ctx)
	if err != nil {
		return report, err
	}
	byID := make(map[string]*entry.JournalEntry, len(journal))
	for _, e := range journal {
		byID[e.ID] = e
	}

	seen := make(map[string]bool, len(favs))
	nextFavs := make([]*entry.JournalEntry, 0, len(favs))
	for _, f := range favs {
		e, ok := byID[f.ID]
		if !ok || !e.IsFavorite || seen[f.ID] {
			report.DroppedFavorites++
			continue
		}
		seen[f.ID] = true
		if !reflect.DeepEqual(f, e) {
			report.RefreshedFavorites++
		}
		nextFavs = append(nextFavs, e.Clone())
	}
	for _, e := range journal {
		if e.IsFavorite && !seen[e.ID] {
			report.AddedFavorites++
			nextFavs = append(nextFavs, e.Clone())
		}
	}

	nextMoods := make([]*entry.MoodEntry, 0, len(moods))
	for _, m := range moods {
		if m.JournalID != "" && byID[m.JournalID] == nil {
			report.OrphanMoods++
			continue
		}
		nextMoods = append(nextMoods, m)
	}

	err = s.atomically(ctx, func() error {
		if report.DroppedFavorites+report.RefreshedFavorites+report.AddedFavorites > 0 {
			if err := s.records.StoreFavorites(ctx, nextFavs); err != nil {
				return err
			}
		}
		if report.OrphanMoods > 0 {
			return s.records.StoreMoods(ctx, nextMoods)
		}
		return nil
	}, collection.Favorites, collection.Moods)
	if err != nil {
		return ReconcileReport{}, err
	}
	if report.Changed() {
		s.logger.Info("collections reconciled",
			zap.Int("droppedFavorites", report.DroppedFavorites),
			zap.Int("refreshedFavorites", report.RefreshedFavorites),
			zap.Int("addedFavorites", report.AddedFavorites),
			zap.Int("orphanMoods", report.OrphanMoods))
	}
	return report, nil
}
