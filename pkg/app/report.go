package app

import (
	"context"
	"time"

	"tableflip.dev/moodlog/pkg/aggregate"
	"tableflip.dev/moodlog/pkg/entry"
)

// ReportSection groups the entries written on one local calendar day.
type ReportSection struct {
	Day     string                `json:"day"`
	Date    time.Time             `json:"date"`
	Entries []*entry.JournalEntry `json:"entries"`
}

// ReportResult encapsulates the journal entries written in a time window.
type ReportResult struct {
	Since    time.Time            `json:"since"`
	Until    time.Time            `json:"until"`
	Sections []ReportSection      `json:"sections"`
	Counts   aggregate.MoodCounts `json:"counts"`
	Total    int                  `json:"total"`
}

// Report returns journal entries grouped by day, newest day first, between
// the provided bounds.
func (s *Service) Report(ctx context.Context, since, until time.Time) (ReportResult, error) {
	if err := ctx.Err(); err != nil {
		return ReportResult{}, err
	}
	if since.After(until) {
		since, until = until, since
	}
	inWindow := aggregate.FilterRange(s.records.Journal(ctx), since, until)

	groups := aggregate.GroupByDay(inWindow)
	sections := make([]ReportSection, 0, len(groups))
	for _, g := range groups {
		sections = append(sections, ReportSection{
			Day:     g.Key,
			Date:    g.Date,
			Entries: g.Items,
		})
	}

	return ReportResult{
		Since:    since,
		Until:    until,
		Sections: sections,
		Counts:   aggregate.CountMoods(inWindow),
		Total:    len(inWindow),
	}, nil
}
