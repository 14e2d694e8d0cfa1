// Package calendar prints month grids coloured by the mood log.
package calendar

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodlog/pkg/aggregate"
	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/printers"
)

type Calendar struct {
	Month time.Time
	// Months is how many consecutive months to print, starting at Month.
	Months int
	Today  time.Time

	App *app.Service
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not draw calendar, no journal")
	}
	count := n.Months
	if count < 1 {
		count = 1
	}
	today := n.Today
	if today.IsZero() {
		today = time.Now()
	}

	moods := n.App.MoodEntries(ctx)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	month := n.Month
	for i := 0; i < count; i++ {
		pp.Calendar(aggregate.MonthGrid(moods, month), today)
		month = printers.NextMonth(month)
	}
	return nil
}
