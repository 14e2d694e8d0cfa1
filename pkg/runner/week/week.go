// Package week prints the mood counts, gauge and chart of one week.
package week

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/aggregate"
	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/printers"
)

// Week summarizes the week containing On. Counts and the gauge always use
// Monday-first weeks; the chart starts on WeekStartsOn.
type Week struct {
	On           time.Time
	WeekStartsOn time.Weekday
	Chart        bool

	App *app.Service
}

func (n *Week) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not summarize, no journal")
	}
	moods := n.App.MoodEntries(ctx)
	pp := printers.PrettyPrint{}
	pp.NewLine()

	if n.Chart {
		start, end := aggregate.WeekRange(n.On, n.WeekStartsOn)
		pp.Title(fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2")))
		pp.Chart(aggregate.WeeklyChart(moods, n.On, n.WeekStartsOn))
		return nil
	}

	start, end := aggregate.WeekRange(n.On, time.Monday)
	counts := aggregate.WeeklyMoodCounts(moods, n.On, time.Monday)
	pp.TitleWithCount(fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2")), counts.Total)
	pp.Gauge(aggregate.GaugeSegments(counts, mood.Colors(mood.GaugeStyles())))
	pp.Counts(counts, mood.Colors(mood.GaugeStyles()))
	return nil
}
