// Package insights prints the dominant mood, best and worst days, and mood
// distribution of a month or week.
package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/aggregate"
	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/printers"
)

type Insights struct {
	On           time.Time
	Week         bool
	WeekStartsOn time.Weekday
	JSON         bool

	App *app.Service
}

func (n *Insights) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not summarize, no journal")
	}
	entries := n.App.Entries(ctx)

	var (
		title  string
		result aggregate.Insights
	)
	if n.Week {
		start, end := aggregate.WeekRange(n.On, n.WeekStartsOn)
		title = fmt.Sprintf("Week of %s - %s", start.Format("Jan 2"), end.Format("Jan 2"))
		result = aggregate.WeeklyInsights(entries, n.On, n.WeekStartsOn)
	} else {
		title = n.On.Format("January 2006")
		result = aggregate.MonthlyInsights(entries, n.On)
	}

	if n.JSON {
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Insights(title, result)
	return nil
}
