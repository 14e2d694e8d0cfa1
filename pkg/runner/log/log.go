// Package log prints the journal grouped by day.
package log

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/printers"
)

// Log lists entries written between Since and Until, or the favorites when
// Favorites is set.
type Log struct {
	Since time.Time
	Until time.Time
	// Label describes the window in the title, for example "last 1w".
	Label     string
	Favorites bool
	ShowID    bool
	JSON      bool

	App *app.Service
}

func (n *Log) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not list, no journal")
	}
	catalog := n.App.Catalog(ctx)
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.Favorites {
		favs := n.App.Favorites(ctx)
		if n.JSON {
			return printJSON(favs)
		}
		pp.NewLine()
		pp.TitleWithCount("Favorites", len(favs))
		pp.Entries(catalog, favs...)
		return nil
	}

	result, err := n.App.Report(ctx, n.Since, n.Until)
	if err != nil {
		return err
	}
	if n.JSON {
		return printJSON(result)
	}

	f := color.New(color.Faint)
	_, _ = f.Fprintf(color.Output, "\n%s (%s → %s)\n\n", n.Label,
		result.Since.Local().Format("2006-01-02 15:04"),
		result.Until.Local().Format("2006-01-02 15:04"))

	for _, section := range result.Sections {
		pp.TitleWithCount(section.Date.Format("Monday, January 2"), len(section.Entries))
		pp.Entries(catalog, section.Entries...)
	}
	if result.Total == 0 {
		_, _ = f.Fprintln(color.Output, "No entries found in this window.")
		pp.NewLine()
		return nil
	}
	pp.Counts(result.Counts, mood.Colors(mood.ChartStyles()))
	return nil
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
