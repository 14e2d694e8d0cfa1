// Package search prints journal entries matching a text query.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/search"
)

type Search struct {
	Query  string
	Month  time.Time
	ShowID bool
	App    *app.Service
}

func (n *Search) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not search, no journal")
	}
	results := search.Search(n.App.Entries(ctx), n.App.Activities(ctx), n.Query, n.Month)

	title := fmt.Sprintf("Search %q", n.Query)
	if n.Query == "" {
		title = n.Month.Format("January 2006")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount(title, len(results))
	pp.Table(n.App.Catalog(ctx), results...)
	return nil
}
