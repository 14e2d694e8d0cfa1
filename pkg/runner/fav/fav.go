// Package fav toggles the favorite flag of journal entries.
package fav

import (
	"context"
	"errors"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/printers"
)

type Fav struct {
	ID  string
	App *app.Service
}

func (n *Fav) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not toggle favorite, no journal")
	}
	e, err := n.App.Resolve(ctx, n.ID)
	if err != nil {
		return err
	}
	if _, err := n.App.ToggleFavorite(ctx, e.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.TitleWithCount("Favorites", len(n.App.Favorites(ctx)))
	pp.Entries(n.App.Catalog(ctx), n.App.Favorites(ctx)...)
	return nil
}
