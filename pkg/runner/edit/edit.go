// Package edit changes fields of an existing journal entry.
package edit

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/printers"
)

// Edit applies the non-nil fields to the entry ID.
type Edit struct {
	ID         string
	Mood       *string
	Note       *string
	Activities *[]string
	On         *time.Time

	App *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not edit, no journal")
	}
	e, err := n.App.Resolve(ctx, n.ID)
	if err != nil {
		return err
	}

	patch := app.Patch{Note: n.Note, Timestamp: n.On}
	if n.Mood != nil {
		m, err := n.App.ResolveMood(ctx, *n.Mood)
		if err != nil {
			return err
		}
		patch.Mood = &m
	}
	if n.Activities != nil {
		ids, err := n.App.ResolveActivities(ctx, *n.Activities)
		if err != nil {
			return err
		}
		patch.Activities = &ids
	}
	if patch == (app.Patch{}) {
		return errors.New("nothing to change")
	}

	updated, err := n.App.Update(ctx, e.ID, patch)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Entry(n.App.Catalog(ctx), updated)
	return nil
}
