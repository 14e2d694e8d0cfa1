// Package activities lists and extends the activity catalog.
package activities

import (
	"context"
	"errors"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/printers"
)

type Activities struct {
	// Add, when set, is the label of a new activity.
	Add  string
	Icon string

	App *app.Service
}

func (n *Activities) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not list activities, no journal")
	}
	if n.Add != "" {
		if _, err := n.App.AddActivity(ctx, n.Add, n.Icon); err != nil {
			return err
		}
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Activities(n.App.Activities(ctx))
	return nil
}
