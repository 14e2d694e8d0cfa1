// Package reconcile repairs favorites and mood log drift.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/app"
)

type Reconcile struct {
	App *app.Service
}

func (n *Reconcile) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not reconcile, no journal")
	}
	report, err := n.App.Reconcile(ctx)
	if err != nil {
		return err
	}
	if !report.Changed() {
		_, _ = color.New(color.Faint).Fprintln(color.Output, "nothing to repair")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("dropped favorites", report.DroppedFavorites)
	tbl.AddRow("refreshed favorites", report.RefreshedFavorites)
	tbl.AddRow("added favorites", report.AddedFavorites)
	tbl.AddRow("orphan mood records", report.OrphanMoods)
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
