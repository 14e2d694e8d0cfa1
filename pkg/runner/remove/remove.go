// Package remove deletes journal entries along with their mood records,
// favorite and media.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/app"
)

type Remove struct {
	IDs []string
	App *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not delete, no journal")
	}
	if len(n.IDs) == 0 {
		return errors.New("no entry ids given")
	}
	f := color.New(color.Faint)
	for _, ref := range n.IDs {
		e, err := n.App.Resolve(ctx, ref)
		if err != nil {
			return err
		}
		if err := n.App.Delete(ctx, e.ID); err != nil {
			return fmt.Errorf("delete %s: %w", e.ID, err)
		}
		_, _ = f.Fprintf(color.Output, "deleted %s\n", e.ID)
	}
	return nil
}
