// Package watch prints store change notifications until cancelled.
package watch

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/store"
)

type Watch struct {
	App *app.Service
}

func (n *Watch) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not watch, no journal")
	}
	events, err := n.App.Watch(ctx)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	b := color.New(color.Bold)
	for ev := range events {
		_, _ = f.Fprintf(color.Output, "%s ", time.Now().Format("15:04:05"))
		switch ev.Type {
		case store.EventCollectionsInvalidated:
			_, _ = b.Fprintln(color.Output, "collections changed")
		default:
			_, _ = color.New().Fprintf(color.Output, "%s %s\n", ev.Type, ev.Collection)
		}
	}
	return nil
}
