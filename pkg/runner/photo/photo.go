// Package photo copies image files into the media store and attaches them to
// a journal entry.
package photo

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/media"
	"tableflip.dev/moodlog/pkg/printers"
)

type Photo struct {
	ID    string
	Paths []string

	App    *app.Service
	Media  media.Files
	Logger *zap.Logger
	Now    func() time.Time
}

func (n *Photo) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.NewNop()
	}
	return n.Logger
}

func (n *Photo) Do(ctx context.Context) error {
	if n.App == nil || n.Media == nil {
		return errors.New("can not add photos, no journal or media store")
	}
	if len(n.Paths) == 0 {
		return errors.New("no photo paths given")
	}
	e, err := n.App.Resolve(ctx, n.ID)
	if err != nil {
		return err
	}

	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	start := now()
	photos := make([]entry.Photo, 0, len(n.Paths))
	for i, src := range n.Paths {
		p, err := media.ImportPhoto(ctx, n.Media, e.ID, src, start.Add(time.Duration(i)*time.Millisecond))
		if err != nil {
			if !media.IsError(err) {
				return err
			}
			n.logger().Warn("photo skipped", zap.String("id", e.ID), zap.String("source", src), zap.Error(err))
			_, _ = color.New(color.FgYellow).Fprintf(color.Output, "skipped %s: %v\n", src, err)
			continue
		}
		photos = append(photos, p)
	}
	if len(photos) == 0 {
		return errors.New("no photos could be copied")
	}

	updated, err := n.App.AddPhotos(ctx, e.ID, photos)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Entry(n.App.Catalog(ctx), updated)
	return nil
}
