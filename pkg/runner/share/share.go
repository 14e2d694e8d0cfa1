// Package share prints a plain-text summary of an entry and exports its
// voice memo.
package share

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/media"
)

type Share struct {
	ID string
	// MemoDir, when set, receives a copy of the entry's voice memo.
	MemoDir string

	App   *app.Service
	Media media.Files
	Now   func() time.Time
}

func (n *Share) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not share, no journal")
	}
	e, err := n.App.Resolve(ctx, n.ID)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(color.Output, entry.ShareText(e, n.App.Catalog(ctx)))

	if n.MemoDir == "" {
		return nil
	}
	if e.RecordingPath == "" {
		return errors.New("entry has no voice memo")
	}
	if n.Media == nil {
		return errors.New("can not export voice memo, no media store")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	dst := filepath.Join(n.MemoDir, entry.VoiceMemoName(now()))
	if err := n.Media.Copy(ctx, e.RecordingPath, dst); err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Fprintf(color.Output, "voice memo exported to %s\n", dst)
	return nil
}
