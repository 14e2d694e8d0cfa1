// Package add records a new journal entry from the command line.
package add

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/media"
	"tableflip.dev/moodlog/pkg/printers"
)

type Add struct {
	Mood       string
	Note       string
	Activities []string
	On         *time.Time
	Favorite   bool
	Photos     []string
	Recording  string

	// Draft saves the input as the new-entry draft instead of creating it.
	Draft bool
	// FromDraft starts from the saved new-entry draft and discards it once
	// the entry is stored.
	FromDraft bool

	App    *app.Service
	Media  media.Files
	Logger *zap.Logger
	Now    func() time.Time
}

func (n *Add) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.NewNop()
	}
	return n.Logger
}

func (n *Add) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add, no journal")
	}

	if n.Draft {
		return n.saveDraft(ctx)
	}

	e, err := n.build(ctx)
	if err != nil {
		return err
	}

	id, err := n.App.Create(ctx, e)
	if err != nil {
		return err
	}
	n.App.RememberMood(ctx, e.Mood)

	if err := n.attach(ctx, id); err != nil {
		return err
	}
	if n.FromDraft {
		if err := n.App.DiscardDraft(ctx, ""); err != nil {
			return err
		}
	}

	stored, err := n.App.Get(ctx, id)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(stored.Timestamp.Local().Format("Monday, January 2"))
	pp.Entries(n.App.Catalog(ctx), stored)
	return nil
}

func (n *Add) saveDraft(ctx context.Context) error {
	d := app.Draft{Note: n.Note, RecordingPath: n.Recording}
	if n.Mood != "" {
		m, err := n.App.ResolveMood(ctx, n.Mood)
		if err != nil {
			return err
		}
		d.Mood = &m
	}
	ids, err := n.App.ResolveActivities(ctx, n.Activities)
	if err != nil {
		return err
	}
	d.Activities = ids
	if err := n.App.SaveDraft(ctx, d); err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Fprintln(color.Output, "draft saved")
	return nil
}

func (n *Add) build(ctx context.Context) (*entry.JournalEntry, error) {
	var base *entry.JournalEntry
	if n.FromDraft {
		d, ok := n.App.LoadDraft(ctx, "")
		if !ok {
			return nil, errors.New("no draft saved")
		}
		base = d.Apply(&entry.JournalEntry{})
		if n.Mood == "" && base.Mood.DisplayName() != "" {
			n.Mood = strconv.Itoa(base.Mood.ID)
		}
		if n.Recording == "" {
			n.Recording = base.RecordingPath
		}
	}

	m, err := n.App.ResolveMood(ctx, n.Mood)
	if err != nil {
		return nil, err
	}
	ids, err := n.App.ResolveActivities(ctx, n.Activities)
	if err != nil {
		return nil, err
	}
	at := n.now()
	if n.On != nil {
		at = *n.On
	}

	note := n.Note
	if base != nil {
		if note == "" {
			note = base.Note
		}
		if len(ids) == 0 {
			ids = base.Activities
		}
	}
	e := entry.New(m, note, ids, at)
	e.IsFavorite = n.Favorite
	return e, nil
}

func (n *Add) attach(ctx context.Context, id string) error {
	if len(n.Photos) == 0 && n.Recording == "" {
		return nil
	}
	if n.Media == nil {
		return errors.New("can not attach media, no media store")
	}

	if len(n.Photos) > 0 {
		photos := make([]entry.Photo, 0, len(n.Photos))
		for i, src := range n.Photos {
			// Names are unix milliseconds, keep them distinct.
			p, err := media.ImportPhoto(ctx, n.Media, id, src, n.now().Add(time.Duration(i)*time.Millisecond))
			if err != nil {
				if !n.skip(id, src, err) {
					return err
				}
				continue
			}
			photos = append(photos, p)
		}
		if len(photos) > 0 {
			if _, err := n.App.AddPhotos(ctx, id, photos); err != nil {
				return err
			}
		}
	}

	if n.Recording != "" {
		dst, err := media.ImportRecording(ctx, n.Media, id, n.Recording)
		if err != nil {
			if !n.skip(id, n.Recording, err) {
				return err
			}
			return nil
		}
		if _, err := n.App.Update(ctx, id, app.Patch{RecordingPath: &dst}); err != nil {
			return err
		}
	}
	return nil
}

// skip logs a failed media copy. The entry is already stored, so only the
// attachment is dropped. Other errors are not skipped.
func (n *Add) skip(id, src string, err error) bool {
	if !media.IsError(err) {
		return false
	}
	n.logger().Warn("attachment skipped", zap.String("id", id), zap.String("source", src), zap.Error(err))
	_, _ = color.New(color.FgYellow).Fprintf(color.Output, "skipped %s: %v\n", src, err)
	return true
}
