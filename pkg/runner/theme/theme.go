// Package theme shows and changes the mood palette, emoji theme and names.
package theme

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/printers"
)

// Theme changes the non-nil selections and prints the resulting moods.
type Theme struct {
	Palette    *int
	EmojiTheme *int
	// Rename maps mood slots (0-4) to new names.
	Rename map[int]string
	// List prints every palette and emoji theme.
	List bool

	App *app.Service
}

func (n *Theme) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not change theme, no journal")
	}
	if n.List {
		n.list()
		return nil
	}

	settings := n.App.Settings(ctx)
	changed := false
	if n.Palette != nil {
		if *n.Palette < 0 || *n.Palette >= len(mood.Palettes()) {
			return fmt.Errorf("palette must be between 0 and %d", len(mood.Palettes())-1)
		}
		settings.Palette = *n.Palette
		changed = true
	}
	if n.EmojiTheme != nil {
		if *n.EmojiTheme < 0 || *n.EmojiTheme >= len(mood.EmojiThemes()) {
			return fmt.Errorf("emoji theme must be between 0 and %d", len(mood.EmojiThemes())-1)
		}
		settings.EmojiTheme = *n.EmojiTheme
		changed = true
	}
	for slot, name := range n.Rename {
		var err error
		if settings, err = settings.Rename(slot, name); err != nil {
			return err
		}
		changed = true
	}
	if changed {
		if err := n.App.SaveSettings(ctx, settings); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Moods(settings.Moods())
	return nil
}

func (n *Theme) list() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Palette"), "")
	for i, palette := range mood.Palettes() {
		row := ""
		for _, s := range palette {
			row += color.New(printers.Attribute(s.Color)).Sprint("■ ")
		}
		tbl.AddRow(i, row+palette[0].Name+" …")
	}
	tbl.AddRow("", "")
	tbl.AddRow(bold.Sprint("Emoji"), "")
	for i, theme := range mood.EmojiThemes() {
		row := ""
		for _, e := range theme {
			row += e + "  "
		}
		tbl.AddRow(i, row)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(color.Output, tbl)
}
