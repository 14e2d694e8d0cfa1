package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/aggregate"
	"tableflip.dev/moodlog/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a Monday-first month. Days with records are coloured by
// their newest mood, and a trailing mark shows when the day holds more than
// one mood colour.
func (pp *PrettyPrint) Calendar(grid aggregate.Month[*entry.MoodEntry], today time.Time) {
	tf := color.New(color.FgWhite, color.Italic)

	m := grid.Month.Format("January 2006")
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = color.New(color.Faint).Fprintln(pp.out(), "Mo Tu We Th Fr Sa Su")

	todayKey := aggregate.DayKey(today)

	for _, week := range grid.Weeks {
		var b strings.Builder
		for i, cell := range week {
			var attrs []color.Attribute
			switch {
			case !cell.InMonth:
				attrs = []color.Attribute{color.Faint, color.FgHiBlack}
			case len(cell.Colors) > 0:
				attrs = []color.Attribute{Attribute(cell.Colors[0]), color.Bold}
			default:
				attrs = []color.Attribute{color.Faint, color.FgWhite}
			}
			if cell.Key == todayKey {
				attrs = append(attrs, color.Underline)
			}
			printer := color.New(attrs...)
			b.WriteString(printer.Sprintf("%2d", cell.Date.Day()))
			switch {
			case cell.InMonth && cell.MultiColor():
				b.WriteString(color.New(color.Faint).Sprint("+"))
			case i < len(week)-1:
				b.WriteString(" ")
			}
		}
		_, _ = fmt.Fprintln(pp.out(), b.String())
	}
	pp.NewLine()
}

// NextMonth returns the first day of the month after then.
func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, then.Location())
}
