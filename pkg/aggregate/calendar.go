package aggregate

import (
	"time"

	"tableflip.dev/moodlog/pkg/mood"
)

// CellTintAlpha is the opacity of a day's mood colour over the cell
// background.
const CellTintAlpha = float64(0x30) / 255

// MaxCellColors is how many distinct mood colours a cell shows before
// collapsing the rest into Overflow.
const MaxCellColors = 3

// Cell is one day of the month grid.
type Cell[T Moody] struct {
	Date    time.Time
	Key     string
	InMonth bool
	// Items are the day's records, newest first. Items[0] decides the tint.
	Items    []T
	Colors   []string
	Overflow int
	Tint     string
}

// MultiColor reports whether the day has records of more than one colour.
func (c Cell[T]) MultiColor() bool {
	return len(c.Colors)+c.Overflow > 1
}

// Month is a calendar grid of whole weeks.
type Month[T Moody] struct {
	Month time.Time
	Weeks [][]Cell[T]
}

// MonthGrid lays out month as Monday-first weeks. Leading and trailing days
// from the adjacent months fill the first and last week and carry their own
// records.
func MonthGrid[T Moody](items []T, month time.Time) Month[T] {
	first, last := MonthRange(month)
	gridStart, _ := WeekRange(first, time.Monday)
	_, gridEnd := WeekRange(last, time.Monday)

	buckets := BucketByDay(FilterRange(items, gridStart, gridEnd))
	grid := Month[T]{Month: first}

	var week []Cell[T]
	for day := gridStart; !day.After(gridEnd); day = addDays(day, 1) {
		cell := Cell[T]{
			Date:    day,
			Key:     DayKey(day),
			InMonth: day.Month() == first.Month() && day.Year() == first.Year(),
		}
		cell.Items = buckets[cell.Key]
		fillColors(&cell)
		week = append(week, cell)
		if len(week) == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = nil
		}
	}
	return grid
}

func fillColors[T Moody](cell *Cell[T]) {
	if len(cell.Items) == 0 {
		return
	}
	seen := make(map[string]bool)
	var unique []string
	for _, it := range cell.Items {
		c := it.MoodColor()
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}
	if len(unique) > MaxCellColors {
		cell.Overflow = len(unique) - MaxCellColors
		unique = unique[:MaxCellColors]
	}
	cell.Colors = unique
	if tint, err := mood.Tint(cell.Items[0].MoodColor(), CellTintAlpha); err == nil {
		cell.Tint = tint
	}
}
