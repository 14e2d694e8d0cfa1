// Package timeutil parses the look-back windows used to list journal entries.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is used when no window is given.
const DefaultWindow = "1w"

// Window is a calendar look-back span. Months are calendar months, so a
// window is not a fixed duration.
type Window struct {
	Months int
	Days   int
}

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units   = map[string]Window{
		"d":      {Days: 1},
		"day":    {Days: 1},
		"days":   {Days: 1},
		"w":      {Days: 7},
		"wk":     {Days: 7},
		"week":   {Days: 7},
		"weeks":  {Days: 7},
		"mo":     {Months: 1},
		"month":  {Months: 1},
		"months": {Months: 1},
		"y":      {Months: 12},
		"year":   {Months: 12},
		"years":  {Months: 12},
	}
)

// ParseWindow parses spans such as "3d", "2w" or "1mo2w". Empty input means
// DefaultWindow.
func ParseWindow(input string) (Window, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultWindow
	}

	var w Window
	for len(rest) > 0 {
		m := segment.FindStringSubmatch(rest)
		if len(m) != 3 {
			return Window{}, fmt.Errorf("invalid window segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Window{}, fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		u, ok := units[m[2]]
		if !ok {
			return Window{}, fmt.Errorf("unsupported window unit %q", m[2])
		}
		w.Months += n * u.Months
		w.Days += n * u.Days
		rest = rest[len(m[0]):]
	}
	if w.Months <= 0 && w.Days <= 0 {
		return Window{}, fmt.Errorf("window must be greater than zero")
	}
	return w, nil
}

// Since is the local midnight that starts the window ending on now's day.
// The day of now counts, so "1d" is today only.
func (w Window) Since(now time.Time) time.Time {
	now = now.Local()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return day.AddDate(0, -w.Months, -w.Days+1)
}

// String renders the window compactly, for example "1mo2w" or "10d".
func (w Window) String() string {
	var b strings.Builder
	if y := w.Months / 12; y > 0 {
		fmt.Fprintf(&b, "%dy", y)
	}
	if mo := w.Months % 12; mo > 0 {
		fmt.Fprintf(&b, "%dmo", mo)
	}
	if wk := w.Days / 7; wk > 0 {
		fmt.Fprintf(&b, "%dw", wk)
	}
	if d := w.Days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	if b.Len() == 0 {
		return "0d"
	}
	return b.String()
}
