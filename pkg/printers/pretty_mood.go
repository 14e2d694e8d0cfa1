package printers

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/aggregate"
	"tableflip.dev/moodlog/pkg/mood"
)

const barWidth = 30

// Counts prints a horizontal bar per canonical mood.
func (pp *PrettyPrint) Counts(counts aggregate.MoodCounts, colors map[string]string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, share := range aggregate.Distribution(counts) {
		c := color.New(Attribute(colors[share.Mood]))
		n := 0
		if counts.Total > 0 {
			n = int(math.Round(float64(share.Count) / float64(counts.Total) * barWidth))
		}
		bar := c.Sprint(strings.Repeat("█", n)) + strings.Repeat("·", barWidth-n)
		tbl.AddRow(share.Mood, share.Count, bar, fmt.Sprintf("%d%%", share.Percent))
	}
	tbl.RightAlign(1)
	tbl.RightAlign(3)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = color.New(color.Faint).Fprintf(pp.out(), "%d %s\n\n", counts.Total, entriesWord(counts.Total))
}

// Gauge draws the half-circle gauge flattened to one line, one cell per
// six degrees.
func (pp *PrettyPrint) Gauge(segments []aggregate.Segment) {
	const cells = int(aggregate.GaugeSweep / 6)
	if len(segments) == 0 {
		_, _ = color.New(color.Faint).Fprintln(pp.out(), strings.Repeat("◌", cells))
		pp.NewLine()
		return
	}

	var b strings.Builder
	used := 0
	for i, s := range segments {
		n := int(math.Round((s.EndAngle()-aggregate.GaugeStart)/6)) - used
		if i == len(segments)-1 {
			n = cells - used
		}
		if n <= 0 {
			continue
		}
		b.WriteString(color.New(Attribute(s.Color)).Sprint(strings.Repeat("●", n)))
		used += n
	}
	_, _ = fmt.Fprintln(pp.out(), b.String())

	legend := make([]string, 0, len(segments))
	styles := mood.GaugeStyles()
	for _, s := range segments {
		legend = append(legend, fmt.Sprintf("%s %s %d", styles[s.Mood].Emoji, s.Mood, s.Count))
	}
	_, _ = color.New(color.Faint).Fprintln(pp.out(), strings.Join(legend, "  "))
	pp.NewLine()
}

// Chart prints the weekly chart as vertical bars scaled to the five mood
// values.
func (pp *PrettyPrint) Chart(days []aggregate.ChartDay) {
	for level := mood.Count; level >= 1; level-- {
		var b strings.Builder
		for _, d := range days {
			cell := "    "
			if d.Count > 0 && math.Round(d.Average) >= float64(level) {
				cell = color.New(Attribute(d.Color)).Sprint(" ██ ")
			}
			b.WriteString(cell)
		}
		_, _ = fmt.Fprintln(pp.out(), b.String())
	}

	f := color.New(color.Faint)
	var names, labels strings.Builder
	for _, d := range days {
		names.WriteString(fmt.Sprintf(" %-3s", d.Weekday))
		labels.WriteString(fmt.Sprintf(" %-3s", chartCount(d.Count)))
	}
	_, _ = fmt.Fprintln(pp.out(), names.String())
	_, _ = f.Fprintln(pp.out(), labels.String())
	pp.NewLine()
}

// Insights prints a summary of a period.
func (pp *PrettyPrint) Insights(title string, in aggregate.Insights) {
	pp.TitleWithCount(title, in.TotalEntries)
	if in.TotalEntries == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	styles := mood.ChartStyles()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Dominant mood"), color.New(Attribute(styles[in.DominantMood].Color), color.Bold).Sprint(in.DominantMood))
	if in.BestDay != nil {
		tbl.AddRow(bold.Sprint("Best day"), dayScore(in.BestDay))
	}
	if in.WorstDay != nil {
		tbl.AddRow(bold.Sprint("Worst day"), dayScore(in.WorstDay))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	dist := uitable.New()
	dist.Separator = "  "
	for _, s := range in.Distribution {
		dist.AddRow(s.Mood, s.Count, fmt.Sprintf("%d%%", s.Percent))
	}
	dist.RightAlign(1)
	dist.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), dist)
	pp.NewLine()
}

func dayScore(d *aggregate.DayScore) string {
	return fmt.Sprintf("%s (average %.1f over %d %s)", d.Date.Format("Mon Jan 2"), d.Average, d.Count, entriesWord(d.Count))
}

func chartCount(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprint(n)
}

func entriesWord(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}
