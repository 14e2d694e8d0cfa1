package aggregate

import (
	"math"
	"time"

	"tableflip.dev/moodlog/pkg/mood"
)

// MoodCounts tallies the five canonical moods. Records with any other mood
// name are ignored and do not contribute to Total.
type MoodCounts struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// Get returns the count for name.
func (c MoodCounts) Get(name string) int {
	return c.Counts[name]
}

// CountMoods tallies items by canonical mood.
func CountMoods[T Moody](items []T) MoodCounts {
	counts := MoodCounts{Counts: make(map[string]int, mood.Count)}
	for _, name := range mood.Names() {
		counts.Counts[name] = 0
	}
	for _, it := range items {
		key := it.MoodKey()
		if !mood.IsCanonical(key) {
			continue
		}
		counts.Counts[key]++
		counts.Total++
	}
	return counts
}

// WeeklyMoodCounts tallies the items inside the week containing ref.
func WeeklyMoodCounts[T Moody](items []T, ref time.Time, weekStartsOn time.Weekday) MoodCounts {
	return CountMoods(FilterByWeek(items, ref, weekStartsOn))
}

// GaugeSweep is the arc the gauge spans, in degrees.
const GaugeSweep = 180.0

// GaugeStart is the angle the first segment starts at.
const GaugeStart = -180.0

// Segment is one arc of the mood gauge.
type Segment struct {
	Mood       string  `json:"mood"`
	Count      int     `json:"count"`
	Color      string  `json:"color"`
	StartAngle float64 `json:"startAngle"`
	SweepAngle float64 `json:"sweepAngle"`
}

// EndAngle is StartAngle + SweepAngle.
func (s Segment) EndAngle() float64 {
	return s.StartAngle + s.SweepAngle
}

// GaugeSegments splits a half circle between the moods in canonical order,
// proportional to their counts. Moods with no records get no segment, and
// the result is empty when nothing was counted. The sweeps always add up to
// exactly GaugeSweep.
func GaugeSegments(counts MoodCounts, colors map[string]string) []Segment {
	total := 0
	last := -1
	names := mood.Names()
	for i, name := range names {
		if c := counts.Counts[name]; c > 0 {
			total += c
			last = i
		}
	}
	if total == 0 {
		return []Segment{}
	}

	segments := make([]Segment, 0, len(names))
	angle := GaugeStart
	for i, name := range names {
		c := counts.Counts[name]
		if c <= 0 {
			continue
		}
		sweep := float64(c) / float64(total) * GaugeSweep
		if i == last {
			sweep = GaugeStart + GaugeSweep - angle
		}
		segments = append(segments, Segment{
			Mood:       name,
			Count:      c,
			Color:      colors[name],
			StartAngle: angle,
			SweepAngle: sweep,
		})
		angle += sweep
	}
	return segments
}

// Share is a mood's portion of a set of records.
type Share struct {
	Mood    string `json:"mood"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// Distribution is the rounded percentage of each canonical mood.
func Distribution(counts MoodCounts) []Share {
	list := make([]MoodCount, 0, mood.Count)
	for _, name := range mood.Names() {
		list = append(list, MoodCount{Mood: name, Count: counts.Counts[name]})
	}
	return shares(list, counts.Total)
}

func shares(list []MoodCount, total int) []Share {
	out := make([]Share, 0, len(list))
	for _, mc := range list {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(mc.Count) * 100 / float64(total)))
		}
		out = append(out, Share{Mood: mc.Mood, Count: mc.Count, Percent: pct})
	}
	return out
}
