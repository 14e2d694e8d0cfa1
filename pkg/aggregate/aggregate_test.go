package aggregate

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

type rec struct {
	at    time.Time
	mood  string
	color string
}

func (r rec) When() time.Time   { return r.at }
func (r rec) MoodKey() string   { return strings.ToLower(r.mood) }
func (r rec) MoodColor() string { return r.color }

func at(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.Local)
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		startsOn  time.Weekday
		wantStart time.Time
	}{
		{name: "monday start midweek", ref: at(2025, 3, 12, 15, 0, 0), startsOn: time.Monday, wantStart: at(2025, 3, 10, 0, 0, 0)},
		{name: "sunday start midweek", ref: at(2025, 3, 12, 15, 0, 0), startsOn: time.Sunday, wantStart: at(2025, 3, 9, 0, 0, 0)},
		{name: "monday start on sunday", ref: at(2025, 3, 16, 23, 0, 0), startsOn: time.Monday, wantStart: at(2025, 3, 10, 0, 0, 0)},
		{name: "ref is start day", ref: at(2025, 3, 10, 0, 0, 0), startsOn: time.Monday, wantStart: at(2025, 3, 10, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekRange(tt.ref, tt.startsOn)
			if !start.Equal(tt.wantStart) {
				t.Fatalf("start = %v, want %v", start, tt.wantStart)
			}
			wantEnd := tt.wantStart.AddDate(0, 0, 7).Add(-time.Nanosecond)
			if !end.Equal(wantEnd) {
				t.Fatalf("end = %v, want %v", end, wantEnd)
			}
			if start.Weekday() != tt.startsOn {
				t.Fatalf("week starts on %v", start.Weekday())
			}
		})
	}
}

func TestBucketByDayNewestFirst(t *testing.T) {
	items := []rec{
		{at: at(2025, 3, 1, 8, 0, 0), mood: "rad"},
		{at: at(2025, 3, 1, 21, 0, 0), mood: "meh"},
		{at: at(2025, 3, 2, 0, 0, 1), mood: "bad"},
		{at: at(2025, 2, 28, 23, 59, 59), mood: "good"},
	}
	buckets := BucketByDay(items)
	if len(buckets) != 3 {
		t.Fatalf("expected 3 days, got %d", len(buckets))
	}
	day := buckets["2025-03-01"]
	if len(day) != 2 || day[0].mood != "meh" || day[1].mood != "rad" {
		t.Fatalf("unexpected bucket %+v", day)
	}

	groups := GroupByDay(items)
	keys := []string{}
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	if want := []string{"2025-03-02", "2025-03-01", "2025-02-28"}; !reflect.DeepEqual(keys, want) {
		t.Fatalf("group order = %v, want %v", keys, want)
	}
}

func TestFilterByMonthMarch2025(t *testing.T) {
	items := []rec{
		{at: at(2025, 2, 28, 23, 59, 59)},
		{at: at(2025, 3, 1, 0, 0, 0)},
		{at: at(2025, 3, 15, 12, 0, 0)},
		{at: at(2025, 3, 31, 23, 59, 59)},
		{at: at(2025, 4, 1, 0, 0, 0)},
	}
	got := FilterByMonth(items, at(2025, 3, 20, 0, 0, 0))
	if len(got) != 3 {
		t.Fatalf("expected 3 March entries, got %d", len(got))
	}
	for _, r := range got {
		if r.at.Month() != time.March {
			t.Fatalf("unexpected entry %v", r.at)
		}
	}
}

func TestWeeklyMoodCountsIgnoresUnknown(t *testing.T) {
	ref := at(2025, 3, 12, 12, 0, 0)
	items := []rec{
		{at: at(2025, 3, 10, 9, 0, 0), mood: "rad"},
		{at: at(2025, 3, 11, 9, 0, 0), mood: "rad"},
		{at: at(2025, 3, 12, 9, 0, 0), mood: "good"},
		{at: at(2025, 3, 13, 9, 0, 0), mood: "sleepy"},
		{at: at(2025, 3, 3, 9, 0, 0), mood: "awful"},
	}
	got := WeeklyMoodCounts(items, ref, time.Monday)
	want := map[string]int{"rad": 2, "good": 1, "meh": 0, "bad": 0, "awful": 0}
	if !reflect.DeepEqual(got.Counts, want) || got.Total != 3 {
		t.Fatalf("got %+v, want %v total 3", got, want)
	}
}

func TestGaugeSegments(t *testing.T) {
	colors := mood.Colors(mood.GaugeStyles())
	counts := MoodCounts{Counts: map[string]int{"rad": 1, "good": 1, "meh": 0, "bad": 1, "awful": 0}, Total: 3}
	segs := GaugeSegments(counts, colors)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[0].StartAngle != GaugeStart || segs[0].Mood != "rad" || segs[0].Color != "#AED6F1" {
		t.Fatalf("unexpected first segment %+v", segs[0])
	}
	sum := 0.0
	for i, s := range segs {
		sum += s.SweepAngle
		if i > 0 && math.Abs(s.StartAngle-segs[i-1].EndAngle()) > 1e-9 {
			t.Fatalf("segment %d is not contiguous", i)
		}
	}
	if math.Abs(sum-GaugeSweep) > 1e-6 {
		t.Fatalf("sweeps sum to %v", sum)
	}
	if segs[2].Mood != "bad" {
		t.Fatalf("expected canonical order, got %+v", segs)
	}

	if got := GaugeSegments(MoodCounts{Counts: map[string]int{}}, colors); len(got) != 0 {
		t.Fatalf("expected no segments, got %+v", got)
	}
}

func TestGaugeSegmentsSumProperty(t *testing.T) {
	for rad := 0; rad < 4; rad++ {
		for good := 0; good < 4; good++ {
			for awful := 0; awful < 8; awful++ {
				counts := MoodCounts{Counts: map[string]int{"rad": rad, "good": good, "awful": awful}, Total: rad + good + awful}
				segs := GaugeSegments(counts, nil)
				if counts.Total == 0 {
					if len(segs) != 0 {
						t.Fatalf("expected empty gauge")
					}
					continue
				}
				sum := 0.0
				for _, s := range segs {
					sum += s.SweepAngle
				}
				if math.Abs(sum-180) > 1e-6 {
					t.Fatalf("counts %v: sum %v", counts.Counts, sum)
				}
			}
		}
	}
}

func TestSummarize(t *testing.T) {
	items := []rec{
		{at: at(2025, 3, 4, 9, 0, 0), mood: "rad"},
		{at: at(2025, 3, 1, 9, 0, 0), mood: "rad"},
		{at: at(2025, 3, 1, 19, 0, 0), mood: "good"},
		{at: at(2025, 3, 2, 9, 0, 0), mood: "awful"},
		{at: at(2025, 3, 3, 9, 0, 0), mood: "rad"},
		{at: at(2025, 3, 5, 9, 0, 0), mood: "Sleepy"},
	}
	got := MonthlyInsights(items, at(2025, 3, 1, 0, 0, 0))
	if got.TotalEntries != 6 || got.DominantMood != "rad" {
		t.Fatalf("unexpected summary %+v", got)
	}
	if got.BestDay == nil || got.BestDay.Key != "2025-03-03" || got.BestDay.Average != 5 {
		t.Fatalf("expected earliest perfect day as best, got %+v", got.BestDay)
	}
	if got.WorstDay == nil || got.WorstDay.Key != "2025-03-02" || got.WorstDay.Average != 1 {
		t.Fatalf("unexpected worst day %+v", got.WorstDay)
	}
	wantCounts := []MoodCount{{"rad", 3}, {"good", 1}, {"awful", 1}, {"sleepy", 1}}
	if !reflect.DeepEqual(got.MoodCounts, wantCounts) {
		t.Fatalf("mood counts = %+v, want %+v", got.MoodCounts, wantCounts)
	}
	if got.Distribution[0].Percent != 50 || got.Distribution[1].Percent != 17 {
		t.Fatalf("unexpected distribution %+v", got.Distribution)
	}
}

func TestSummarizeUnknownScoresNeutral(t *testing.T) {
	scores := DayScores([]rec{
		{at: at(2025, 3, 1, 9, 0, 0), mood: "sleepy"},
		{at: at(2025, 3, 1, 10, 0, 0), mood: "rad"},
	})
	if len(scores) != 1 || scores[0].Average != 4 {
		t.Fatalf("expected (3+5)/2, got %+v", scores)
	}
}

func TestSummarizeDominantTieGoesToFirstSeen(t *testing.T) {
	got := Summarize([]rec{
		{at: at(2025, 3, 2, 9, 0, 0), mood: "rad"},
		{at: at(2025, 3, 1, 9, 0, 0), mood: "good"},
	})
	if got.DominantMood != "good" {
		t.Fatalf("expected good, got %q", got.DominantMood)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize([]rec{})
	if got.TotalEntries != 0 || got.DominantMood != "" || got.BestDay != nil || got.WorstDay != nil {
		t.Fatalf("unexpected empty summary %+v", got)
	}
}

func TestWeeklyChart(t *testing.T) {
	ref := at(2025, 3, 12, 12, 0, 0)
	items := []*entry.MoodEntry{
		{Date: entry.Timestamp{Time: at(2025, 3, 9, 9, 0, 0)}, MoodData: entry.Mood{Name: "rad"}},
		{Date: entry.Timestamp{Time: at(2025, 3, 9, 10, 0, 0)}, MoodData: entry.Mood{Name: "bad"}},
		{Date: entry.Timestamp{Time: at(2025, 3, 9, 11, 0, 0)}, MoodData: entry.Mood{Name: "bad"}},
	}
	days := WeeklyChart(items, ref, time.Sunday)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	sunday := days[0]
	if sunday.Weekday != "Sun" || sunday.Count != 3 || sunday.Dominant != "bad" || sunday.Color != "#F98E3C" {
		t.Fatalf("unexpected sunday %+v", sunday)
	}
	if sunday.Average != 3 || sunday.Label != "3 entries" {
		t.Fatalf("unexpected sunday average %+v", sunday)
	}
	if days[1].Color != EmptyChartColor || days[1].Label != "0 entries" {
		t.Fatalf("unexpected empty day %+v", days[1])
	}
}

func TestMonthGrid(t *testing.T) {
	colors := []string{"#111111", "#222222", "#333333", "#444444", "#555555"}
	items := []rec{{at: at(2025, 2, 26, 9, 0, 0), mood: "rad", color: "#1ABC9C"}}
	for i, c := range colors {
		items = append(items, rec{at: at(2025, 3, 5, 8+i, 0, 0), mood: "meh", color: c})
	}

	grid := MonthGrid(items, at(2025, 3, 18, 0, 0, 0))
	if len(grid.Weeks) != 6 {
		t.Fatalf("expected 6 weeks, got %d", len(grid.Weeks))
	}
	first := grid.Weeks[0][0]
	if first.Key != "2025-02-24" || first.InMonth || first.Date.Weekday() != time.Monday {
		t.Fatalf("unexpected first cell %+v", first)
	}
	lead := grid.Weeks[0][2]
	if lead.Key != "2025-02-26" || len(lead.Items) != 1 || lead.MultiColor() {
		t.Fatalf("expected leading day with one record, got %+v", lead)
	}
	busy := grid.Weeks[1][2]
	if busy.Key != "2025-03-05" || !busy.InMonth {
		t.Fatalf("unexpected cell %+v", busy)
	}
	if len(busy.Colors) != MaxCellColors || busy.Overflow != 2 || !busy.MultiColor() {
		t.Fatalf("unexpected colours %v +%d", busy.Colors, busy.Overflow)
	}
	if busy.Colors[0] != "#555555" {
		t.Fatalf("expected newest colour first, got %v", busy.Colors)
	}
	want, _ := mood.Tint("#555555", CellTintAlpha)
	if busy.Tint != want {
		t.Fatalf("tint = %s, want %s", busy.Tint, want)
	}
	last := grid.Weeks[5][6]
	if last.Key != "2025-04-06" || last.InMonth {
		t.Fatalf("unexpected last cell %+v", last)
	}
}

func TestDistribution(t *testing.T) {
	shares := Distribution(MoodCounts{Counts: map[string]int{"rad": 1, "good": 2}, Total: 3})
	if len(shares) != mood.Count {
		t.Fatalf("expected %d shares", mood.Count)
	}
	if shares[0].Percent != 33 || shares[1].Percent != 67 || shares[2].Percent != 0 {
		t.Fatalf("unexpected shares %+v", shares)
	}
}
