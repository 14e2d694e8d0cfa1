// Package aggregate derives calendar, chart and insight views from journal
// and mood records. Every function is pure: callers pass the records and the
// reference date, and all calendar math uses the local time zone.
package aggregate

import (
	"sort"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
)

// Dated is any record placed on the calendar.
type Dated interface {
	When() time.Time
}

// Moody is a dated record carrying a mood.
type Moody interface {
	Dated
	// MoodKey is the lower-cased mood name.
	MoodKey() string
	MoodColor() string
}

var (
	_ Moody = (*entry.JournalEntry)(nil)
	_ Moody = (*entry.MoodEntry)(nil)
)

// DayKey is the local calendar date of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Local().Format(entry.DayLayout)
}

// StartOfDay is local midnight of t.
func StartOfDay(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// EndOfDay is the last instant of t's local day.
func EndOfDay(t time.Time) time.Time {
	return addDays(StartOfDay(t), 1).Add(-time.Nanosecond)
}

func addDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// BucketByDay groups items by local calendar day, newest first within a day.
func BucketByDay[T Dated](items []T) map[string][]T {
	buckets := make(map[string][]T)
	for _, it := range items {
		key := DayKey(it.When())
		buckets[key] = append(buckets[key], it)
	}
	for key := range buckets {
		sortNewestFirst(buckets[key])
	}
	return buckets
}

// DayGroup is one day of records.
type DayGroup[T Dated] struct {
	Key   string
	Date  time.Time
	Items []T
}

// GroupByDay is BucketByDay as a slice ordered newest day first.
func GroupByDay[T Dated](items []T) []DayGroup[T] {
	buckets := BucketByDay(items)
	groups := make([]DayGroup[T], 0, len(buckets))
	for key, list := range buckets {
		groups = append(groups, DayGroup[T]{
			Key:   key,
			Date:  StartOfDay(list[0].When()),
			Items: list,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key > groups[j].Key
	})
	return groups
}

// FilterRange keeps items with since <= When() <= until.
func FilterRange[T Dated](items []T, since, until time.Time) []T {
	out := make([]T, 0)
	for _, it := range items {
		w := it.When()
		if w.Before(since) || w.After(until) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FilterByDay keeps items on the local calendar day of day.
func FilterByDay[T Dated](items []T, day time.Time) []T {
	return FilterRange(items, StartOfDay(day), EndOfDay(day))
}

// MonthRange is the first and last instant of month's local calendar month.
func MonthRange(month time.Time) (time.Time, time.Time) {
	l := month.Local()
	start := time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// FilterByMonth keeps items inside month's local calendar month, from the
// first at 00:00 through the whole of the last day.
func FilterByMonth[T Dated](items []T, month time.Time) []T {
	start, end := MonthRange(month)
	return FilterRange(items, start, end)
}

// FilterByWeek keeps items inside the week containing ref.
func FilterByWeek[T Dated](items []T, ref time.Time, weekStartsOn time.Weekday) []T {
	start, end := WeekRange(ref, weekStartsOn)
	return FilterRange(items, start, end)
}

// WeekRange returns the inclusive seven day window containing ref: start at
// 00:00 on the most recent weekStartsOn, end at the last instant of the sixth
// day after it.
func WeekRange(ref time.Time, weekStartsOn time.Weekday) (time.Time, time.Time) {
	day := StartOfDay(ref)
	offset := (int(day.Weekday()) - int(weekStartsOn) + 7) % 7
	start := addDays(day, -offset)
	end := addDays(start, 7).Add(-time.Nanosecond)
	return start, end
}

func sortNewestFirst[T Dated](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].When().After(items[j].When())
	})
}

func sortOldestFirst[T Dated](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].When().Before(items[j].When())
	})
}
