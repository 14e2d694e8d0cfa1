package aggregate

import (
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/mood"
)

// EmptyChartColor fills days without records.
const EmptyChartColor = "#E0E0E0"

// ChartDay is one bar of the weekly chart.
type ChartDay struct {
	Date     time.Time `json:"date"`
	Weekday  string    `json:"weekday"`
	Count    int       `json:"count"`
	Average  float64   `json:"average"`
	Dominant string    `json:"dominant,omitempty"`
	Color    string    `json:"color"`
	Label    string    `json:"label"`
}

// WeeklyChart builds the seven bars of the week containing ref. A bar's
// height is the average mood value of its day and its colour is the chart
// colour of the day's most frequent mood.
func WeeklyChart[T Moody](items []T, ref time.Time, weekStartsOn time.Weekday) []ChartDay {
	start, _ := WeekRange(ref, weekStartsOn)
	buckets := BucketByDay(FilterByWeek(items, ref, weekStartsOn))
	styles := mood.ChartStyles()

	days := make([]ChartDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := addDays(start, i)
		day := ChartDay{
			Date:    date,
			Weekday: date.Weekday().String()[:3],
			Color:   EmptyChartColor,
		}
		list := buckets[DayKey(date)]
		if len(list) > 0 {
			ordered := append([]T(nil), list...)
			sortOldestFirst(ordered)
			sum := 0
			counts := make(map[string]int)
			var order []string
			for _, it := range ordered {
				key := it.MoodKey()
				if _, ok := counts[key]; !ok {
					order = append(order, key)
				}
				counts[key]++
				sum += mood.ValueOr(key)
			}
			best := 0
			for _, key := range order {
				if counts[key] > best {
					best = counts[key]
					day.Dominant = key
				}
			}
			day.Count = len(ordered)
			day.Average = float64(sum) / float64(len(ordered))
			if style, ok := styles[day.Dominant]; ok {
				day.Color = style.Color
			} else {
				day.Color = styles[mood.Meh].Color
			}
		}
		day.Label = entriesLabel(day.Count)
		days = append(days, day)
	}
	return days
}

func entriesLabel(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
