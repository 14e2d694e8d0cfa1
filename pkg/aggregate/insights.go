package aggregate

import (
	"time"

	"tableflip.dev/moodlog/pkg/mood"
)

// MoodCount is the number of records with one mood name.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// DayScore is the average mood value of one day.
type DayScore struct {
	Key     string    `json:"day"`
	Date    time.Time `json:"date"`
	Average float64   `json:"average"`
	Count   int       `json:"count"`
}

// Insights summarizes a set of records.
type Insights struct {
	DominantMood string `json:"dominantMood"`
	TotalEntries int    `json:"totalEntries"`
	// BestDay and WorstDay are nil when there are no records.
	BestDay  *DayScore `json:"bestDay,omitempty"`
	WorstDay *DayScore `json:"worstDay,omitempty"`
	// MoodCounts lists every mood name seen, in order of first appearance.
	MoodCounts   []MoodCount `json:"moodCounts"`
	Distribution []Share     `json:"distribution"`
}

// Summarize computes insights over items. Mood names are compared
// lower-cased, and names outside the canonical five score as meh in day
// averages. Ties go to the first mood seen and to the earliest day.
func Summarize[T Moody](items []T) Insights {
	ordered := append([]T(nil), items...)
	sortOldestFirst(ordered)

	insights := Insights{
		TotalEntries: len(ordered),
		MoodCounts:   []MoodCount{},
		Distribution: []Share{},
	}
	if len(ordered) == 0 {
		return insights
	}

	index := make(map[string]int)
	for _, it := range ordered {
		key := it.MoodKey()
		i, ok := index[key]
		if !ok {
			i = len(insights.MoodCounts)
			index[key] = i
			insights.MoodCounts = append(insights.MoodCounts, MoodCount{Mood: key})
		}
		insights.MoodCounts[i].Count++
	}

	best := 0
	for _, mc := range insights.MoodCounts {
		if mc.Count > best {
			best = mc.Count
			insights.DominantMood = mc.Mood
		}
	}
	insights.Distribution = shares(insights.MoodCounts, len(ordered))

	scores := DayScores(ordered)
	for i := range scores {
		s := scores[i]
		if insights.BestDay == nil || s.Average > insights.BestDay.Average {
			insights.BestDay = &s
		}
		if insights.WorstDay == nil || s.Average < insights.WorstDay.Average {
			insights.WorstDay = &s
		}
	}
	return insights
}

// DayScores averages mood values (awful=1 .. rad=5) per local day, oldest day
// first. Days without records are absent.
func DayScores[T Moody](items []T) []DayScore {
	ordered := append([]T(nil), items...)
	sortOldestFirst(ordered)

	var scores []DayScore
	sums := make(map[string]int)
	pos := make(map[string]int)
	for _, it := range ordered {
		key := DayKey(it.When())
		i, ok := pos[key]
		if !ok {
			i = len(scores)
			pos[key] = i
			scores = append(scores, DayScore{Key: key, Date: StartOfDay(it.When())})
		}
		scores[i].Count++
		sums[key] += mood.ValueOr(it.MoodKey())
	}
	for i := range scores {
		scores[i].Average = float64(sums[scores[i].Key]) / float64(scores[i].Count)
	}
	return scores
}

// MonthlyInsights summarizes the records in ref's calendar month.
func MonthlyInsights[T Moody](items []T, ref time.Time) Insights {
	return Summarize(FilterByMonth(items, ref))
}

// WeeklyInsights summarizes the records in the week containing ref.
func WeeklyInsights[T Moody](items []T, ref time.Time, weekStartsOn time.Weekday) Insights {
	return Summarize(FilterByWeek(items, ref, weekStartsOn))
}
