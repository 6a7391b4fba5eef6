package pomodoro

import (
	"sort"
	"time"

	"github.com/akyairhashvil/pomotask/internal/models"
)

const dateLayout = "2006-01-02"

// DailyCounts groups focus starts by calendar date in now's location,
// keeping only starts whose time of day is at or after now's. Dates come
// back ascending; days without a kept start are absent.
func DailyCounts(starts []time.Time, now time.Time) []models.DayCount {
	loc := now.Location()
	cutoff := timeOfDay(now)

	byDate := make(map[string]int)
	for _, s := range starts {
		local := s.In(loc)
		if timeOfDay(local) < cutoff {
			continue
		}
		byDate[local.Format(dateLayout)]++
	}
	return sortedCounts(byDate)
}

// CountsByDate groups every start by local calendar date with no time of
// day filter. Reports use it for the full history.
func CountsByDate(starts []time.Time, loc *time.Location) []models.DayCount {
	if loc == nil {
		loc = time.Local
	}
	byDate := make(map[string]int)
	for _, s := range starts {
		byDate[s.In(loc).Format(dateLayout)]++
	}
	return sortedCounts(byDate)
}

func sortedCounts(byDate map[string]int) []models.DayCount {
	out := make([]models.DayCount, 0, len(byDate))
	for date, n := range byDate {
		out = append(out, models.DayCount{Date: date, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// Median of counts. An even-length input averages the two middle values,
// truncating toward zero. Empty input yields 0.
func Median(counts []int) int {
	if len(counts) == 0 {
		return 0
	}
	sorted := append([]int(nil), counts...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Target is the median of the per-day counts.
func Target(days []models.DayCount) int {
	counts := make([]int, len(days))
	for i, d := range days {
		counts[i] = d.Count
	}
	return Median(counts)
}
