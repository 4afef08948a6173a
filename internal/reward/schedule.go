// Package reward holds the calendar and tier arithmetic behind the weekly
// reward ledger. Everything here is pure so the rules can be tested
// without a database: the repository owns persistence and the handler
// owns HTTP, but week alignment, tier snapshots and claimability live
// here and nowhere else.
package reward

import "time"

// Daily point tiers, keyed off the user's lifetime total score at the
// moment the week is generated.
const (
	tierHighTotal = 5000
	tierMidTotal  = 2000

	tierHighPoints = 100
	tierMidPoints  = 50
	tierBasePoints = 10
)

// Days per generated week.
const DaysPerWeek = 7

// WeekStart returns the most recent Monday on or before the given day,
// truncated to midnight UTC. Reward weeks are Monday-aligned.
func WeekStart(today time.Time) time.Time {
	t := today.UTC()
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// time.Weekday has Sunday == 0; shift so Monday == 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// DailyPoints maps a lifetime total score to the per-day reward points
// for a freshly generated week. The snapshot is taken once at generation
// and not recomputed mid-week.
func DailyPoints(totalScore int64) int {
	switch {
	case totalScore >= tierHighTotal:
		return tierHighPoints
	case totalScore >= tierMidTotal:
		return tierMidPoints
	default:
		return tierBasePoints
	}
}

// DayDate returns the calendar date of dayOfWeek (1..7) within the week
// starting at weekStart.
func DayDate(weekStart time.Time, dayOfWeek int) time.Time {
	return weekStart.AddDate(0, 0, dayOfWeek-1)
}

// Claimable reports whether the entry for dayOfWeek has come due: its
// calendar day is on or before today. Future days are not claimable.
func Claimable(weekStart time.Time, dayOfWeek int, today time.Time) bool {
	day := DayDate(weekStart, dayOfWeek)
	t := today.UTC()
	cutoff := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.After(cutoff)
}

var dayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayName returns the English name for dayOfWeek (1 == Monday). Out of
// range values return an empty string.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 1 || dayOfWeek > DaysPerWeek {
		return ""
	}
	return dayNames[dayOfWeek-1]
}
