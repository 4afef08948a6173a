package reward

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStartAlignsToMonday(t *testing.T) {
	cases := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		{"monday maps to itself", date(2025, time.June, 2), date(2025, time.June, 2)},
		{"midweek", date(2025, time.June, 4), date(2025, time.June, 2)},
		{"sunday maps back six days", date(2025, time.June, 8), date(2025, time.June, 2)},
		{"month boundary", date(2025, time.July, 1), date(2025, time.June, 30)},
		{"time of day ignored", time.Date(2025, time.June, 4, 23, 59, 1, 0, time.UTC), date(2025, time.June, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekStart(tc.today); !got.Equal(tc.want) {
				t.Fatalf("WeekStart(%v) = %v, want %v", tc.today, got, tc.want)
			}
		})
	}
}

func TestWeekStartIsStableWithinAWeek(t *testing.T) {
	// Every day of one week must resolve to the same Monday, otherwise
	// two calls in the same week would generate two ledgers.
	monday := date(2025, time.June, 2)
	for d := 0; d < 7; d++ {
		got := WeekStart(monday.AddDate(0, 0, d))
		if !got.Equal(monday) {
			t.Fatalf("day offset %d: got week start %v, want %v", d, got, monday)
		}
	}
}

func TestDailyPointsTiers(t *testing.T) {
	cases := []struct {
		total int64
		want  int
	}{
		{0, 10},
		{1999, 10},
		{2000, 50},
		{2500, 50},
		{4999, 50},
		{5000, 100},
		{12000, 100},
	}
	for _, tc := range cases {
		if got := DailyPoints(tc.total); got != tc.want {
			t.Errorf("DailyPoints(%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestClaimableCutoff(t *testing.T) {
	weekStart := date(2025, time.June, 2)
	today := date(2025, time.June, 4) // Wednesday

	for day := 1; day <= DaysPerWeek; day++ {
		want := day <= 3 // Mon, Tue, Wed have arrived
		if got := Claimable(weekStart, day, today); got != want {
			t.Errorf("day %d: claimable = %v, want %v", day, got, want)
		}
	}
}

func TestClaimableIgnoresTimeOfDay(t *testing.T) {
	weekStart := date(2025, time.June, 2)
	early := time.Date(2025, time.June, 2, 0, 0, 1, 0, time.UTC)
	if !Claimable(weekStart, 1, early) {
		t.Fatal("Monday entry must be claimable from the first second of Monday")
	}
	if Claimable(weekStart, 2, early) {
		t.Fatal("Tuesday entry must not be claimable on Monday")
	}
}

func TestDayName(t *testing.T) {
	if got := DayName(1); got != "Monday" {
		t.Fatalf("DayName(1) = %q", got)
	}
	if got := DayName(7); got != "Sunday" {
		t.Fatalf("DayName(7) = %q", got)
	}
	if got := DayName(0); got != "" {
		t.Fatalf("DayName(0) = %q, want empty", got)
	}
	if got := DayName(8); got != "" {
		t.Fatalf("DayName(8) = %q, want empty", got)
	}
}
