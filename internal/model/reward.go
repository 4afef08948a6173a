package model

import "time"

// RewardEntry is one day of a user's weekly reward ledger, a row of the
// `reward_entries` table. Exactly seven rows exist per (user, week) once
// the week has been generated; the UNIQUE KEY over (user_id, week_start,
// day_of_week) is what makes generation idempotent under concurrency.
//
// WeekStart is always a Monday. DayOfWeek runs 1 (Monday) to 7 (Sunday).
// Points carries the tier snapshot taken at generation time and is never
// recomputed mid-week.
type RewardEntry struct {
	ID        uint64    // reward_entries.id
	UserID    uint64    // reward_entries.user_id
	WeekStart time.Time // reward_entries.week_start (DATE, a Monday)
	DayOfWeek int       // reward_entries.day_of_week (1..7)
	Points    int       // reward_entries.points
	Claimed   bool      // reward_entries.claimed
}
