package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/zenova/gamehub-backend/internal/model"
	"github.com/zenova/gamehub-backend/internal/reward"
)

// RewardRepo persists the weekly reward ledger. Idempotent generation is
// enforced by the UNIQUE KEY (user_id, week_start, day_of_week): two
// concurrent first-of-the-week requests can both attempt the batch
// insert, but at most one succeeds and the loser re-reads the winner's
// rows.
type RewardRepo struct{ db *sql.DB }

func NewRewardRepo(db *sql.DB) *RewardRepo { return &RewardRepo{db: db} }

// ListWeek returns the entries for (user, weekStart) ordered by day.
// An empty slice means the week has not been generated yet.
func (r *RewardRepo) ListWeek(ctx context.Context, userID uint64, weekStart time.Time) ([]model.RewardEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id,user_id,week_start,day_of_week,points,claimed
		 FROM reward_entries WHERE user_id=? AND week_start=? ORDER BY day_of_week`,
		userID, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.RewardEntry
	for rows.Next() {
		var e model.RewardEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.WeekStart, &e.DayOfWeek, &e.Points, &e.Claimed); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GenerateWeek inserts the seven entries for (user, weekStart) in one
// statement, every day carrying the same tier snapshot. A duplicate-key
// conflict means another request generated the week first; that is not
// an error, the rows are re-read and returned.
func (r *RewardRepo) GenerateWeek(ctx context.Context, userID uint64, weekStart time.Time, dailyPoints int) ([]model.RewardEntry, error) {
	query := "INSERT INTO reward_entries (user_id, week_start, day_of_week, points, claimed) VALUES "
	args := make([]interface{}, 0, reward.DaysPerWeek*4)
	for day := 1; day <= reward.DaysPerWeek; day++ {
		if day > 1 {
			query += ","
		}
		query += "(?,?,?,?,FALSE)"
		args = append(args, userID, weekStart, day, dailyPoints)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil && !IsDuplicate(err) {
		return nil, err
	}
	return r.ListWeek(ctx, userID, weekStart)
}

// Claim marks the entry for (user, weekStart, dayOfWeek) as claimed.
// It fails with ErrRewardNotFound when the entry does not exist,
// ErrRewardNotYetClaimable when the day has not arrived, and
// ErrRewardAlreadyClaimed when the entry was claimed before. The UPDATE
// is guarded on claimed=FALSE so a concurrent double claim loses even if
// both requests read the entry as unclaimed.
func (r *RewardRepo) Claim(ctx context.Context, userID uint64, weekStart time.Time, dayOfWeek int, today time.Time) (model.RewardEntry, error) {
	var e model.RewardEntry
	err := r.db.QueryRowContext(ctx,
		`SELECT id,user_id,week_start,day_of_week,points,claimed
		 FROM reward_entries WHERE user_id=? AND week_start=? AND day_of_week=? LIMIT 1`,
		userID, weekStart, dayOfWeek).
		Scan(&e.ID, &e.UserID, &e.WeekStart, &e.DayOfWeek, &e.Points, &e.Claimed)
	if err == sql.ErrNoRows {
		return e, ErrRewardNotFound
	}
	if err != nil {
		return e, err
	}
	if !reward.Claimable(e.WeekStart, e.DayOfWeek, today) {
		return e, ErrRewardNotYetClaimable
	}
	if e.Claimed {
		return e, ErrRewardAlreadyClaimed
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE reward_entries SET claimed=TRUE WHERE id=? AND claimed=FALSE", e.ID)
	if err != nil {
		return e, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return e, ErrRewardAlreadyClaimed
	}
	e.Claimed = true
	return e, nil
}
