package repository

import (
	"context"
	"database/sql"

	"github.com/zenova/gamehub-backend/internal/model"
)

// ScoreRepo owns the append-only score ledger and the aggregations
// derived from it. There is deliberately no UPDATE or DELETE in this
// file: a recorded score is immutable.
type ScoreRepo struct{ db *sql.DB }

func NewScoreRepo(db *sql.DB) *ScoreRepo { return &ScoreRepo{db: db} }

// Create appends a play result and returns the persisted row including
// the database-assigned timestamp.
func (r *ScoreRepo) Create(ctx context.Context, userID, gameID uint64, value int64) (model.Score, error) {
	var s model.Score
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO scores (user_id, game_id, score) VALUES (?,?,?)",
		userID, gameID, value)
	if err != nil {
		return s, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return s, err
	}
	err = r.db.QueryRowContext(ctx,
		"SELECT id,user_id,game_id,score,created_at FROM scores WHERE id=?", id).
		Scan(&s.ID, &s.UserID, &s.GameID, &s.Score, &s.CreatedAt)
	return s, err
}

// TotalForUser returns the user's lifetime score summed across all
// games. Used for the weekly reward tier snapshot.
func (r *ScoreRepo) TotalForUser(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(score),0) FROM scores WHERE user_id=?", userID).
		Scan(&total)
	return total, err
}

// LeaderboardRow is one line of a game's ranking: a user and their
// summed score. Rank is the 1-based position in the returned slice.
type LeaderboardRow struct {
	UserID     uint64 `json:"userId"`
	Name       string `json:"name"`
	TotalScore int64  `json:"totalScore"`
}

// TopByGame groups the game's scores by user and orders by summed score
// descending. Ties keep the underlying query order, which MySQL makes
// stable here by grouping in user-id order; rank is never stored.
func (r *ScoreRepo) TopByGame(ctx context.Context, gameID uint64) ([]LeaderboardRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.user_id, u.name, SUM(s.score) AS total
		 FROM scores s JOIN users u ON u.id = s.user_id
		 WHERE s.game_id = ?
		 GROUP BY s.user_id, u.name
		 ORDER BY total DESC`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LeaderboardRow
	for rows.Next() {
		var lr LeaderboardRow
		if err := rows.Scan(&lr.UserID, &lr.Name, &lr.TotalScore); err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

// RankOf computes the user's 1-based rank within a game as
// 1 + count(users whose summed score for the game strictly exceeds the
// user's summed score). Aggregate-sum is the canonical semantic, so a
// user's rank matches their position in TopByGame.
func (r *ScoreRepo) RankOf(ctx context.Context, gameID, userID uint64) (int, error) {
	var rank int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 + COUNT(*)
		 FROM (SELECT user_id, SUM(score) AS total
		       FROM scores WHERE game_id = ? GROUP BY user_id) t
		 WHERE t.total > (SELECT COALESCE(SUM(score),0)
		                  FROM scores WHERE game_id = ? AND user_id = ?)`,
		gameID, gameID, userID).Scan(&rank)
	return rank, err
}
