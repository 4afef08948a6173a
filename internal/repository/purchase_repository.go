package repository

import (
	"context"
	"database/sql"

	"github.com/zenova/gamehub-backend/internal/model"
)

// PurchaseRepo persists the append-only purchase log.
type PurchaseRepo struct{ db *sql.DB }

func NewPurchaseRepo(db *sql.DB) *PurchaseRepo { return &PurchaseRepo{db: db} }

// Create appends a purchase and returns the persisted row.
func (r *PurchaseRepo) Create(ctx context.Context, userID, gameID uint64) (model.Purchase, error) {
	var p model.Purchase
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO purchases (user_id, game_id) VALUES (?,?)", userID, gameID)
	if err != nil {
		return p, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return p, err
	}
	err = r.db.QueryRowContext(ctx,
		"SELECT id,user_id,game_id,purchased_at FROM purchases WHERE id=?", id).
		Scan(&p.ID, &p.UserID, &p.GameID, &p.PurchasedAt)
	return p, err
}

// ListByUser returns a user's purchases, newest first.
func (r *PurchaseRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Purchase, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,user_id,game_id,purchased_at FROM purchases WHERE user_id=? ORDER BY id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Purchase
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.GameID, &p.PurchasedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
