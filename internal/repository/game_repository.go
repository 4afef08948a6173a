package repository

import (
	"context"
	"database/sql"

	"github.com/zenova/gamehub-backend/internal/model"
)

// GameRepo provides CRUD over the `games` table.
type GameRepo struct{ db *sql.DB }

func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{db: db} }

const gameColumns = "id,name,description,category_id,rules,price,image,hosted_url,is_active,uploaded_by,approved,created_at,updated_at"

// Create inserts a game and reads back the full row so defaults and
// timestamps are populated on the provided struct.
func (r *GameRepo) Create(ctx context.Context, g *model.Game) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO games (name, description, category_id, rules, price, image, hosted_url, is_active, uploaded_by, approved)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		g.Name, g.Description, g.CategoryID, g.Rules, g.Price, g.Image, g.HostedURL,
		g.IsActive, nullableID(g.UploadedBy), g.Approved)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	got, err := r.GetByID(ctx, g.ID)
	if err != nil {
		return err
	}
	*g = got
	return nil
}

// Update rewrites the mutable fields of a game.
func (r *GameRepo) Update(ctx context.Context, g *model.Game) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE games SET name=?, description=?, category_id=?, rules=?, price=?, image=?, hosted_url=?, approved=?
		 WHERE id=?`,
		g.Name, g.Description, g.CategoryID, g.Rules, g.Price, g.Image, g.HostedURL,
		g.Approved, g.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish "absent" from "update was a no-op".
		if _, err := r.GetByID(ctx, g.ID); err != nil {
			return err
		}
	}
	got, err := r.GetByID(ctx, g.ID)
	if err != nil {
		return err
	}
	*g = got
	return nil
}

// Deactivate hides a game from the store without deleting it.
func (r *GameRepo) Deactivate(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE games SET is_active=FALSE WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches a single game.
func (r *GameRepo) GetByID(ctx context.Context, id uint64) (model.Game, error) {
	var g model.Game
	var uploadedBy sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		"SELECT "+gameColumns+" FROM games WHERE id=? LIMIT 1", id).
		Scan(&g.ID, &g.Name, &g.Description, &g.CategoryID, &g.Rules, &g.Price,
			&g.Image, &g.HostedURL, &g.IsActive, &uploadedBy, &g.Approved,
			&g.CreatedAt, &g.UpdatedAt)
	if err == sql.ErrNoRows {
		return g, ErrGameNotFound
	}
	if uploadedBy.Valid {
		g.UploadedBy = uint64(uploadedBy.Int64)
	}
	return g, err
}

// ListAll returns every game, newest first.
func (r *GameRepo) ListAll(ctx context.Context) ([]model.Game, error) {
	return r.list(ctx, "SELECT "+gameColumns+" FROM games ORDER BY id DESC")
}

// ListActive returns only active games for the public store.
func (r *GameRepo) ListActive(ctx context.Context) ([]model.Game, error) {
	return r.list(ctx, "SELECT "+gameColumns+" FROM games WHERE is_active ORDER BY id DESC")
}

func (r *GameRepo) list(ctx context.Context, query string) ([]model.Game, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Game
	for rows.Next() {
		var g model.Game
		var uploadedBy sql.NullInt64
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CategoryID, &g.Rules,
			&g.Price, &g.Image, &g.HostedURL, &g.IsActive, &uploadedBy, &g.Approved,
			&g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		if uploadedBy.Valid {
			g.UploadedBy = uint64(uploadedBy.Int64)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// nullableID maps a zero id to SQL NULL so seed games without an
// uploader do not need a sentinel user row.
func nullableID(id uint64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}
