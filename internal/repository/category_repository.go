package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/zenova/gamehub-backend/internal/model"
)

// CategoryRepo provides CRUD over the `categories` table. Categories are
// soft-deleted so existing games keep a valid owning reference.
type CategoryRepo struct{ db *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// Create inserts a category and populates the generated ID. A duplicate
// name surfaces the raw 1062 error to the caller for conflict mapping.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (name, is_active) VALUES (?, TRUE)", c.Name)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	c.IsActive = true
	return nil
}

// UpdateName renames a category.
func (r *CategoryRepo) UpdateName(ctx context.Context, id uint64, name string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE categories SET name=? WHERE id=?", name, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Deactivate hides a category from the active listing.
func (r *CategoryRepo) Deactivate(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE categories SET is_active=FALSE WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// GetByID fetches a single category.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (model.Category, error) {
	var c model.Category
	err := r.db.QueryRowContext(ctx,
		"SELECT id,name,is_active FROM categories WHERE id=? LIMIT 1", id).
		Scan(&c.ID, &c.Name, &c.IsActive)
	if err == sql.ErrNoRows {
		return c, ErrCategoryNotFound
	}
	return c, err
}

// ListAll returns every category.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	return r.list(ctx, "SELECT id,name,is_active FROM categories ORDER BY name")
}

// ListActive returns only active categories.
func (r *CategoryRepo) ListActive(ctx context.Context) ([]model.Category, error) {
	return r.list(ctx, "SELECT id,name,is_active FROM categories WHERE is_active ORDER BY name")
}

func (r *CategoryRepo) list(ctx context.Context, query string) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// IsDuplicate reports whether err is a MySQL duplicate-key violation.
func IsDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
