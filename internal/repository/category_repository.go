package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/phoenixfit/phoenix-fitness-api/internal/model"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category name already exists")
)

type CategoryRepo struct{ DB *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

const categoryColumns = "id,name,description,image_url,created_at,updated_at"

// Create inserts a category and returns the stored row.  Duplicate
// names map to ErrCategoryExists via the unique key on name.
func (r *CategoryRepo) Create(ctx context.Context, name string, description, imageURL *string) (model.Category, error) {
	name = strings.TrimSpace(name)
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO categories (name, description, image_url) VALUES (?,?,?)",
		name, description, imageURL)
	if err != nil {
		if isDuplicateKey(err) {
			return model.Category{}, ErrCategoryExists
		}
		return model.Category{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Category{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a category by id.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (model.Category, error) {
	var c model.Category
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id=? LIMIT 1", id).
		Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return c, ErrCategoryNotFound
	}
	return c, err
}

// ListAll returns all categories ordered by name.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	cats := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Update renames a category and replaces its description and image.
// Rename collisions with another category map to ErrCategoryExists.
func (r *CategoryRepo) Update(ctx context.Context, id uint64, name string, description, imageURL *string) (model.Category, error) {
	name = strings.TrimSpace(name)
	res, err := r.DB.ExecContext(ctx,
		"UPDATE categories SET name=?, description=?, image_url=? WHERE id=?",
		name, description, imageURL, id)
	if err != nil {
		if isDuplicateKey(err) {
			return model.Category{}, ErrCategoryExists
		}
		return model.Category{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Zero rows can also mean an identical update; confirm existence.
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.Category{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a category by id.
func (r *CategoryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
