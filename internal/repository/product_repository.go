package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/phoenixfit/phoenix-fitness-api/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepo provides CRUD and filtered listing for products.  Each
// product references a category through the category_id foreign key;
// rows are returned joined with their category so handlers never issue
// a second lookup.
type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

// ProductFilter narrows and orders List results.  Search matches
// name, description and brand case-insensitively.  SortBy accepts
// "name", "price" (both ascending) or "rating" (descending); anything
// else falls back to newest first.
type ProductFilter struct {
	Search     string
	CategoryID uint64
	SortBy     string
}

const productSelect = `SELECT p.id, p.name, p.description, p.price, p.original_price, p.stock,
       p.image_url, p.brand, p.material, p.warranty, p.rating, p.review_count, p.discount,
       p.category_id, p.created_at, p.updated_at,
       c.id, c.name, c.description, c.image_url, c.created_at, c.updated_at
FROM products p
JOIN categories c ON c.id = p.category_id`

func scanProductRows(rows *sql.Rows) ([]model.Product, error) {
	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		var c model.Category
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &p.Stock,
			&p.ImageURL, &p.Brand, &p.Material, &p.Warranty, &p.Rating, &p.ReviewCount, &p.Discount,
			&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
			&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		p.Category = &c
		products = append(products, p)
	}
	return products, rows.Err()
}

// List returns products matching the filter.
func (r *ProductRepo) List(ctx context.Context, f ProductFilter) ([]model.Product, error) {
	query := productSelect
	args := make([]interface{}, 0, 4)
	conds := make([]string, 0, 2)
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		conds = append(conds,
			"(LOWER(p.name) LIKE ? OR LOWER(p.description) LIKE ? OR LOWER(p.brand) LIKE ?)")
		args = append(args, like, like, like)
	}
	if f.CategoryID != 0 {
		conds = append(conds, "p.category_id = ?")
		args = append(args, f.CategoryID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	switch f.SortBy {
	case "name":
		query += " ORDER BY p.name ASC"
	case "price":
		query += " ORDER BY p.price ASC"
	case "rating":
		query += " ORDER BY p.rating DESC"
	default:
		query += " ORDER BY p.created_at DESC"
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProductRows(rows)
}

// GetByID fetches a product with its category.
func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (model.Product, error) {
	rows, err := r.DB.QueryContext(ctx, productSelect+" WHERE p.id = ? LIMIT 1", id)
	if err != nil {
		return model.Product{}, err
	}
	defer rows.Close()
	products, err := scanProductRows(rows)
	if err != nil {
		return model.Product{}, err
	}
	if len(products) == 0 {
		return model.Product{}, ErrProductNotFound
	}
	return products[0], nil
}

// ListByCategory returns all products in a category, newest first.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID uint64) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx,
		productSelect+" WHERE p.category_id = ? ORDER BY p.created_at DESC", categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProductRows(rows)
}

// ProductRecord carries the writable columns for create and update.
type ProductRecord struct {
	Name          string
	Description   *string
	Price         float64
	OriginalPrice *float64
	Stock         int
	ImageURL      *string
	Brand         *string
	Material      *string
	Warranty      *string
	Rating        *float64
	ReviewCount   *int
	Discount      *int
	CategoryID    uint64
}

// Create inserts a product after verifying the referenced category
// exists.  Nothing is persisted when the category is missing.
func (r *ProductRepo) Create(ctx context.Context, rec ProductRecord) (model.Product, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM categories WHERE id=? LIMIT 1", rec.CategoryID).Scan(&one)
	if err == sql.ErrNoRows {
		return model.Product{}, ErrCategoryNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO products (name, description, price, original_price, stock, image_url,
		 brand, material, warranty, rating, review_count, discount, category_id)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.Name, rec.Description, rec.Price, rec.OriginalPrice, rec.Stock, rec.ImageURL,
		rec.Brand, rec.Material, rec.Warranty, rec.Rating, rec.ReviewCount, rec.Discount, rec.CategoryID)
	if err != nil {
		return model.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Product{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces all writable columns of an existing product.  The
// referenced category must exist, same as Create.
func (r *ProductRepo) Update(ctx context.Context, id uint64, rec ProductRecord) (model.Product, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Product{}, err
	}
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM categories WHERE id=? LIMIT 1", rec.CategoryID).Scan(&one)
	if err == sql.ErrNoRows {
		return model.Product{}, ErrCategoryNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	_, err = r.DB.ExecContext(ctx,
		`UPDATE products SET name=?, description=?, price=?, original_price=?, stock=?, image_url=?,
		 brand=?, material=?, warranty=?, rating=?, review_count=?, discount=?, category_id=?
		 WHERE id=?`,
		rec.Name, rec.Description, rec.Price, rec.OriginalPrice, rec.Stock, rec.ImageURL,
		rec.Brand, rec.Material, rec.Warranty, rec.Rating, rec.ReviewCount, rec.Discount, rec.CategoryID, id)
	if err != nil {
		return model.Product{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a product by id.
func (r *ProductRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}
