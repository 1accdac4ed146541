package model

import "time"

// Product is an item sold in the storefront.  Every product belongs to
// exactly one category via the category_id foreign key; the Category
// field is populated by the repository when listing or fetching.
type Product struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Stock         int       `json:"stock"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	Brand         *string   `json:"brand,omitempty"`
	Material      *string   `json:"material,omitempty"`
	Warranty      *string   `json:"warranty,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	ReviewCount   *int      `json:"reviewCount,omitempty"`
	Discount      *int      `json:"discount,omitempty"`
	CategoryID    uint64    `json:"categoryId"`
	Category      *Category `json:"category,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
