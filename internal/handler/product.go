package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/repository"
)

// ProductHandler serves the storefront catalog.  Reads are public;
// mutations sit behind the ADMIN role middleware.
type ProductHandler struct {
	Products *repository.ProductRepo
}

func NewProductHandler(p *repository.ProductRepo) *ProductHandler {
	return &ProductHandler{Products: p}
}

type productReq struct {
	Name          string   `json:"name" validate:"required,min=2,max=200"`
	Description   string   `json:"description" validate:"omitempty,max=2000"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitempty,gt=0"`
	Stock         int      `json:"stock" validate:"gte=0"`
	ImageURL      string   `json:"imageUrl" validate:"omitempty,max=500"`
	Brand         string   `json:"brand" validate:"omitempty,max=100"`
	Material      string   `json:"material" validate:"omitempty,max=100"`
	Warranty      string   `json:"warranty" validate:"omitempty,max=100"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount   *int     `json:"reviewCount" validate:"omitempty,gte=0"`
	Discount      *int     `json:"discount" validate:"omitempty,gte=0,lte=100"`
	CategoryID    uint64   `json:"categoryId" validate:"required,gt=0"`
}

func (req *productReq) record() repository.ProductRecord {
	return repository.ProductRecord{
		Name:          req.Name,
		Description:   optional(req.Description),
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Stock:         req.Stock,
		ImageURL:      optional(req.ImageURL),
		Brand:         optional(req.Brand),
		Material:      optional(req.Material),
		Warranty:      optional(req.Warranty),
		Rating:        req.Rating,
		ReviewCount:   req.ReviewCount,
		Discount:      req.Discount,
		CategoryID:    req.CategoryID,
	}
}

// List handles GET /api/products with optional search, category and
// sortBy query parameters.
func (h *ProductHandler) List(c echo.Context) error {
	filter := repository.ProductFilter{
		Search: c.QueryParam("search"),
		SortBy: c.QueryParam("sortBy"),
	}
	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Fail(c, http.StatusBadRequest, "invalid category filter")
		}
		filter.CategoryID = id
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, err := h.Products.List(ctx, filter)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "load products failed")
	}
	return OK(c, http.StatusOK, products)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid product id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusOK, p)
}

// ByCategory handles GET /api/products/category/:id.
func (h *ProductHandler) ByCategory(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid category id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, err := h.Products.ListByCategory(ctx, id)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "load products failed")
	}
	return OK(c, http.StatusOK, products)
}

// Create handles POST /api/products (admin).  A missing category is
// reported as 404 and nothing is persisted.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.Create(ctx, req.record())
	if err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusCreated, p)
}

// Update handles PUT /api/products/:id (admin).
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid product id")
	}
	var req productReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.Update(ctx, id, req.record())
	if err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusOK, p)
}

// Delete handles DELETE /api/products/:id (admin).
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid product id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Products.Delete(ctx, id); err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusOK, "Product deleted successfully")
}
