package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/repository"
)

// CategoryHandler serves the product category CRUD.  Reads are public;
// mutations sit behind the ADMIN role middleware.
type CategoryHandler struct {
	Categories *repository.CategoryRepo
}

func NewCategoryHandler(c *repository.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{Categories: c}
}

type categoryReq struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,max=500"`
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cats, err := h.Categories.ListAll(ctx)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "load categories failed")
	}
	return OK(c, http.StatusOK, cats)
}

// Get handles GET /api/categories/:id.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid category id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cat, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusOK, cat)
}

// Create handles POST /api/categories (admin).
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cat, err := h.Categories.Create(ctx, req.Name, optional(req.Description), optional(req.ImageURL))
	if err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusCreated, cat)
}

// Update handles PUT /api/categories/:id (admin).
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid category id")
	}
	var req categoryReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cat, err := h.Categories.Update(ctx, id, req.Name, optional(req.Description), optional(req.ImageURL))
	if err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusOK, cat)
}

// Delete handles DELETE /api/categories/:id (admin).
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid category id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Categories.Delete(ctx, id); err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusOK, "Category deleted successfully")
}
