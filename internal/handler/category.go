package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/model"
	"github.com/zenova/gamehub-backend/internal/repository"
)

// CategoryHandler exposes category CRUD.
type CategoryHandler struct {
	Categories *repository.CategoryRepo
}

func NewCategoryHandler(r *repository.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{Categories: r}
}

type categoryReq struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type categoryResp struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func toCategoryResps(cats []model.Category) []categoryResp {
	out := make([]categoryResp, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryResp{ID: c.ID, Name: c.Name, Active: c.IsActive})
	}
	return out
}

// GetAll returns every category.
func (h *CategoryHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cats, err := h.Categories.ListAll(ctx)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, toCategoryResps(cats))
}

// GetAllActive returns only active categories.
func (h *CategoryHandler) GetAllActive(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cats, err := h.Categories.ListActive(ctx)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, toCategoryResps(cats))
}

// Add creates a category (ADMIN only). Duplicate names conflict.
func (h *CategoryHandler) Add(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return respond(c, http.StatusBadRequest, "name is required", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cat := model.Category{Name: name}
	if err := h.Categories.Create(ctx, &cat); err != nil {
		if repository.IsDuplicate(err) {
			return respond(c, http.StatusConflict, "category name already exists", nil)
		}
		return internalError(c)
	}
	return respond(c, http.StatusCreated, "Category Added",
		categoryResp{ID: cat.ID, Name: cat.Name, Active: cat.IsActive})
}

// Update renames a category.
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return respond(c, http.StatusBadRequest, "id required", nil)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return respond(c, http.StatusBadRequest, "name is required", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Categories.UpdateName(ctx, req.ID, name); err != nil {
		if err == repository.ErrCategoryNotFound {
			return respond(c, http.StatusNotFound, "category not found", nil)
		}
		if repository.IsDuplicate(err) {
			return respond(c, http.StatusConflict, "category name already exists", nil)
		}
		return internalError(c)
	}
	cat, err := h.Categories.GetByID(ctx, req.ID)
	if err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, "Category Updated",
		categoryResp{ID: cat.ID, Name: cat.Name, Active: cat.IsActive})
}

// Deactivate hides a category from the active listing.
func (h *CategoryHandler) Deactivate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Categories.Deactivate(ctx, id); err != nil {
		if err == repository.ErrCategoryNotFound {
			return respond(c, http.StatusNotFound, "category not found", nil)
		}
		return internalError(c)
	}
	return respond(c, http.StatusOK, "Category Deactivated", nil)
}
