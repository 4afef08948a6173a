package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/model"
	"github.com/zenova/gamehub-backend/internal/repository"
)

// UserAdminHandler exposes the ADMIN-only account management surface.
type UserAdminHandler struct {
	Users *repository.UserRepo
}

func NewUserAdminHandler(u *repository.UserRepo) *UserAdminHandler {
	return &UserAdminHandler{Users: u}
}

type userIDReq struct {
	UserID uint64 `json:"userId"`
}

func toProfiles(users []model.User) []profileResp {
	out := make([]profileResp, 0, len(users))
	for _, u := range users {
		out = append(out, profileResp{
			ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, Active: u.IsActive,
		})
	}
	return out
}

// GetAll lists every account.
func (h *UserAdminHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.ListAll(ctx)
	if err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, "Success", toProfiles(users))
}

// AllDevelopers lists accounts holding the DEVELOPER role.
func (h *UserAdminHandler) AllDevelopers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.ListByRole(ctx, model.RoleDeveloper)
	if err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, "Success", toProfiles(users))
}

// Deactivate soft-deletes an account; a deactivated user cannot log in.
func (h *UserAdminHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false, "User Deactivated")
}

// Activate restores a previously deactivated account.
func (h *UserAdminHandler) Activate(c echo.Context) error {
	return h.setActive(c, true, "User Activated")
}

func (h *UserAdminHandler) setActive(c echo.Context, active bool, okMsg string) error {
	var req userIDReq
	if err := c.Bind(&req); err != nil || req.UserID == 0 {
		return respond(c, http.StatusBadRequest, "userId required", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.SetActive(ctx, req.UserID, active); err != nil {
		if err == repository.ErrUserNotFound {
			return respond(c, http.StatusNotFound, "user not found", nil)
		}
		return internalError(c)
	}
	return respond(c, http.StatusOK, okMsg, nil)
}

// Update renames an account.
func (h *UserAdminHandler) Update(c echo.Context) error {
	var req struct {
		UserID uint64 `json:"userId"`
		Name   string `json:"name"`
	}
	if err := c.Bind(&req); err != nil || req.UserID == 0 {
		return respond(c, http.StatusBadRequest, "userId required", nil)
	}
	if len(req.Name) < 3 || len(req.Name) > 20 || !nameRx.MatchString(req.Name) {
		return fieldErrors(c, map[string]string{"name": "Name should be alphanumeric and between 3 and 20 characters"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.UpdateName(ctx, req.UserID, req.Name); err != nil {
		if err == repository.ErrUserNotFound {
			return respond(c, http.StatusNotFound, "user not found", nil)
		}
		return internalError(c)
	}
	return respond(c, http.StatusOK, "User Updated", nil)
}
