package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/config"
	"github.com/zenova/gamehub-backend/internal/repository"
	"github.com/zenova/gamehub-backend/internal/utils"
)

// AuthHandler bundles dependencies for registration, login and the
// token-scoped profile endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type updateInfoReq struct {
	ExistingPassword string `json:"existingPassword"`
	Password         string `json:"password"`
}

// authResp is returned by register and login: the caller's email plus a
// signed bearer token.
type authResp struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type profileResp struct {
	ID     uint64 `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Register creates a user and returns a token immediately. Addresses on
// the platform's own domain are registered as ADMIN, everyone else as
// USER. A duplicate email is a conflict.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if errs := validateRegistration(req.Email, req.Password, req.Name); len(errs) > 0 {
		return fieldErrors(c, errs)
	}
	role := registrationRole(req.Email)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password, req.Name, role, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return respond(c, http.StatusConflict, "Email Already Used", nil)
		}
		return internalError(c)
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, req.Email, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusCreated, "Success", authResp{Email: req.Email, Token: access.Token})
}

// Login verifies credentials and returns a fresh token. Unknown email,
// wrong password and a deactivated account all collapse into the same
// 401 so the endpoint cannot be used to probe for accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return respond(c, http.StatusBadRequest, "email/password required", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return respond(c, http.StatusUnauthorized, "invalid credentials", nil)
		}
		return internalError(c)
	}
	if !u.IsActive || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return respond(c, http.StatusUnauthorized, "invalid credentials", nil)
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, "Success", authResp{Email: u.Email, Token: access.Token})
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return respond(c, http.StatusUnauthorized, "unauthorized", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, id.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return respond(c, http.StatusNotFound, "user not found", nil)
		}
		return internalError(c)
	}
	return c.JSON(http.StatusOK, profileResp{
		ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, Active: u.IsActive,
	})
}

// UpdateInfo changes the caller's password after verifying the current
// one. Both fields are required; a wrong existing password is a 401.
func (h *AuthHandler) UpdateInfo(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return respond(c, http.StatusUnauthorized, "unauthorized", nil)
	}
	var req updateInfoReq
	if err := c.Bind(&req); err != nil || req.ExistingPassword == "" || req.Password == "" {
		return respond(c, http.StatusBadRequest, "Both existing and new passwords are required", nil)
	}
	if len(req.Password) < 6 {
		return fieldErrors(c, map[string]string{"password": "Password should be at least 6 characters"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, id.Email)
	if err != nil {
		return internalError(c)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.ExistingPassword) {
		return respond(c, http.StatusUnauthorized, "Invalid existing password", nil)
	}
	if err := h.Users.UpdatePassword(ctx, id.Email, req.Password, h.Cfg.BcryptCost); err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, "Password updated successfully", nil)
}
