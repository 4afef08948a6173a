// Package handler implements the HTTP endpoints. Every handler binds
// its request, validates, calls a repository and writes a response
// envelope; identity always comes from the request context that the JWT
// middleware populated, never from any global state.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/middleware"
	"github.com/zenova/gamehub-backend/internal/utils"
)

// Response is the envelope used by every endpoint: a stable numeric
// code (mirroring the HTTP status), a human-readable message and the
// payload. Unexpected failures carry an opaque message only.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Code: status, Message: message, Data: data})
}

// fieldErrors writes a 400 with a field→message map, the shape clients
// use to attach errors to form inputs.
func fieldErrors(c echo.Context, errs map[string]string) error {
	return c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: "Validation Error",
		Data:    errs,
	})
}

// internalError hides the underlying failure behind an opaque body.
func internalError(c echo.Context) error {
	return respond(c, http.StatusInternalServerError, "internal error", nil)
}

var errNoIdentity = errors.New("no identity in context")

// callerIdentity recovers the verified identity stored by the JWT
// middleware. It fails only if a route was registered without JWTAuth.
func callerIdentity(c echo.Context) (utils.Identity, error) {
	id := utils.Identity{}
	uid, ok := c.Get(middleware.CtxUserID).(uint64)
	if !ok {
		return id, errNoIdentity
	}
	email, ok := c.Get(middleware.CtxEmail).(string)
	if !ok || email == "" {
		return id, errNoIdentity
	}
	role, _ := c.Get(middleware.CtxRole).(string)
	id.UserID = uid
	id.Email = email
	id.Role = role
	return id, nil
}
