package handler

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/middleware"
	"github.com/zenova/gamehub-backend/internal/model"
	"github.com/zenova/gamehub-backend/internal/repository"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestBindGameFlagsInvalidFields(t *testing.T) {
	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/game/add",
		`{"name":"!!!","price":"free","categoryId":1}`)

	_, errs, err := bindGame(c)
	if err != nil {
		t.Fatalf("bind failed on well-formed JSON: %v", err)
	}
	if errs["name"] == "" || errs["price"] == "" {
		t.Fatalf("invalid name and price not flagged: %v", errs)
	}
}

func TestBindGameRejectsMalformedBody(t *testing.T) {
	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/game/add", `{"name":`)
	if _, _, err := bindGame(c); err == nil {
		t.Fatal("malformed JSON accepted")
	}
}

// An invalid payload must stop Add before any repository call. The
// handler here has nil repositories, so reaching past validation would
// panic instead of returning the 400.
func TestAddStopsOnInvalidPayload(t *testing.T) {
	h := &GameHandler{}
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/game/add",
		`{"name":"!!!","price":"free","categoryId":1}`)

	if err := h.Add(c); err != nil {
		t.Fatalf("Add returned %v after writing the rejection", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Validation Error") {
		t.Fatalf("body = %q, want validation envelope", body)
	}
	if n := strings.Count(rec.Body.String(), `"code"`); n != 1 {
		t.Fatalf("response written %d times, want exactly once", n)
	}
}

func TestUpdateStopsOnInvalidPayload(t *testing.T) {
	h := &GameHandler{}
	c, rec := newJSONContext(t, http.MethodPut, "/api/v1/game/update",
		`{"id":3,"name":"","price":"4.99"}`)

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned %v after writing the rejection", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUploadStopsOnInvalidPayload(t *testing.T) {
	h := &GameHandler{}
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/game/upload",
		`{"name":"!!!","categoryId":1}`)
	c.Set(middleware.CtxUserID, uint64(7))
	c.Set(middleware.CtxEmail, "dev@example.com")
	c.Set(middleware.CtxRole, model.RoleUser)

	if err := h.Upload(c); err != nil {
		t.Fatalf("Upload returned %v after writing the rejection", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// failingConnector yields a database whose every query fails with a
// plain connection error, standing in for an unreachable MySQL.
type failingConnector struct{ err error }

func (f failingConnector) Connect(context.Context) (driver.Conn, error) { return nil, f.err }
func (f failingConnector) Driver() driver.Driver                        { return nil }

func TestPurchaseHidesBackendFailure(t *testing.T) {
	db := sql.OpenDB(failingConnector{err: errors.New("connection refused")})
	defer db.Close()
	h := &GameHandler{Games: repository.NewGameRepo(db)}

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/game/purchase?id=1", "")
	c.Set(middleware.CtxUserID, uint64(7))
	c.Set(middleware.CtxEmail, "p@example.com")
	c.Set(middleware.CtxRole, model.RoleUser)

	if err := h.Purchase(c); err != nil {
		t.Fatalf("Purchase returned %v after writing the response", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 for a backend failure", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, "refused") {
		t.Fatalf("backend error leaked into body: %q", body)
	}
}
