package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/utils"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestJWTAuthInjectsIdentity(t *testing.T) {
	const secret = "mw-secret"
	tok, err := utils.NewAccessToken(secret, 7, "dev@example.com", "DEVELOPER", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTAuth(secret)(func(c echo.Context) error {
		if got := c.Get(CtxEmail); got != "dev@example.com" {
			t.Errorf("email in context = %v", got)
		}
		if got := c.Get(CtxRole); got != "DEVELOPER" {
			t.Errorf("role in context = %v", got)
		}
		if got := c.Get(CtxUserID); got != uint64(7) {
			t.Errorf("user id in context = %v", got)
		}
		return okHandler(c)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	e := echo.New()
	h := JWTAuth("mw-secret")(okHandler)

	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer nonsense",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			if err := h(e.NewContext(req, rec)); err != nil {
				t.Fatalf("handler err: %v", err)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	h := RequireRole("ADMIN")(okHandler)

	cases := []struct {
		name string
		role interface{}
		want int
	}{
		{"admin passes", "ADMIN", http.StatusOK},
		{"user blocked", "USER", http.StatusForbidden},
		{"developer blocked", "DEVELOPER", http.StatusForbidden},
		{"missing role blocked", nil, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != nil {
				c.Set(CtxRole, tc.role)
			}
			if err := h(c); err != nil {
				t.Fatalf("handler err: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
