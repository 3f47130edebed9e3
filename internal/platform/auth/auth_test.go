package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var testCfg = JWTConfig{
	Issuer:     "healthtrack",
	SigningKey: []byte("test-signing-key-at-least-32-chars!!"),
}

func TestIssueAndVerifyToken(t *testing.T) {
	userID := uuid.New()
	token, err := IssueToken(testCfg, userID, "paciente", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTMiddleware(testCfg)(func(c echo.Context) error {
		ctx := c.Request().Context()
		if got := UserIDFromContext(ctx); got != userID {
			t.Errorf("user id = %s, want %s", got, userID)
		}
		if got := RoleFromContext(ctx); got != "paciente" {
			t.Errorf("role = %q, want paciente", got)
		}
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware rejected valid token: %v", err)
	}
}

func TestJWTMiddleware_Rejections(t *testing.T) {
	expired, err := IssueToken(testCfg, uuid.New(), "paciente", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	wrongKey, err := IssueToken(JWTConfig{Issuer: "healthtrack", SigningKey: []byte("another-key-that-is-also-32-chars!!!")}, uuid.New(), "paciente", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"bad format", "Token abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired", "Bearer " + expired},
		{"wrong key", "Bearer " + wrongKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := JWTMiddleware(testCfg)(func(c echo.Context) error { return nil })
			err := h(c)
			if err == nil {
				t.Fatal("expected rejection")
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %v", err)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	run := func(role string, required ...string) error {
		e := echo.New()
		token, err := IssueToken(testCfg, uuid.New(), role, time.Hour)
		if err != nil {
			t.Fatalf("IssueToken: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := JWTMiddleware(testCfg)(RequireRole(required...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}))
		return h(c)
	}

	if err := run("medico", "medico"); err != nil {
		t.Errorf("matching role rejected: %v", err)
	}
	if err := run("admin", "medico"); err != nil {
		t.Errorf("admin should pass any role check: %v", err)
	}
	err := run("paciente", "medico")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("wrong password accepted")
	}
}

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	if !Authorize(owner, owner) {
		t.Error("owner should be authorized")
	}
	if Authorize(other, owner) {
		t.Error("non-owner should not be authorized")
	}
	if Authorize(uuid.Nil, owner) {
		t.Error("anonymous user should not be authorized")
	}
	if Authorize(owner, uuid.Nil) {
		t.Error("unowned record should not be authorized")
	}
}
