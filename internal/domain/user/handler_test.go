package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack/internal/platform/auth"
)

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerRegister(t *testing.T) {
	e := echo.New()
	h := NewHandler(newTestService(newMockUserRepo()))

	c, rec := postJSON(e, "/api/v1/auth/register",
		`{"email":"ana@example.com","password":"supersecret","name":"Ana"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	var u User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if u.Email != "ana@example.com" {
		t.Errorf("email = %q", u.Email)
	}
	if strings.Contains(rec.Body.String(), "password_hash") {
		t.Error("response must not leak the password hash")
	}
}

func TestHandlerRegister_IgnoresRoleField(t *testing.T) {
	e := echo.New()
	h := NewHandler(newTestService(newMockUserRepo()))

	c, rec := postJSON(e, "/api/v1/auth/register",
		`{"email":"mallory@example.com","password":"supersecret","name":"Mallory","role":"admin"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	var u User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if u.Role != RolePatient {
		t.Errorf("role = %q, want %q; public registration must not mint elevated accounts", u.Role, RolePatient)
	}
}

func TestHandlerRegister_Invalid(t *testing.T) {
	e := echo.New()
	h := NewHandler(newTestService(newMockUserRepo()))

	c, _ := postJSON(e, "/api/v1/auth/register", `{"email":"bad","password":"supersecret","name":"Ana"}`)
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerLogin(t *testing.T) {
	e := echo.New()
	svc := newTestService(newMockUserRepo())
	h := NewHandler(svc)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Email: "ana@example.com", Password: "supersecret", Name: "Ana",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	c, rec := postJSON(e, "/api/v1/auth/login", `{"email":"ana@example.com","password":"supersecret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	var out loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if out.Token == "" || out.User == nil {
		t.Errorf("incomplete login response: %s", rec.Body.String())
	}

	c, _ = postJSON(e, "/api/v1/auth/login", `{"email":"ana@example.com","password":"nope"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestHandlerMe(t *testing.T) {
	e := echo.New()
	svc := newTestService(newMockUserRepo())
	h := NewHandler(svc)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email: "ana@example.com", Password: "supersecret", Name: "Ana",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, u.ID))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Me(c); err != nil {
		t.Fatalf("Me: %v", err)
	}
	var got User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("id = %s, want %s", got.ID, u.ID)
	}
}
