package handlers_test

import (
	"net/http"
	"testing"

	"github.com/nanaboakye-dev/tasty-bites/models"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Alice", "email": "alice@tastybites.test", "password": "secret1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, body = %s", w.Code, w.Body.String())
	}
	var reg struct {
		Token string `json:"token"`
		User  struct {
			Role models.UserRole `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, w, &reg)
	if reg.Token == "" {
		t.Error("register must return a token")
	}
	if reg.User.Role != models.RoleUser {
		t.Errorf("registered role = %q, admin accounts are not self-service", reg.User.Role)
	}

	// duplicate email
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Alice Again", "email": "alice@tastybites.test", "password": "secret1",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate email: status = %d, want 409", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "alice@tastybites.test", "password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Errorf("login: status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "alice@tastybites.test", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status = %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/profile", reg.Token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("profile with token: status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/profile", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("profile with garbage token: status = %d, want 401", w.Code)
	}
}
