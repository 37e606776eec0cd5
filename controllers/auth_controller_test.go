package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := setupTestApp(t)

	register := map[string]any{"email": "ana@example.com", "password": "s3cret", "name": "Ana"}
	w := doRequest(t, r, "POST", "/auth/register", register, 0)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// duplicate email is rejected
	w = doRequest(t, r, "POST", "/auth/register", register, 0)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", w.Code)
	}

	login := map[string]any{"email": "ana@example.com", "password": "s3cret"}
	w = doRequest(t, r, "POST", "/auth/login", login, 0)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned no token")
	}

	// the token works against a protected route
	req := doRequestWithToken(t, r, "GET", "/api/goals", resp.Token)
	if req.Code != http.StatusOK {
		t.Fatalf("token rejected: %d", req.Code)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	r, _ := setupTestApp(t)

	register := map[string]any{"email": "ana@example.com", "password": "s3cret", "name": "Ana"}
	if w := doRequest(t, r, "POST", "/auth/register", register, 0); w.Code != http.StatusCreated {
		t.Fatalf("register: got %d", w.Code)
	}

	login := map[string]any{"email": "ana@example.com", "password": "wrong"}
	if w := doRequest(t, r, "POST", "/auth/login", login, 0); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", w.Code)
	}

	login = map[string]any{"email": "ghost@example.com", "password": "s3cret"}
	if w := doRequest(t, r, "POST", "/auth/login", login, 0); w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %d", w.Code)
	}
}
