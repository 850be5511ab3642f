package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/service"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("post 7: %w", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("nope: %w", service.ErrForbidden), http.StatusForbidden},
		{service.ErrUnauthenticated, http.StatusForbidden},
		{fmt.Errorf("banned: %w", service.ErrSuspended), http.StatusBadRequest},
		{fmt.Errorf("bad field: %w", service.ErrValidation), http.StatusBadRequest},
		{service.ErrConflict, http.StatusConflict},
		{fmt.Errorf("db exploded"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		respondError(rec, c.err)
		if rec.Code != c.status {
			t.Errorf("error %v: expected status %d, got %d", c.err, c.status, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("error %v: expected JSON content type, got %q", c.err, ct)
		}
	}
}

func TestIdentityMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	var seen auth.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIdentity(r)
	})
	wrapped := identityMiddleware(tokens)(next)

	// No credentials: anonymous.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)
	if !seen.IsAnonymous() {
		t.Errorf("expected anonymous identity, got %+v", seen)
	}

	// Valid token: resolved identity.
	token, err := tokens.Issue("alice", "USER", time.Now())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)
	if seen.Username != "alice" {
		t.Errorf("expected alice, got %+v", seen)
	}

	// Garbage token: treated as anonymous, not an error.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	wrapped.ServeHTTP(httptest.NewRecorder(), req)
	if !seen.IsAnonymous() {
		t.Errorf("expected anonymous for invalid token, got %+v", seen)
	}
}
