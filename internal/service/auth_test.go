package service

import (
	"errors"
	"strings"
	"testing"

	"blog-backend/internal/auth"
)

func TestRegisterRejectsDuplicates(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice")

	_, _, err := env.authSvc.Register("alice", "other@example.com", "pw123456", "")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("duplicate username: expected ErrValidation, got %v", err)
	}

	_, _, err = env.authSvc.Register("alice2", "alice@example.com", "pw123456", "")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("duplicate email: expected ErrValidation, got %v", err)
	}
}

func TestRegisterDefaultsDisplayName(t *testing.T) {
	env := setupTestEnv(t)

	_, user, err := env.authSvc.Register("carol", "carol@example.com", "pw123456", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.DisplayName != "carol" {
		t.Errorf("expected display name defaulted to username, got %q", user.DisplayName)
	}
}

func TestLoginGrantsPoints(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice")

	_, user, err := env.authSvc.Login("alice", testPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Points != 10 {
		t.Errorf("expected 10 points after first login, got %d", user.Points)
	}

	_, user, err = env.authSvc.Login("alice", testPassword)
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if user.Points != 20 {
		t.Errorf("expected 20 points after second login, got %d", user.Points)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice")

	_, _, err := env.authSvc.Login("alice", "wrong")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.authSvc.Login("ghost", "whatever")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoginSuspendedMessages(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "bob")

	if _, err := env.ledger.Suspend(user.ID, "admin", 0, "ban"); err != nil {
		t.Fatalf("suspend failed: %v", err)
	}
	_, _, err := env.authSvc.Login("bob", testPassword)
	if !errors.Is(err, ErrSuspended) {
		t.Fatalf("expected ErrSuspended, got %v", err)
	}
	if !strings.Contains(err.Error(), "permanently") {
		t.Errorf("permanent suspension message should say so, got %q", err)
	}

	if _, err := env.ledger.Suspend(user.ID, "admin", 5, "cooldown"); err != nil {
		t.Fatalf("re-suspend failed: %v", err)
	}
	_, _, err = env.authSvc.Login("bob", testPassword)
	if !errors.Is(err, ErrSuspended) {
		t.Fatalf("expected ErrSuspended, got %v", err)
	}
	if !strings.Contains(err.Error(), "until") {
		t.Errorf("dated suspension message should name the end date, got %q", err)
	}
}

func TestLoginSuspensionCheckedBeforePassword(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "bob")

	if _, err := env.ledger.Suspend(user.ID, "admin", 0, "ban"); err != nil {
		t.Fatalf("suspend failed: %v", err)
	}

	// Even with a wrong password the answer is Suspended, not bad
	// credentials: the account cannot authenticate at all.
	_, _, err := env.authSvc.Login("bob", "wrong")
	if !errors.Is(err, ErrSuspended) {
		t.Errorf("expected ErrSuspended before credential check, got %v", err)
	}
}

func TestCurrentUserAnonymous(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authSvc.CurrentUser(auth.Anonymous)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestCurrentUserUnknownPrincipal(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authSvc.CurrentUser(auth.Identity{Username: "ghost"})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated for unknown principal, got %v", err)
	}
}
