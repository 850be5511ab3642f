package service

import (
	"errors"
	"testing"
	"time"
)

func TestSuspendSupersedesActiveSuspension(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "bob")

	if _, err := env.ledger.Suspend(user.ID, "admin", 5, "spam"); err != nil {
		t.Fatalf("first suspend failed: %v", err)
	}
	if _, err := env.ledger.Suspend(user.ID, "admin", 0, "repeat offense"); err != nil {
		t.Fatalf("second suspend failed: %v", err)
	}

	active, err := env.suspensions.CountActiveByUser(user.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if active != 1 {
		t.Errorf("expected exactly one active suspension, got %d", active)
	}

	// The superseded row must still exist for history.
	var total int64
	if err := env.db.Table("suspensions").Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		t.Fatalf("total count failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected two suspension rows retained, got %d", total)
	}
}

func TestPermanentSuspensionBlocksForever(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "bob")

	s, err := env.ledger.Suspend(user.ID, "admin", 0, "permanent ban")
	if err != nil {
		t.Fatalf("suspend failed: %v", err)
	}
	if !s.Permanent() {
		t.Error("zero duration should create a permanent suspension")
	}

	for _, offset := range []time.Duration{0, 24 * time.Hour, 10 * 365 * 24 * time.Hour} {
		blocked, err := env.ledger.IsBlocked(user.ID, time.Now().Add(offset))
		if err != nil {
			t.Fatalf("IsBlocked failed: %v", err)
		}
		if !blocked {
			t.Errorf("permanent suspension should block at offset %v", offset)
		}
	}
}

func TestDatedSuspensionExpiresLazily(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "bob")

	if _, err := env.ledger.Suspend(user.ID, "admin", 5, "cooldown"); err != nil {
		t.Fatalf("suspend failed: %v", err)
	}

	now := time.Now()
	blocked, err := env.ledger.IsBlocked(user.ID, now.Add(4*24*time.Hour))
	if err != nil {
		t.Fatalf("IsBlocked failed: %v", err)
	}
	if !blocked {
		t.Error("suspension should still block before the end date")
	}

	blocked, err = env.ledger.IsBlocked(user.ID, now.Add(6*24*time.Hour))
	if err != nil {
		t.Fatalf("IsBlocked failed: %v", err)
	}
	if blocked {
		t.Error("suspension should stop blocking after the end date")
	}

	// Expiry is computed on read; the row keeps its active flag.
	active, err := env.suspensions.CountActiveByUser(user.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if active != 1 {
		t.Errorf("expiry must not flip the active flag, got %d active rows", active)
	}
}

func TestUnsuspendLiftsSuspension(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "bob")

	if _, err := env.ledger.Suspend(user.ID, "admin", 0, "ban"); err != nil {
		t.Fatalf("suspend failed: %v", err)
	}
	if err := env.ledger.Unsuspend(user.ID); err != nil {
		t.Fatalf("unsuspend failed: %v", err)
	}

	blocked, err := env.ledger.IsBlocked(user.ID, time.Now())
	if err != nil {
		t.Fatalf("IsBlocked failed: %v", err)
	}
	if blocked {
		t.Error("user should not be blocked after unsuspend")
	}
}

func TestUnsuspendWithoutActiveSuspensionIsNoop(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "bob")

	if err := env.ledger.Unsuspend(user.ID); err != nil {
		t.Errorf("unsuspend of a clean user should be a no-op, got %v", err)
	}
}

func TestSuspendUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.ledger.Suspend(9999, "admin", 5, "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetActiveReturnsBlockingRecord(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "bob")

	if _, err := env.ledger.Suspend(user.ID, "admin", 3, "because"); err != nil {
		t.Fatalf("suspend failed: %v", err)
	}

	s, err := env.ledger.GetActive(user.ID, time.Now())
	if err != nil {
		t.Fatalf("GetActive failed: %v", err)
	}
	if s == nil {
		t.Fatal("expected an active suspension")
	}
	if s.SuspendedBy != "admin" || s.Reason != "because" {
		t.Errorf("unexpected record: by=%q reason=%q", s.SuspendedBy, s.Reason)
	}

	s, err = env.ledger.GetActive(user.ID, time.Now().Add(4*24*time.Hour))
	if err != nil {
		t.Fatalf("GetActive failed: %v", err)
	}
	if s != nil {
		t.Error("expected no active suspension after expiry")
	}
}
