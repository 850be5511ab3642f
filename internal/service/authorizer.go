package service

import (
	"fmt"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/models"
	"blog-backend/internal/storage"
)

// Authorizer answers the three questions asked before any operation: is
// the caller authenticated, is the caller an administrator, is the caller
// blocked. It is a pure function of the identity passed in; nothing is
// read from ambient request state.
type Authorizer struct {
	users  *storage.UserRepository
	ledger *SuspensionLedger
}

// NewAuthorizer creates an authorizer.
func NewAuthorizer(users *storage.UserRepository, ledger *SuspensionLedger) *Authorizer {
	return &Authorizer{users: users, ledger: ledger}
}

// Resolve returns the stored user behind an identity. Anonymous callers
// and identities whose principal no longer exists both fail with
// ErrUnauthenticated.
func (a *Authorizer) Resolve(identity auth.Identity) (*models.User, error) {
	if identity.IsAnonymous() {
		return nil, ErrUnauthenticated
	}
	user, err := a.users.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("unknown principal %q: %w", identity.Username, ErrUnauthenticated)
	}
	return user, nil
}

// ResolveActor resolves an identity for a mutating operation, rejecting
// blocked accounts with ErrSuspended.
func (a *Authorizer) ResolveActor(identity auth.Identity, now time.Time) (*models.User, error) {
	user, err := a.Resolve(identity)
	if err != nil {
		return nil, err
	}
	blocked, err := a.ledger.IsBlocked(user.ID, now)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, fmt.Errorf("user %q: %w", user.Username, ErrSuspended)
	}
	return user, nil
}

// RequireAdmin resolves an identity and fails with ErrForbidden unless
// the caller is an administrator. The role is checked against both the
// token claim and the stored user row; the double check is intentional so
// a stale embedded claim can never grant admin rights on its own.
func (a *Authorizer) RequireAdmin(identity auth.Identity) (*models.User, error) {
	user, err := a.Resolve(identity)
	if err != nil {
		return nil, err
	}
	if identity.Role != models.RoleAdmin || !user.IsAdmin() {
		return nil, fmt.Errorf("user %q is not an administrator: %w", user.Username, ErrForbidden)
	}
	return user, nil
}

// CanModify reports whether the user may mutate a resource owned by
// ownerID: owners and administrators may.
func (a *Authorizer) CanModify(user *models.User, ownerID uint) bool {
	return user.ID == ownerID || user.IsAdmin()
}
