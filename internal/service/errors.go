package service

import "errors"

// Failure kinds returned by service operations. The transport layer maps
// them onto HTTP statuses; services wrap them with context via fmt.Errorf
// and %w, and callers match with errors.Is.
var (
	// ErrNotFound means a referenced user, post, comment or attachment
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated means the request carries no valid identity.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the caller is authenticated but lacks ownership
	// or the administrator role.
	ErrForbidden = errors.New("forbidden")

	// ErrSuspended means a blocked account attempted to log in or mutate
	// something.
	ErrSuspended = errors.New("account suspended")

	// ErrConflict means a concurrent mutation was detected on a critical
	// section. It is the only failure a caller may retry verbatim.
	ErrConflict = errors.New("conflicting concurrent update")

	// ErrValidation means the request payload was malformed or violated a
	// uniqueness rule.
	ErrValidation = errors.New("invalid request")
)
