package auth

// Identity is the resolved caller of a request. It is passed explicitly
// into every service call; there is no ambient security context.
//
// The Role field is whatever the credential claimed at issue time. It is
// advisory only: authorization re-reads the role from the user store, so
// a stale claim cannot grant rights on its own.
type Identity struct {
	Username string
	Role     string
}

// Anonymous is the sentinel identity for requests without credentials.
var Anonymous = Identity{}

// IsAnonymous reports whether the identity carries no authenticated
// principal.
func (i Identity) IsAnonymous() bool {
	return i.Username == ""
}
