package handler

import (
	"context"
	"net/http"
	"strings"

	"blog-backend/internal/auth"
	"blog-backend/internal/logger"
)

type contextKey string

const identityKey contextKey = "identity"

// identityMiddleware resolves the bearer token, if any, into an Identity
// stored on the request context. Requests without a token, or with one
// that fails validation, proceed as anonymous; the services decide which
// operations anonymous callers may perform.
func identityMiddleware(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := auth.Anonymous
			header := r.Header.Get("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				parsed, err := tokens.Parse(token)
				if err != nil {
					logger.Debugf("Rejected bearer token: %v", err)
				} else {
					identity = parsed
				}
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requestIdentity returns the identity stored by identityMiddleware,
// or the anonymous sentinel if the middleware did not run.
func requestIdentity(r *http.Request) auth.Identity {
	if identity, ok := r.Context().Value(identityKey).(auth.Identity); ok {
		return identity
	}
	return auth.Anonymous
}
