package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// It extracts the bearer token from the "Authorization" header, recovers
// the username through [service.SessionService.Recover] and stores it in the
// request context with [utils.WithUsername].
//
// Requests are rejected with HTTP 401 when the header is absent
// ([ErrEmptyAuthorizationHeader]), is not a bearer token
// ([ErrInvalidAuthorizationHeader]), or carries a token that is malformed,
// forged or expired.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		username, err := h.services.SessionService.Recover(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).With().Str("username", username).Logger()
		ctx = l.WithContext(utils.WithUsername(ctx, username))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ensureCorrectUser lets the request through only when the {username} path
// segment names the authenticated user.
func ensureCorrectUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current, ok := utils.GetUsernameFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoUserInContext)
			return
		}

		if requested := chi.URLParam(r, usernameParam); requested != current {
			writeError(w, r, fmt.Errorf("%w: %q may not access data of %q", service.ErrForbidden, current, requested))
			return
		}

		next.ServeHTTP(w, r)
	})
}
