package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order: trace id, access log, gzip,
// panic recovery, request timeout.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users", h.listUsers)
		r.With(ensureCorrectUser).Get("/api/users/{username}", h.getUser)
		r.With(ensureCorrectUser).Get("/api/users/{username}/to", h.messagesTo)
		r.With(ensureCorrectUser).Get("/api/users/{username}/from", h.messagesFrom)

		r.Post("/api/messages", h.sendMessage)
		r.Get("/api/messages/{id}", h.getMessage)
		r.Post("/api/messages/{id}/read", h.markRead)
	})

	router.NotFound(CheckHTTPMethod)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
