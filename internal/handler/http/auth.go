package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
)

// register creates the account, records the first login and answers with a
// session token, both in the body and in the Authorization header. The
// account exists once Register succeeds, so a failed login timestamp is only
// logged.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidArgument, err))
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.AuthService.TouchLogin(ctx, registeredUser.Username); err != nil {
		log.Warn().Err(err).Str("username", registeredUser.Username).Msg("error recording first login")
	}

	log.Info().Str("username", registeredUser.Username).Msg("user registered")
	h.writeToken(w, r, registeredUser.Username, http.StatusCreated)
}

// login answers with a fresh session token. Unknown usernames and wrong
// passwords produce the same response.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidArgument, err))
		return
	}

	_, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if errors.Is(err, service.ErrNotFound) {
		logger.FromRequest(r).Debug().Err(err).Msg("login for unknown user")
		err = service.ErrWrongPassword
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeToken(w, r, req.Username, http.StatusOK)
}

func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, username string, status int) {
	token, err := h.services.SessionService.Issue(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing token response")
	}
}
