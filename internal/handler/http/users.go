package http

import (
	"net/http"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/go-chi/chi/v5"
)

const usernameParam = "username"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.UsersResponse{Users: users}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Get(r.Context(), chi.URLParam(r, usernameParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.UserResponse{User: user}, http.StatusOK)
}

func (h *Handler) messagesTo(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.MessageService.MessagesTo(r.Context(), chi.URLParam(r, usernameParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.ReceivedMessagesResponse{Messages: messages}, http.StatusOK)
}

func (h *Handler) messagesFrom(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.MessageService.MessagesFrom(r.Context(), chi.URLParam(r, usernameParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.SentMessagesResponse{Messages: messages}, http.StatusOK)
}

func respond(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
