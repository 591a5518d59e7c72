package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/go-chi/chi/v5"
)

const messageIDParam = "id"

// sendMessage stores a message from the authenticated user.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	sender, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var req models.SendMessageRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidArgument, err))
		return
	}

	msg, err := h.services.MessageService.Send(r.Context(), sender, req.ToUsername, req.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.MessageResponse{Message: msg}, http.StatusCreated)
}

// getMessage returns a message the authenticated user sent or received.
func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	viewer, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	id, err := messageIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	msg, err := h.services.MessageService.Get(r.Context(), id, viewer)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.MessageDetailResponse{Message: msg}, http.StatusOK)
}

// markRead marks a message read on behalf of the authenticated user, who
// must be its recipient.
func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	reader, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	id, err := messageIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	receipt, err := h.services.MessageService.MarkRead(r.Context(), id, reader)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.ReadReceiptResponse{Message: receipt}, http.StatusOK)
}

func messageIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, messageIDParam), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %w", service.ErrInvalidArgument, ErrInvalidMessageID)
	}
	return id, nil
}
