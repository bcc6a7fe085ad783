package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
)

// MessageReadMarker defines the interface that the message service must implement.
type MessageReadMarker interface {
	MarkRead(ctx context.Context, id uuid.UUID, requester string) (*time.Time, error)
}

// MarkReadResponse represents a successful mark-read response
// swagger:model MarkReadResponse
type MarkReadResponse struct {
	MessageID uuid.UUID `json:"id"`
	ReadAt    time.Time `json:"read_at"`
}

// NewMessageReadHandler returns an HTTP handler marking a message read.
// Only the recipient may mark it, and the transition is one-way.
// @Summary Mark a message read
// @Description Sets the read timestamp of a message on behalf of its recipient
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} handlers.MarkReadResponse "Read timestamp"
// @Failure 400 {object} handlers.MessageErrorResponse "Invalid message id"
// @Failure 403 {object} handlers.MessageErrorResponse "Requester is not the recipient"
// @Failure 404 {object} handlers.MessageErrorResponse "Message not found"
// @Router /messages/{id}/read [post]
// @Security BearerAuth
func NewMessageReadHandler(svc MessageReadMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageErrorResponse{
				Error: "invalid message id",
			})
			return
		}

		identity := middlewares.UsernameFromContext(ctx)

		readAt, err := svc.MarkRead(ctx, id, identity)
		if err != nil {
			writeMessageError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MarkReadResponse{
			MessageID: id,
			ReadAt:    *readAt,
		})
	}
}
