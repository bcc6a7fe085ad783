package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
)

// MessageGetter defines the interface that the message service must implement.
type MessageGetter interface {
	Get(ctx context.Context, id uuid.UUID, requester string) (*models.Message, error)
}

// MessageResponse represents a message with both participants' profiles
// swagger:model MessageResponse
type MessageResponse struct {
	Message *models.Message `json:"message"`
}

// NewMessageGetHandler returns an HTTP handler for fetching a message.
// Only the sender or the recipient may read it.
// @Summary Get a message
// @Description Returns a message with the sender's and recipient's public profiles
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} handlers.MessageResponse "Message"
// @Failure 400 {object} handlers.MessageErrorResponse "Invalid message id"
// @Failure 403 {object} handlers.MessageErrorResponse "Requester is neither sender nor recipient"
// @Failure 404 {object} handlers.MessageErrorResponse "Message not found"
// @Router /messages/{id} [get]
// @Security BearerAuth
func NewMessageGetHandler(svc MessageGetter) http.HandlerFunc {
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

		msg, err := svc.Get(ctx, id, identity)
		if err != nil {
			writeMessageError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: msg,
		})
	}
}

// writeMessageError maps message service errors onto HTTP statuses.
// A forbidden read leaks nothing beyond the deny decision.
func writeMessageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMessageNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(MessageErrorResponse{
			Error: "Message not found",
		})
	case errors.Is(err, services.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(MessageErrorResponse{
			Error: "Forbidden",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(MessageErrorResponse{
			Error: "Internal server error",
		})
	}
}
