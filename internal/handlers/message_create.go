package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
)

// MessageCreator defines the interface that the message service must implement.
type MessageCreator interface {
	Create(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageDB, error)
}

// CreateMessageRequest represents the JSON body for sending a message.
// The sender is taken from the verified identity, never from the body.
// swagger:model CreateMessageRequest
type CreateMessageRequest struct {
	// Recipient username
	// required: true
	// default: jane_doe
	ToUsername string `json:"to_username"`

	// Message text
	// required: true
	// default: hello
	Body string `json:"body"`
}

// CreatedMessage represents a stored message
// swagger:model CreatedMessage
type CreatedMessage struct {
	MessageID    uuid.UUID  `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`
}

// CreateMessageResponse represents a successful message creation response
// swagger:model CreateMessageResponse
type CreateMessageResponse struct {
	Message CreatedMessage `json:"message"`
}

// MessageErrorResponse represents an error response for message operations
// swagger:model MessageErrorResponse
type MessageErrorResponse struct {
	// Error message
	// default: Message not found
	Error string `json:"error"`
}

// NewMessageCreateHandler returns an HTTP handler for sending a message.
// @Summary Send a message
// @Description Stores a message from the authenticated identity to the given recipient
// @Tags messages
// @Accept json
// @Produce json
// @Param createMessageRequest body handlers.CreateMessageRequest true "Message to send"
// @Success 201 {object} handlers.CreateMessageResponse "Message created"
// @Failure 400 {object} handlers.MessageErrorResponse "Invalid request"
// @Failure 404 {object} handlers.MessageErrorResponse "Recipient not found"
// @Router /messages [post]
// @Security BearerAuth
func NewMessageCreateHandler(svc MessageCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		identity := middlewares.UsernameFromContext(ctx)

		msg, err := svc.Create(ctx, identity, req.ToUsername, req.Body)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageErrorResponse{
					Error: "Recipient and body are required",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageErrorResponse{
					Error: "Recipient not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateMessageResponse{
			Message: CreatedMessage{
				MessageID:    msg.MessageID,
				FromUsername: msg.FromUsername,
				ToUsername:   msg.ToUsername,
				Body:         msg.Body,
				SentAt:       msg.SentAt,
				ReadAt:       msg.ReadAt,
			},
		})
	}
}
