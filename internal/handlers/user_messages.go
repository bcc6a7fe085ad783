package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
)

// UserMessagesReader defines the interface that the user service must implement.
type UserMessagesReader interface {
	MessagesFrom(ctx context.Context, username string) ([]models.UserMessage, error)
	MessagesTo(ctx context.Context, username string) ([]models.UserMessage, error)
}

// SentMessage is one entry of a user's outbox: the message plus the
// recipient's public profile.
// swagger:model SentMessage
type SentMessage struct {
	MessageID uuid.UUID         `json:"id"`
	ToUser    models.PublicUser `json:"to_user"`
	Body      string            `json:"body"`
	SentAt    time.Time         `json:"sent_at"`
	ReadAt    *time.Time        `json:"read_at"`
}

// ReceivedMessage is one entry of a user's inbox: the message plus the
// sender's public profile.
// swagger:model ReceivedMessage
type ReceivedMessage struct {
	MessageID uuid.UUID         `json:"id"`
	FromUser  models.PublicUser `json:"from_user"`
	Body      string            `json:"body"`
	SentAt    time.Time         `json:"sent_at"`
	ReadAt    *time.Time        `json:"read_at"`
}

// SentMessagesResponse lists a user's sent messages
// swagger:model SentMessagesResponse
type SentMessagesResponse struct {
	Messages []SentMessage `json:"messages"`
}

// ReceivedMessagesResponse lists a user's received messages
// swagger:model ReceivedMessagesResponse
type ReceivedMessagesResponse struct {
	Messages []ReceivedMessage `json:"messages"`
}

// NewUserMessagesFromHandler returns an HTTP handler listing messages a
// user has sent. Only the user itself may read its outbox.
// @Summary List sent messages
// @Description Returns every message the user sent, enriched with the recipient's public profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.SentMessagesResponse "Sent messages"
// @Failure 403 {object} handlers.UserErrorResponse "Outbox belongs to another user"
// @Router /users/{username}/messages/from [get]
// @Security BearerAuth
func NewUserMessagesFromHandler(svc UserMessagesReader, gate ProfileGate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity := middlewares.UsernameFromContext(ctx)
		username := chi.URLParam(r, "username")

		if !gate.CanReadProfile(identity, username) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "Forbidden",
			})
			return
		}

		messages, err := svc.MessagesFrom(ctx, username)
		if err != nil {
			writeUserMessagesError(w, err)
			return
		}

		resp := SentMessagesResponse{Messages: make([]SentMessage, 0, len(messages))}
		for i := range messages {
			m := &messages[i]
			resp.Messages = append(resp.Messages, SentMessage{
				MessageID: m.MessageID,
				ToUser:    m.Counterpart,
				Body:      m.Body,
				SentAt:    m.SentAt,
				ReadAt:    m.ReadAt,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewUserMessagesToHandler returns an HTTP handler listing messages a
// user has received. Only the user itself may read its inbox.
// @Summary List received messages
// @Description Returns every message the user received, enriched with the sender's public profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.ReceivedMessagesResponse "Received messages"
// @Failure 403 {object} handlers.UserErrorResponse "Inbox belongs to another user"
// @Router /users/{username}/messages/to [get]
// @Security BearerAuth
func NewUserMessagesToHandler(svc UserMessagesReader, gate ProfileGate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity := middlewares.UsernameFromContext(ctx)
		username := chi.URLParam(r, "username")

		if !gate.CanReadProfile(identity, username) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "Forbidden",
			})
			return
		}

		messages, err := svc.MessagesTo(ctx, username)
		if err != nil {
			writeUserMessagesError(w, err)
			return
		}

		resp := ReceivedMessagesResponse{Messages: make([]ReceivedMessage, 0, len(messages))}
		for i := range messages {
			m := &messages[i]
			resp.Messages = append(resp.Messages, ReceivedMessage{
				MessageID: m.MessageID,
				FromUser:  m.Counterpart,
				Body:      m.Body,
				SentAt:    m.SentAt,
				ReadAt:    m.ReadAt,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

func writeUserMessagesError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrDataIntegrity) {
		logger.Log.Errorw("data integrity violation", "err", err)
	} else {
		logger.Log.Errorw("internal server error", "err", err)
	}
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(UserErrorResponse{
		Error: "Internal server error",
	})
}
