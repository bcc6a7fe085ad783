package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrMessageNotFound = errors.New("message does not exist")
	ErrForbidden       = errors.New("action not allowed for this identity")
)

// MessageReader defines read operations for messages.
type MessageReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
}

// MessageWriter defines write operations for messages.
type MessageWriter interface {
	Save(ctx context.Context, id uuid.UUID, fromUsername, toUsername, body string) (*models.MessageDB, error)
	SetReadAt(ctx context.Context, id uuid.UUID) (*time.Time, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// messageCreatedEvent is published to Kafka after a message is stored.
// The body is deliberately not part of the event.
type messageCreatedEvent struct {
	MessageID    uuid.UUID `json:"message_id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	SentAt       time.Time `json:"sent_at"`
}

// MessageService composes the message store with the access policy.
// Every read or mutation is gated on the requesting identity before
// any content is returned.
type MessageService struct {
	reader      MessageReader
	writer      MessageWriter
	users       UserReader
	policy      *AccessPolicy
	kafkaWriter KafkaWriter
}

// NewMessageService creates a new MessageService.
func NewMessageService(
	reader MessageReader,
	writer MessageWriter,
	users UserReader,
	policy *AccessPolicy,
	kafkaWriter KafkaWriter,
) *MessageService {
	return &MessageService{
		reader:      reader,
		writer:      writer,
		users:       users,
		policy:      policy,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a new message. The sender is always the verified identity
// of the caller, never a request-supplied value. Fails with ErrUserNotFound
// when the recipient does not exist.
func (svc *MessageService) Create(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageDB, error) {
	if toUsername == "" || body == "" {
		return nil, ErrValidation
	}

	recipient, err := svc.users.GetByUsername(ctx, toUsername)
	if err != nil {
		logger.Log.Errorw("failed to check recipient", "err", err)
		return nil, err
	}
	if recipient == nil {
		logger.Log.Errorw("recipient does not exist", "to_username", toUsername)
		return nil, ErrUserNotFound
	}

	msg, err := svc.writer.Save(ctx, uuid.New(), fromUsername, toUsername, body)
	if err != nil {
		logger.Log.Errorw("failed to save message", "err", err)
		return nil, err
	}

	svc.publishCreated(ctx, msg)

	return msg, nil
}

// publishCreated emits the message-created event. The stored row is the
// source of truth, so a publish failure is logged and not surfaced.
func (svc *MessageService) publishCreated(ctx context.Context, msg *models.MessageDB) {
	if svc.kafkaWriter == nil {
		return
	}

	event := messageCreatedEvent{
		MessageID:    msg.MessageID,
		FromUsername: msg.FromUsername,
		ToUsername:   msg.ToUsername,
		SentAt:       msg.SentAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to encode message event", "err", err)
		return
	}

	err = svc.kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.MessageID.String()),
		Value: payload,
	})
	if err != nil {
		logger.Log.Errorw("failed to publish message event", "message_id", msg.MessageID, "err", err)
	}
}

// Get returns a message with both participants' profiles. The access check
// runs before anything is returned: a denied requester learns only the
// deny decision, never the body or timestamps.
func (svc *MessageService) Get(ctx context.Context, id uuid.UUID, requester string) (*models.Message, error) {
	msg, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get message", "err", err)
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	if msg.FromUser.Username == "" || msg.ToUser.Username == "" {
		logger.Log.Errorw("message references missing user profile", "message_id", id)
		return nil, ErrDataIntegrity
	}

	if !svc.policy.CanReadMessage(requester, msg.FromUser.Username, msg.ToUser.Username) {
		logger.Log.Errorw("message read denied", "message_id", id, "requester", requester)
		return nil, ErrForbidden
	}

	return msg, nil
}

// MarkRead transitions a message from unread to read on behalf of its
// recipient. The transition is one-way: repeated calls return the
// timestamp set by the first one.
func (svc *MessageService) MarkRead(ctx context.Context, id uuid.UUID, requester string) (*time.Time, error) {
	msg, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get message", "err", err)
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}

	if !svc.policy.CanMarkRead(requester, msg.ToUser.Username) {
		logger.Log.Errorw("mark-read denied", "message_id", id, "requester", requester)
		return nil, ErrForbidden
	}

	readAt, err := svc.writer.SetReadAt(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to set read_at", "err", err)
		return nil, err
	}
	if readAt == nil {
		return nil, ErrMessageNotFound
	}

	return readAt, nil
}
