package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
)

// messageRow is the joined shape of a message with both participants' profiles.
// Counterpart columns are coalesced to '' when the profile row is missing,
// which the service layer treats as an integrity violation.
type messageRow struct {
	MessageID     uuid.UUID  `db:"message_id"`
	Body          string     `db:"body"`
	SentAt        time.Time  `db:"sent_at"`
	ReadAt        *time.Time `db:"read_at"`
	FromUsername  string     `db:"from_username"`
	FromFirstName string     `db:"from_first_name"`
	FromLastName  string     `db:"from_last_name"`
	FromPhone     string     `db:"from_phone"`
	ToUsername    string     `db:"to_username"`
	ToFirstName   string     `db:"to_first_name"`
	ToLastName    string     `db:"to_last_name"`
	ToPhone       string     `db:"to_phone"`
}

func (row *messageRow) toMessage() models.Message {
	return models.Message{
		MessageID: row.MessageID,
		FromUser: models.PublicUser{
			Username:  row.FromUsername,
			FirstName: row.FromFirstName,
			LastName:  row.FromLastName,
			Phone:     row.FromPhone,
		},
		ToUser: models.PublicUser{
			Username:  row.ToUsername,
			FirstName: row.ToFirstName,
			LastName:  row.ToLastName,
			Phone:     row.ToPhone,
		},
		Body:   row.Body,
		SentAt: row.SentAt,
		ReadAt: row.ReadAt,
	}
}

// userMessageRow is a message joined with a single counterpart profile.
type userMessageRow struct {
	MessageID uuid.UUID  `db:"message_id"`
	Body      string     `db:"body"`
	SentAt    time.Time  `db:"sent_at"`
	ReadAt    *time.Time `db:"read_at"`
	Username  string     `db:"counterpart_username"`
	FirstName string     `db:"counterpart_first_name"`
	LastName  string     `db:"counterpart_last_name"`
	Phone     string     `db:"counterpart_phone"`
}

func (row *userMessageRow) toUserMessage() models.UserMessage {
	return models.UserMessage{
		MessageID: row.MessageID,
		Counterpart: models.PublicUser{
			Username:  row.Username,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Phone:     row.Phone,
		},
		Body:   row.Body,
		SentAt: row.SentAt,
		ReadAt: row.ReadAt,
	}
}

// MessageReadRepository handles message read operations.
type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

// GetByID returns a message with both participants' public profiles,
// or nil if the id is absent.
func (r *MessageReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	const query = `
		SELECT m.message_id, m.body, m.sent_at, m.read_at,
		       COALESCE(f.username, '')   AS from_username,
		       COALESCE(f.first_name, '') AS from_first_name,
		       COALESCE(f.last_name, '')  AS from_last_name,
		       COALESCE(f.phone, '')      AS from_phone,
		       COALESCE(t.username, '')   AS to_username,
		       COALESCE(t.first_name, '') AS to_first_name,
		       COALESCE(t.last_name, '')  AS to_last_name,
		       COALESCE(t.phone, '')      AS to_phone
		FROM messages m
		LEFT JOIN users f ON f.username = m.from_username
		LEFT JOIN users t ON t.username = m.to_username
		WHERE m.message_id = $1
	`

	var row messageRow
	err := r.db.GetContext(ctx, &row, query, id)

	logger.Log.Infow("message query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	msg := row.toMessage()
	return &msg, nil
}

// ListFrom returns every message sent by the user, each joined with the
// recipient's public profile in a single round-trip.
func (r *MessageReadRepository) ListFrom(ctx context.Context, username string) ([]models.UserMessage, error) {
	const query = `
		SELECT m.message_id, m.body, m.sent_at, m.read_at,
		       COALESCE(u.username, '')   AS counterpart_username,
		       COALESCE(u.first_name, '') AS counterpart_first_name,
		       COALESCE(u.last_name, '')  AS counterpart_last_name,
		       COALESCE(u.phone, '')      AS counterpart_phone
		FROM messages m
		LEFT JOIN users u ON u.username = m.to_username
		WHERE m.from_username = $1
		ORDER BY m.sent_at, m.message_id
	`
	return r.listUserMessages(ctx, query, username)
}

// ListTo returns every message received by the user, each joined with the
// sender's public profile in a single round-trip.
func (r *MessageReadRepository) ListTo(ctx context.Context, username string) ([]models.UserMessage, error) {
	const query = `
		SELECT m.message_id, m.body, m.sent_at, m.read_at,
		       COALESCE(u.username, '')   AS counterpart_username,
		       COALESCE(u.first_name, '') AS counterpart_first_name,
		       COALESCE(u.last_name, '')  AS counterpart_last_name,
		       COALESCE(u.phone, '')      AS counterpart_phone
		FROM messages m
		LEFT JOIN users u ON u.username = m.from_username
		WHERE m.to_username = $1
		ORDER BY m.sent_at, m.message_id
	`
	return r.listUserMessages(ctx, query, username)
}

func (r *MessageReadRepository) listUserMessages(ctx context.Context, query, username string) ([]models.UserMessage, error) {
	var rows []userMessageRow
	err := r.db.SelectContext(ctx, &rows, query, username)

	logger.Log.Infow("message list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"count", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	messages := make([]models.UserMessage, 0, len(rows))
	for i := range rows {
		messages = append(messages, rows[i].toUserMessage())
	}
	return messages, nil
}

// MessageWriteRepository handles message write operations.
type MessageWriteRepository struct {
	db *sqlx.DB
}

func NewMessageWriteRepository(db *sqlx.DB) *MessageWriteRepository {
	return &MessageWriteRepository{db: db}
}

// Save inserts a new message row and returns it as stored.
func (r *MessageWriteRepository) Save(ctx context.Context, id uuid.UUID, fromUsername, toUsername, body string) (*models.MessageDB, error) {
	const query = `
		INSERT INTO messages (message_id, from_username, to_username, body, sent_at, read_at)
		VALUES ($1, $2, $3, $4, NOW(), NULL)
		RETURNING message_id, from_username, to_username, body, sent_at, read_at
	`
	args := []any{id, fromUsername, toUsername, body}

	var msg models.MessageDB
	err := r.db.GetContext(ctx, &msg, query, args...)

	logger.Log.Infow("message insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &msg, nil
}

// SetReadAt marks a message read. The COALESCE keeps the transition one-way:
// an already-set read_at is preserved, so concurrent or repeated calls never
// regress it. Returns nil when the id is absent.
func (r *MessageWriteRepository) SetReadAt(ctx context.Context, id uuid.UUID) (*time.Time, error) {
	const query = `
		UPDATE messages
		SET read_at = COALESCE(read_at, NOW())
		WHERE message_id = $1
		RETURNING read_at
	`

	var readAt time.Time
	err := r.db.GetContext(ctx, &readAt, query, id)

	logger.Log.Infow("message read_at update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &readAt, nil
}
