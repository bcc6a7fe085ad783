package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
)

// Error variables
var (
	ErrUserNotFound  = errors.New("user does not exist")
	ErrDataIntegrity = errors.New("data integrity violation")
)

// MessageLister defines batched listing of a user's messages with the
// counterpart profile already joined in.
type MessageLister interface {
	ListFrom(ctx context.Context, username string) ([]models.UserMessage, error)
	ListTo(ctx context.Context, username string) ([]models.UserMessage, error)
}

// ProfileCache caches public user profiles. A miss is (nil, nil).
type ProfileCache interface {
	Get(ctx context.Context, username string) (*models.PublicUser, error)
	Set(ctx context.Context, user models.PublicUser) error
}

// UserService exposes user profiles and per-user message listings.
type UserService struct {
	reader UserReader
	lister MessageLister
	cache  ProfileCache
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, lister MessageLister, cache ProfileCache) *UserService {
	return &UserService{
		reader: reader,
		lister: lister,
		cache:  cache,
	}
}

// Get returns the public profile for a username. The Redis cache is
// consulted first; a cache failure falls through to the store.
func (svc *UserService) Get(ctx context.Context, username string) (*models.PublicUser, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, username)
		if err != nil {
			logger.Log.Errorw("profile cache read failed", "username", username, "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	public := user.Public()

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, public); err != nil {
			logger.Log.Errorw("profile cache write failed", "username", username, "err", err)
		}
	}

	return &public, nil
}

// All returns the public profiles of every user, ordered by username.
func (svc *UserService) All(ctx context.Context) ([]models.PublicUser, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// MessagesFrom returns every message the user sent, each enriched with
// the recipient's public profile.
func (svc *UserService) MessagesFrom(ctx context.Context, username string) ([]models.UserMessage, error) {
	messages, err := svc.lister.ListFrom(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list sent messages", "username", username, "err", err)
		return nil, err
	}
	if err := checkCounterparts(messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// MessagesTo returns every message the user received, each enriched with
// the sender's public profile.
func (svc *UserService) MessagesTo(ctx context.Context, username string) ([]models.UserMessage, error) {
	messages, err := svc.lister.ListTo(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list received messages", "username", username, "err", err)
		return nil, err
	}
	if err := checkCounterparts(messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// checkCounterparts guards the foreign-key invariant: every message must
// join to an existing counterpart profile. An empty username means the
// join found nothing.
func checkCounterparts(messages []models.UserMessage) error {
	for i := range messages {
		if messages[i].Counterpart.Username == "" {
			logger.Log.Errorw("message references missing user profile", "message_id", messages[i].MessageID)
			return ErrDataIntegrity
		}
	}
	return nil
}
