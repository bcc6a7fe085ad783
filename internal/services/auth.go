package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrValidation         = errors.New("invalid input")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.PublicUser, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, firstName, lastName, phone string) error
	UpdateLastLogin(ctx context.Context, username string) (int64, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) bool
}

// TokenGenerator issues signed session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	token  TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, token TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		token:  token,
	}
}

// Register creates a new user and returns a session token for it.
func (svc *AuthService) Register(ctx context.Context, username, password, firstName, lastName, phone string) (string, error) {
	if username == "" || password == "" {
		return "", ErrValidation
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if user != nil {
		logger.Log.Errorw("username already taken", "username", username)
		return "", ErrUsernameTaken
	}

	hashedPassword, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	if err := svc.writer.Save(ctx, username, hashedPassword, firstName, lastName, phone); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	token, err := svc.token.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Authenticate reports whether the username/password pair is valid.
// An absent username is false, not an error. No side effects.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return false, err
	}
	if user == nil {
		return false, nil
	}

	return svc.hasher.Compare(user.PasswordHash, password), nil
}

// Login authenticates a user, advances last_login_at and returns a session token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	ok, err := svc.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	if _, err := svc.writer.UpdateLastLogin(ctx, username); err != nil {
		logger.Log.Errorw("failed to update last login", "err", err)
		return "", err
	}

	token, err := svc.token.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
