package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
)

// UserGetter defines the interface that the user service must implement.
type UserGetter interface {
	Get(ctx context.Context, username string) (*models.PublicUser, error)
}

// ProfileGate decides whether an identity may read a user's profile.
type ProfileGate interface {
	CanReadProfile(identity, username string) bool
}

// UserResponse represents a public user profile response
// swagger:model UserResponse
type UserResponse struct {
	// Public profile fields
	User *models.PublicUser `json:"user"`
}

// UserErrorResponse represents an error response for user lookup
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewUserGetHandler returns an HTTP handler for fetching a user profile.
// Only the user itself may read its profile.
// @Summary Get user profile
// @Description Returns the public profile fields of the authenticated user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.UserResponse "User profile"
// @Failure 403 {object} handlers.UserErrorResponse "Profile belongs to another user"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /users/{username} [get]
// @Security BearerAuth
func NewUserGetHandler(svc UserGetter, gate ProfileGate) http.HandlerFunc {
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

		user, err := svc.Get(ctx, username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserResponse{
			User: user,
		})
	}
}
