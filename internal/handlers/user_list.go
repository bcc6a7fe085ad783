package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
)

// UserLister defines the interface that the user service must implement.
type UserLister interface {
	All(ctx context.Context) ([]models.PublicUser, error)
}

// UserListResponse represents the listing of all users
// swagger:model UserListResponse
type UserListResponse struct {
	// Public profiles, ordered by username
	Users []models.PublicUser `json:"users"`
}

// NewUserListHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns the public profile fields of every registered user
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UserListResponse "User listing"
// @Failure 401 {object} handlers.UserErrorResponse "Unauthorized"
// @Router /users [get]
// @Security BearerAuth
func NewUserListHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.All(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserListResponse{
			Users: users,
		})
	}
}
