package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
)

// ProfileCacheRepository caches public user profiles in Redis.
type ProfileCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached profiles
}

// NewProfileCacheRepository creates a new repository instance with the given TTL.
func NewProfileCacheRepository(client *redis.Client, expiration time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func profileKey(username string) string {
	return fmt.Sprintf("profile:%s", username)
}

// Get fetches a cached public profile. A cache miss returns (nil, nil).
func (r *ProfileCacheRepository) Get(ctx context.Context, username string) (*models.PublicUser, error) {
	key := profileKey(username)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("profile cache get",
			"key", key,
			"hit", false,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user models.PublicUser
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Errorw("profile cache decode failed", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("profile cache get",
		"key", key,
		"hit", true,
		"error", nil,
	)

	return &user, nil
}

// Set caches a public profile with the configured expiration.
func (r *ProfileCacheRepository) Set(ctx context.Context, user models.PublicUser) error {
	key := profileKey(user.Username)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("profile cache set",
		"key", key,
		"error", err,
	)

	return err
}
