package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestProfileCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewProfileCacheRepository(rdb, 2*time.Second)

	alice := models.PublicUser{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
		Phone:     "+15550000001",
	}

	t.Run("Set and Get profile", func(t *testing.T) {
		err := repo.Set(ctx, alice)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "alice")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, alice, *got)
	})

	t.Run("Miss returns nil without error", func(t *testing.T) {
		got, err := repo.Get(ctx, "nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached profile expires", func(t *testing.T) {
		bob := models.PublicUser{Username: "bob", FirstName: "Bob"}
		assert.NoError(t, repo.Set(ctx, bob))

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, "bob")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
