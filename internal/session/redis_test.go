package session_test

import (
	"context"
	"fmt"
	"registrar/internal/config"
	"registrar/internal/session"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	var cfg config.Config
	cfg.Redis.URL = fmt.Sprintf("redis://%s:%d/0", host, port.Int())
	cfg.Redis.DialTimeout = 5 * time.Second
	cfg.Redis.ReadTimeout = 3 * time.Second
	cfg.Redis.WriteTimeout = 3 * time.Second

	client, err := session.NewRedisClient(ctx, &cfg)
	require.NoError(t, err)

	return client, func() {
		_ = client.Close()
		_ = container.Terminate(ctx)
	}
}

func TestNewRedisClient_EmptyURL(t *testing.T) {
	client, err := session.NewRedisClient(context.Background(), &config.Config{})
	require.NoError(t, err)
	require.Nil(t, client)
}

func TestRedisStore_Lifecycle(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	store := session.NewRedisStore(client, "test:session:")
	s := newSession(time.Hour)

	require.NoError(t, store.Create(ctx, s))

	// the key carries a TTL matching the expiry
	ttl, err := client.TTL(ctx, "test:session:"+s.ID).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, 58*time.Minute)

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, s.RegistrationID, got.RegistrationID)
	require.Equal(t, s.RegCode, got.RegCode)
	require.True(t, s.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Delete(ctx, s.ID))
	got, err = store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRedisStore_RejectsExpired(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	store := session.NewRedisStore(client, "test:session:")
	require.Error(t, store.Create(context.Background(), newSession(-time.Second)))
}
