package session_test

import (
	"context"
	"registrar/internal/session"
	"registrar/pkg/domain"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newSession(ttl time.Duration) domain.Session {
	now := time.Now().UTC().Truncate(time.Second)

	return domain.Session{
		ID:             uuid.NewString(),
		RegistrationID: domain.RegistrationID(uuid.New()),
		RegCode:        "MTERM2026-000001",
		Email:          "ada@example.com",
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}
}

func TestMemoryStore_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	s := newSession(time.Hour)

	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, s, *got)

	require.NoError(t, store.Delete(ctx, s.ID))
	got, err = store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting twice is fine
	require.NoError(t, store.Delete(ctx, s.ID))
}

func TestMemoryStore_UnknownAndExpired(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, got)

	expired := newSession(-time.Minute)
	require.NoError(t, store.Create(ctx, expired))
	got, err = store.Get(ctx, expired.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := newSession(time.Hour)
			require.NoError(t, store.Create(ctx, s))
			got, err := store.Get(ctx, s.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
		}()
	}
	wg.Wait()
}
