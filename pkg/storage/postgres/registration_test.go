package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"registrar/pkg/domain"
	"registrar/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_NextSequence_Concurrent(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	const callers = 25
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool, callers)
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := pg.NextSequence(ctx, "reg2026")
			require.NoError(t, err)

			mu.Lock()
			defer mu.Unlock()
			require.False(t, seen[seq], "sequence %d issued twice", seq)
			seen[seq] = true
		}()
	}
	wg.Wait()

	for i := int64(1); i <= callers; i++ {
		require.True(t, seen[i], "sequence %d was skipped", i)
	}

	// counters are independent
	seq, err := pg.NextSequence(ctx, "reg2027")
	require.NoError(t, err)
	require.Equal(t, int64(1), seq)
}

func TestPgSQL_StoreRegistration(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	reg := newRegistration("MTERM2026-000001", "wei.tan@example.com")
	reg.Addons.Dinner = true

	stored, err := pg.StoreRegistration(ctx, reg, "$2a$10$hash")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.Equal(t, "MTERM2026-000001", stored.RegCode)
	require.Equal(t, "wei.tan@example.com", stored.Personal.Email)
	require.True(t, stored.Addons.Dinner)
	require.Equal(t, reg.PricingSnapshot, stored.PricingSnapshot)
	require.False(t, stored.CreatedAt.IsZero())

	byID, err := pg.RegistrationByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, stored.RegCode, byID.RegCode)

	byPair, err := pg.RegistrationByCodeAndEmail(ctx, " MTERM2026-000001 ", " Wei.Tan@Example.com")
	require.NoError(t, err)
	require.NotNil(t, byPair)
	require.Equal(t, stored.ID, byPair.ID)

	missing, err := pg.RegistrationByCodeAndEmail(ctx, "MTERM2026-000001", "someone@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_StoreRegistration_DuplicateEmail(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	_, err := pg.StoreRegistration(ctx, newRegistration("MTERM2026-000001", "dup@example.com"), "")
	require.NoError(t, err)

	_, err = pg.StoreRegistration(ctx, newRegistration("MTERM2026-000002", "dup@example.com"), "")
	require.ErrorIs(t, err, storage.ErrDuplicateEmail)
}

func TestPgSQL_RegistrationCredential(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	_, err := pg.StoreRegistration(ctx, newRegistration("MTERM2026-000001", "with@example.com"), "$2a$10$hash")
	require.NoError(t, err)
	_, err = pg.StoreRegistration(ctx, newRegistration("MTERM2026-000002", "without@example.com"), "")
	require.NoError(t, err)

	cred, err := pg.RegistrationCredential(ctx, "WITH@example.com")
	require.NoError(t, err)
	require.Equal(t, "$2a$10$hash", cred.PasswordHash)
	require.Equal(t, "MTERM2026-000001", cred.RegCode)

	cred, err = pg.RegistrationCredential(ctx, "without@example.com")
	require.NoError(t, err)
	require.Empty(t, cred.PasswordHash)

	cred, err = pg.RegistrationCredential(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, cred)
}

func TestPgSQL_UpdateRegistration_KeepsIdentityAndSnapshot(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	stored, err := pg.StoreRegistration(ctx, newRegistration("MTERM2026-000001", "wei.tan@example.com"), "")
	require.NoError(t, err)

	changed := *stored
	changed.RegCode = "MTERM2026-999999"
	changed.Personal.Email = "other@example.com"
	changed.PricingSnapshot.Total = 1
	changed.Address.City = "George Town"
	changed.Payment.Status = domain.PaymentPaid

	var updated *domain.Registration
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		locked, err := s.LockRegistration(ctx, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, locked)

		updated, err = s.UpdateRegistration(ctx, changed)

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)

	require.Equal(t, "George Town", updated.Address.City)
	require.Equal(t, domain.PaymentPaid, updated.Payment.Status)
	require.Equal(t, "MTERM2026-000001", updated.RegCode)
	require.Equal(t, "wei.tan@example.com", updated.Personal.Email)
	require.Equal(t, stored.PricingSnapshot, updated.PricingSnapshot)
	require.Equal(t, stored.CreatedAt, updated.CreatedAt)

	gone, err := pg.UpdateRegistration(ctx, domain.Registration{ID: domain.RegistrationID(uuid.New())})
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestPgSQL_RegistrationsByEmailAndSearch(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		reg := newRegistration(fmt.Sprintf("MTERM2026-%06d", i), fmt.Sprintf("user%d@example.com", i))
		if i == 3 {
			reg.Professional.Affiliation = "100%_Labs"
		}
		_, err := pg.StoreRegistration(ctx, reg, "")
		require.NoError(t, err)
	}

	rows, err := pg.RegistrationsByEmail(ctx, "USER2@example.com")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "MTERM2026-000002", rows[0].RegCode)

	all, err := pg.SearchRegistrations(ctx, "", 0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(5), all.Total)
	require.Len(t, all.Rows, 2)
	require.Equal(t, "MTERM2026-000005", all.Rows[0].RegCode)

	last, err := pg.SearchRegistrations(ctx, "  ", 4, 2)
	require.NoError(t, err)
	require.Len(t, last.Rows, 1)
	require.Equal(t, "MTERM2026-000001", last.Rows[0].RegCode)

	// LIKE metacharacters match literally
	labs, err := pg.SearchRegistrations(ctx, "0%_l", 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), labs.Total)
	require.Equal(t, "MTERM2026-000003", labs.Rows[0].RegCode)

	byName, err := pg.SearchRegistrations(ctx, "wei", 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(5), byName.Total)

	none, err := pg.SearchRegistrations(ctx, "nobody", 0, 10)
	require.NoError(t, err)
	require.Zero(t, none.Total)
	require.Empty(t, none.Rows)
}
