package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"registrar/pkg/storage"
	"registrar/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func currentSequence(t *testing.T, db *sql.DB, key string) int64 {
	t.Helper()
	var seq int64
	err := db.QueryRowContext(context.Background(), `SELECT seq FROM counters WHERE key = $1`, key).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0
	}
	require.NoError(t, err)

	return seq
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsSequence(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	seq, err := txStorage.NextSequence(ctx, "reg2026")
	require.NoError(t, err)
	require.Equal(t, int64(1), seq)

	require.NoError(t, txStorage.Commit())
	require.Equal(t, int64(1), currentSequence(t, pg.DB.(*sql.DB), "reg2026"))
}

func TestPgSQL_Rollback_DiscardsSequence(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.NextSequence(ctx, "reg2026")
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())
	require.Equal(t, int64(0), currentSequence(t, pg.DB.(*sql.DB), "reg2026"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	db := pg.DB.(*sql.DB)

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.NextSequence(ctx, "committed")

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), currentSequence(t, db, "committed"))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.NextSequence(ctx, "rolled-back")

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, int64(0), currentSequence(t, db, "rolled-back"))
}
