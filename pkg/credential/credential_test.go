package credential_test

import (
	"registrar/pkg/credential"
	"registrar/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := credential.Hash("s3cret!", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotContains(t, hash, "s3cret!")

	require.NoError(t, credential.Verify("s3cret!", hash))
	require.ErrorIs(t, credential.Verify("wrong", hash), credential.ErrMismatch)
}

func TestHash_IsSalted(t *testing.T) {
	a, err := credential.Hash("same", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := credential.Hash("same", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestHash_Rejects(t *testing.T) {
	_, err := credential.Hash("", bcrypt.MinCost)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = credential.Hash(strings.Repeat("x", 80), bcrypt.MinCost)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestVerify_EmptyHash(t *testing.T) {
	require.ErrorIs(t, credential.Verify("anything", ""), credential.ErrMismatch)
}

func TestNewToken(t *testing.T) {
	a, err := credential.NewToken()
	require.NoError(t, err)
	b, err := credential.NewToken()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
	require.Len(t, a, 43)
}
