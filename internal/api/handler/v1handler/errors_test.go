package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"registrar/internal/api/handler/v1handler"
	"registrar/internal/attachment"
	"testing"

	"registrar/pkg/logger"
	"registrar/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	status, res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, 500, status)
	require.Equal(t, serrors.ErrInternal.Error(), res.Code)
	require.Equal(t, "internal error", res.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	status, res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, 404, status)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Code)
	require.Equal(t, "resource not found", res.Message)
}

func TestNewError_Validation_NamesField(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	status, res := h.NewError(context.Background(), serrors.Invalid("personal.email", "is required"))
	require.Equal(t, 400, status)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Code)
	require.Equal(t, "personal.email: is required", res.Message)
	require.Equal(t, "personal.email", res.Field)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	cause := errors.New("bad token")
	status, res := h.NewError(context.Background(), serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized"))
	require.Equal(t, 401, status)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Message)
}

func TestNewError_UploadRejection_FixedMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	err := fmt.Errorf("upload: %w",
		serrors.Wrap(serrors.ErrBadRequest, attachment.ErrInvalidFormat, "only PDF, PNG or JPEG files are accepted"))
	status, res := h.NewError(context.Background(), err)
	require.Equal(t, 400, status)
	require.Equal(t, "only PDF, PNG or JPEG files are accepted", res.Message)
}

func TestNewError_Conflict(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	status, res := h.NewError(context.Background(),
		serrors.Wrap(serrors.ErrConflict, errors.New("duplicate key"), "registration already exists"))
	require.Equal(t, 409, status)
	require.Equal(t, "registration already exists", res.Message)
}

func TestNewError_UnavailableHidesCause(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	status, res := h.NewError(context.Background(),
		serrors.Wrap(serrors.ErrUnavailable, errors.New("dial tcp 10.0.0.5:5432"), "could not load registration"))
	require.Equal(t, 500, status)
	require.Equal(t, "internal error", res.Message)
	require.Empty(t, res.Field)
}
