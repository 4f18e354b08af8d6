package v1handler

import (
	"context"
	"errors"
	"net/http"
	"registrar/pkg/logger"
	"registrar/pkg/serrors"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
	// Field names the offending input for validation errors.
	Field string `json:"field,omitempty"`
}

type errorMapping struct {
	status  int
	message string
	// expose reports whether the error's own message may reach the client.
	expose bool
}

var errorMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request", true},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized", true},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden", true},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found", true},
	serrors.ErrConflict:     {http.StatusConflict, "conflict", true},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests", true},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out", false},
	serrors.ErrUnavailable:  {http.StatusInternalServerError, "internal error", false},
	serrors.ErrInternal:     {http.StatusInternalServerError, "internal error", false},
}

// NewError translates err into an HTTP status and a client-safe body. Server
// side failures are logged with their cause and answered with a fixed message.
func (h *Handler) NewError(ctx context.Context, err error) (int, ErrorResponse) {
	kind := serrors.KindOf(err)
	mapping, ok := errorMappings[kind]
	if !ok {
		kind = serrors.ErrInternal
		mapping = errorMappings[kind]
	}

	res := ErrorResponse{Code: kind.Error(), Message: mapping.message}
	if mapping.status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))

		return mapping.status, res
	}

	var se *serrors.Error
	if mapping.expose && errors.As(err, &se) {
		if se.Message() != "" {
			res.Message = se.Message()
		}
		res.Field = se.Field()
	}

	return mapping.status, res
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, res := h.NewError(r.Context(), err)
	writeJSON(w, status, res)
}
