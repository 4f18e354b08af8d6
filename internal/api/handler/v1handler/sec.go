package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"registrar/internal/config"
	"registrar/pkg/logger"
	"registrar/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SecHandlerOptions configures operator authentication.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying operator tokens. When
	// empty every operator request is rejected.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler verifies RS256 bearer tokens issued to operators.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

type ctxKey string

// OperatorKey is the context key under which the authenticated operator
// (the token subject) is stored.
const OperatorKey ctxKey = "operator"

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth validates token and returns a context carrying the
// operator identity.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if s.publicKey == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "operator access is disabled")
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	return context.WithValue(ctx, OperatorKey, subject), nil
}

// RequireOperator rejects requests without a valid operator bearer token.
func (s *SecHandler) RequireOperator(h *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
			if err != nil {
				h.writeError(w, r, err)

				return
			}

			operator, _ := ctx.Value(OperatorKey).(string)
			ctx = logger.WithFields(ctx, zap.String("operator", operator))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
