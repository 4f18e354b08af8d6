package main

import (
	"context"
	"fmt"
	"registrar/internal/config"
	"registrar/pkg/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that issues an RS256 operator
// token for the admin endpoints.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issues an operator token for the admin API",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			operator, _ := cmd.Flags().GetString("operator")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			claims := jwt.RegisteredClaims{
				Subject:   operator,
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			logger.Info(ctx, "operator token issued", zap.String("operator", operator), zap.Time("expires_at", now.Add(ttl)))
			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("operator", "", "Operator name recorded as the token subject")
	cmd.Flags().Duration("ttl", 12*time.Hour, "Token TTL (e.g., 30m, 12h)")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}
