// Package auth verifies bearer tokens issued by the external identity
// provider. The storefront never mints tokens itself, so this service is
// validation-only.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"storefront/config"
	"storefront/internal/domain/service"
)

// jwtService validates HS256-signed tokens against a shared secret.
type jwtService struct {
	requireExpiry bool
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{requireExpiry: true}, nil
}

// ValidateToken checks the validity of a token string against a secret.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if s.requireExpiry {
		options = append(options, jwt.WithExpirationRequired())
	}

	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, options...)
}
