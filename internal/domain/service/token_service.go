package service

import "github.com/golang-jwt/jwt/v5"

// TokenService validates bearer tokens minted by the external identity
// provider. Registration and login flows live entirely in that provider;
// the storefront only checks signatures and reads claims.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
