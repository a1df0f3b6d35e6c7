package services

import (
	"errors"
	"os"

	"github.com/Techlead-ANKAN/WeightTracker/utils"
)

// ErrBadCredentials is returned for any failed login attempt.
var ErrBadCredentials = errors.New("invalid password")

// AuthService authenticates the single configured account and issues
// session tokens. Set ADMIN_PASSWORD_HASH to a bcrypt hash, or
// ADMIN_PASSWORD for local development (hashed at startup).
type AuthService struct {
	passwordHash string
}

func NewAuthService() (*AuthService, error) {
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		plain := os.Getenv("ADMIN_PASSWORD")
		if plain == "" {
			return nil, errors.New("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
		}
		h, err := utils.HashPassword(plain)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	return &AuthService{passwordHash: hash}, nil
}

// Authenticate checks the password and returns a signed session token.
func (s *AuthService) Authenticate(password string) (string, error) {
	if password == "" || !utils.CheckPasswordHash(password, s.passwordHash) {
		return "", ErrBadCredentials
	}
	return utils.GenerateJWT("admin")
}
