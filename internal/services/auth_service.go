package services

import (
	"fmt"
	"time"

	"autoservice-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const StaffSubject = "staff"

type AuthService struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthService prefers STAFF_PASSWORD_HASH; a plain STAFF_PASSWORD is
// hashed once here so both paths compare through bcrypt.
func NewAuthService(cfg *config.Config) (*AuthService, error) {
	hash := []byte(cfg.StaffPasswordHash)
	if len(hash) == 0 {
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.StaffPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash staff password: %w", err)
		}
		hash = generated
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("STAFF_PASSWORD_HASH is not a bcrypt hash: %w", err)
	}

	ttl := cfg.JWTTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &AuthService{
		passwordHash: hash,
		secret:       []byte(cfg.JWTSecret),
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Login checks the staff password and issues a signed token.
func (s *AuthService) Login(password string) (string, time.Time, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  StaffSubject,
		"role": "staff",
		"iat":  issuedAt.Unix(),
		"exp":  expiresAt.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
