package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed session token. The
// client treats it as an opaque credential.
const SessionCookieName = "sessao"

// Claims represents the session token claims
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionService signs and validates the simulator's session cookie, the
// stand-in for the real backend's server-side session.
type SessionService interface {
	GenerateToken(userID int) (string, error)
	ValidateToken(tokenString string) (int, error)
	Expiry() time.Duration
}

type sessionService struct {
	config *config.SimulatorConfig
}

func NewSessionService(config *config.SimulatorConfig) SessionService {
	return &sessionService{config}
}

// GenerateToken creates a signed session token for a user
func (s *sessionService) GenerateToken(userID int) (string, error) {
	subject := strconv.Itoa(userID)
	claims := &Claims{
		UserID: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.Expiry())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "sistema-de-bilhetes",
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.SessionSecret))
}

// ValidateToken parses a session token and returns the user ID it carries
func (s *sessionService) ValidateToken(tokenStr string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.config.SessionSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, errors.New("token is invalid")
	}

	userID, err := strconv.Atoi(claims.UserID)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token: %w", err)
	}
	return userID, nil
}

// Expiry returns the configured session lifetime.
func (s *sessionService) Expiry() time.Duration {
	if s.config.SessionExpiry <= 0 {
		return 24 * time.Hour
	}
	return s.config.SessionExpiry
}
