package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenSecret is used when no JWT secret is configured.
const DefaultTokenSecret = "dev-secret-change-in-production"

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken creates a signed admin token for subject that expires after ttl.
func GenerateToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		secret = DefaultTokenSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a token string and returns its subject.
func ValidateToken(secret, tokenString string) (string, error) {
	if secret == "" {
		secret = DefaultTokenSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}
