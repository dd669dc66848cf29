package token

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, unsigned, mis-signed and expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity payload carried in a bearer token.
type Claims struct {
	Email string
}

// Service issues and verifies HMAC-signed bearer tokens. The token carries
// only the email claim; roles are looked up fresh per request so promotions
// take effect without re-issuing tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService reads the signing secret from ACCESS_TOKEN_SECRET.
func NewService() (*Service, error) {
	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is not set")
	}
	return NewServiceWithSecret([]byte(secret), time.Hour), nil
}

func NewServiceWithSecret(secret []byte, ttl time.Duration) *Service {
	return &Service{secret: secret, ttl: ttl}
}

// Issue signs a token carrying the user's email, valid for the service TTL.
func (s *Service) Issue(email string) (string, error) {
	if email == "" {
		return "", errors.New("email is required")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the embedded claims.
func (s *Service) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	email, ok := mapClaims["email"].(string)
	if !ok || email == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{Email: email}, nil
}
