package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the credentialed cookie every authenticated call rides on.
const SessionCookieName = "session_token"

// SessionTTL matches the provider's session lifetime.
const SessionTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueSessionToken wraps a server session ID in a signed token for the
// cookie. The token carries nothing but the reference; the session row in the
// DB stays authoritative.
func IssueSessionToken(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": expiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(jwtSecret())
}

// ParseSessionToken validates the cookie value and returns the session ID.
func ParseSessionToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}
