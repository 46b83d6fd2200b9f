// Package auth issues and verifies the signed tokens used for session
// identification and password resets.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures callers can match with errors.Is.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Reset tokens are deliberately short-lived.
const resetTokenTTL = 15 * time.Minute

// Distinct purpose claims keep a session token from being replayed as a
// password reset token and vice versa.
const (
	purposeSession = "session"
	purposeReset   = "password_reset"
)

type claims struct {
	Email   string `json:"email,omitempty"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 tokens with a shared secret.
type TokenIssuer struct {
	secret     []byte
	sessionTTL time.Duration
}

// NewTokenIssuer constructs an issuer for the given secret and session TTL.
func NewTokenIssuer(secret string, sessionTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), sessionTTL: sessionTTL}
}

// SessionClaims is the identity carried by a verified session token.
type SessionClaims struct {
	UserID string
	Email  string
}

// IssueSession signs a session token for the given user.
func (t *TokenIssuer) IssueSession(userID, email string) (string, error) {
	return t.sign(claims{
		Email:   email,
		Purpose: purposeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.sessionTTL)),
		},
	})
}

// IssueReset signs a short-lived password reset token.
func (t *TokenIssuer) IssueReset(userID string) (string, error) {
	return t.sign(claims{
		Purpose: purposeReset,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(resetTokenTTL)),
		},
	})
}

// VerifySession parses a session token and returns the embedded identity.
func (t *TokenIssuer) VerifySession(token string) (SessionClaims, error) {
	c, err := t.verify(token, purposeSession)
	if err != nil {
		return SessionClaims{}, err
	}
	return SessionClaims{UserID: c.Subject, Email: c.Email}, nil
}

// VerifyReset parses a reset token and returns the user id it was issued for.
func (t *TokenIssuer) VerifyReset(token string) (string, error) {
	c, err := t.verify(token, purposeReset)
	if err != nil {
		return "", err
	}
	return c.Subject, nil
}

func (t *TokenIssuer) sign(c claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *TokenIssuer) verify(token, purpose string) (*claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrTokenExpired
	}
	if err != nil {
		return nil, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Subject == "" || c.Purpose != purpose {
		return nil, ErrInvalidToken
	}
	return c, nil
}
