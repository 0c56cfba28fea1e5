// Package auth verifies the bearer tokens that authenticate API callers.
// Tokens are HS256 JWTs carrying the user ID as subject plus a marketplace
// role. Token issuance normally happens in the identity service; Mint
// exists for bootstrapping and tests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role distinguishes the two sides of the marketplace.
type Role string

const (
	RoleClient  Role = "client"
	RoleCreator Role = "creator"
)

// Claims is the verified identity attached to a request.
type Claims struct {
	UserID string
	Role   Role
}

// ErrInvalidToken is returned for tokens that are malformed, expired,
// wrongly signed, or missing required claims.
var ErrInvalidToken = errors.New("invalid token")

// Verifier validates bearer tokens. The API layer depends on this
// interface so handlers stay testable without real tokens.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// JWTVerifier verifies and mints HS256 tokens with a shared secret.
type JWTVerifier struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTVerifier creates a verifier for the given shared secret. ttl
// bounds the lifetime of minted tokens.
func NewJWTVerifier(secret string, ttl time.Duration) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verify parses and validates a bearer token, returning its claims.
func (v *JWTVerifier) Verify(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	role := Role(claims.Role)
	if role != RoleClient && role != RoleCreator {
		return Claims{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return Claims{UserID: claims.Subject, Role: role}, nil
}

// Mint signs a token for the given user and role.
func (v *JWTVerifier) Mint(userID string, role Role) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
