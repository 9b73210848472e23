// Package auth implements the session token service: HS256 JWT issuance,
// validation against expiry and the revocation list, and bcrypt password
// hashing for the credential store.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/pizzeria/pkg/metrics"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken is returned for malformed, expired, or revoked tokens.
var ErrInvalidToken = errors.New("auth: invalid token")

// RoleClaim is one entry of the principal's role set as carried in the token.
// ObjectID scopes the role to a resource (franchisee → franchise ID); zero
// means the role is global.
type RoleClaim struct {
	Role     string `json:"role"`
	ObjectID uint   `json:"objectId,omitempty"`
}

// Claims holds the typed JWT payload.
type Claims struct {
	UserID uint        `json:"user_id"`
	Roles  []RoleClaim `json:"roles"`
	jwt.RegisteredClaims
}

// Tokens is the process-scoped token service. It owns the signing secret and
// the revocation list; validation is stateless apart from the revocation
// lookup, so a token remains verifiable without a user-record read.
type Tokens struct {
	secret  []byte
	ttl     time.Duration
	revoked RevocationList
}

// NewTokens builds a token service. Created once at startup; the revocation
// list decides whether logouts survive a restart (Redis) or not (memory).
func NewTokens(secret string, ttl time.Duration, revoked RevocationList) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, revoked: revoked}
}

// Issue creates a signed JWT carrying the user's id and role set.
func (t *Tokens) Issue(userID uint, roles []RoleClaim) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", err
	}

	metrics.TokensIssued.Inc()
	return signed, nil
}

// Validate parses and verifies a token string. A token is accepted iff it is
// well-formed, carries a valid signature, is unexpired, and is not on the
// revocation list.
func (t *Tokens) Validate(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if t.revoked.Contains(revocationKey(tokenStr)) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Revoke adds the token to the revocation list. Idempotent: revoking an
// already-revoked token is not an error, and the token stays invalid.
func (t *Tokens) Revoke(tokenStr string) error {
	ttl := t.ttl
	if claims, err := t.Validate(tokenStr); err == nil {
		// Keep the entry only as long as the token could still be replayed.
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}

	if err := t.revoked.Add(revocationKey(tokenStr), ttl); err != nil {
		return err
	}

	metrics.TokensRevoked.Inc()
	return nil
}

// revocationKey reduces a token to its signature segment so the revocation
// list stores a short unique key instead of the whole JWT.
func revocationKey(tokenStr string) string {
	if idx := strings.LastIndexByte(tokenStr, '.'); idx >= 0 && idx+1 < len(tokenStr) {
		return tokenStr[idx+1:]
	}
	return tokenStr
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
// bcrypt's comparison is constant-time.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
