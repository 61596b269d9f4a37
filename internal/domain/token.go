package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Token string

func (t Token) String() string {
	return string(t)
}

// IsExpired reports whether the token must be replaced. Tokens without an
// exp claim never expire; tokens that cannot be decoded always do.
func (t Token) IsExpired(now time.Time) bool {
	expiresAt, ok, err := t.ExpiresAt()
	if err != nil {
		return true
	}
	if !ok {
		return false
	}

	return now.After(expiresAt)
}

// ExpiresAt decodes the exp claim from the payload segment alone. The
// signature and header are never inspected.
func (t Token) ExpiresAt() (time.Time, bool, error) {
	parts := strings.Split(strings.TrimSpace(string(t)), ".")
	if len(parts) != 3 {
		return time.Time{}, false, fmt.Errorf("%w: token has %d segments", jwt.ErrTokenMalformed, len(parts))
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: decode claims segment: %w", jwt.ErrTokenMalformed, err)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, false, fmt.Errorf("%w: decode claims: %w", jwt.ErrTokenMalformed, err)
	}
	if claims == nil {
		return time.Time{}, false, fmt.Errorf("%w: claims are not an object", jwt.ErrTokenMalformed)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, err
	}
	if exp == nil {
		return time.Time{}, false, nil
	}

	return exp.Time, true, nil
}

type CachedToken struct {
	UserID UserID
	Token  Token
}
