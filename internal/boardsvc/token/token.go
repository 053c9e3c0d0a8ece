package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
)

// TTL is the absolute lifetime of an issued session token.
const TTL = 15 * time.Minute

// Claims is the payload of a session token.
type Claims struct {
	Sub   int64  `json:"sub"`
	Email string `json:"email"`
	Exp   int64  `json:"exp"`
}

func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.Exp, 0)), nil
}

func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error) { return nil, nil }

func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

func (c *Claims) GetIssuer() (string, error) { return "", nil }

func (c *Claims) GetSubject() (string, error) { return "", nil }

func (c *Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// Codec signs and verifies session tokens with a process-wide secret.
// The secret is injected once at construction and immutable after.
type Codec struct {
	secret []byte
}

func New(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// Issue creates a signed token for the user, expiring in TTL.
func (c *Codec) Issue(userId int64, email string) (string, error) {
	if len(c.secret) == 0 {
		return "", apperr.ErrConfiguration
	}

	claims := &Claims{
		Sub:   userId,
		Email: email,
		Exp:   time.Now().Add(TTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", apperr.Internal(err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of a token and returns its claims.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	if len(c.secret) == 0 {
		return nil, apperr.ErrConfiguration
	}

	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, apperr.ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, apperr.ErrInvalidToken
	}

	return claims, nil
}

// DecodeUnverified parses the token payload without checking the
// signature or expiry. The result identifies a caller, even a stale
// one, and must never be used to authorize mutation.
func (c *Codec) DecodeUnverified(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()

	tok, _, err := parser.ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, apperr.ErrInvalidToken
	}

	return claims, nil
}
