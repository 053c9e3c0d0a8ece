package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
)

const testSecret = "test-signing-secret"

func TestIssueAndVerify(t *testing.T) {
	codec := New([]byte(testSecret))

	tok, err := codec.Issue(42, "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := codec.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.Sub)
	assert.Equal(t, "ada@example.com", claims.Email)

	wantExp := time.Now().Add(TTL).Unix()
	assert.InDelta(t, wantExp, claims.Exp, 5)
}

func TestIssueWithoutSecret(t *testing.T) {
	codec := New(nil)

	_, err := codec.Issue(1, "ada@example.com")
	assert.ErrorIs(t, err, apperr.ErrConfiguration)

	_, err = codec.Verify("whatever")
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}

func TestVerifyTamperedToken(t *testing.T) {
	codec := New([]byte(testSecret))

	tok, err := codec.Issue(7, "bob@example.com")
	require.NoError(t, err)

	// flip one byte of the signature segment
	tampered := []byte(tok)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = codec.Verify(string(tampered))
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	codec := New([]byte(testSecret))
	other := New([]byte("a-different-secret"))

	tok, err := other.Issue(7, "bob@example.com")
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	codec := New([]byte(testSecret))

	tok := signedToken(t, &Claims{Sub: 7, Email: "bob@example.com", Exp: time.Now().Add(-time.Minute).Unix()})

	_, err := codec.Verify(tok)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	codec := New([]byte(testSecret))

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := codec.Verify(tok)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken, "token %q", tok)
	}
}

func TestDecodeUnverified(t *testing.T) {
	codec := New([]byte(testSecret))

	// expired and signed with a key this codec does not hold
	expired := signedWith(t, []byte("somebody-elses-secret"), &Claims{
		Sub:   99,
		Email: "stale@example.com",
		Exp:   time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := codec.DecodeUnverified(expired)
	require.NoError(t, err)
	assert.Equal(t, int64(99), claims.Sub)
	assert.Equal(t, "stale@example.com", claims.Email)

	_, err = codec.DecodeUnverified("not-a-token")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestClaimsPayloadShape(t *testing.T) {
	codec := New([]byte(testSecret))

	tok, err := codec.Issue(3, "ada@example.com")
	require.NoError(t, err)

	// three dot separated segments
	assert.Len(t, strings.Split(tok, "."), 3)
}

func signedToken(t *testing.T, claims *Claims) string {
	t.Helper()
	return signedWith(t, []byte(testSecret), claims)
}

func signedWith(t *testing.T, secret []byte, claims *Claims) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(secret)
	require.NoError(t, err)

	return signed
}
