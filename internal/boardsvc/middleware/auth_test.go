package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/token"
)

const testSecret = "middleware-test-secret"

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "extra internal whitespace", header: "Bearer   abc.def.ghi", want: "abc.def.ghi"},
		{name: "trailing whitespace", header: "Bearer abc.def.ghi  ", want: "abc.def.ghi"},
		{name: "absent header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Token abc", wantErr: true},
		{name: "lowercase scheme", header: "bearer abc", wantErr: true},
		{name: "prefix only", header: "Bearer", wantErr: true},
		{name: "prefix and whitespace only", header: "Bearer    ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			raw, err := bearerToken(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrMissingBearerToken)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, raw)
		})
	}
}

func TestAuthenticator(t *testing.T) {
	codec := token.New([]byte(testSecret))

	tok, err := codec.Issue(42, "ada@example.com")
	require.NoError(t, err)

	var gotClaims *token.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticator(codec)(next)

	t.Run("valid token with extra whitespace", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer   "+tok)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, int64(42), gotClaims.Sub)
		assert.Equal(t, "ada@example.com", gotClaims.Email)
	})

	t.Run("missing header short-circuits", func(t *testing.T) {
		gotClaims = nil
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "MISSING_BEARER_TOKEN", errorCode(t, w))
		assert.Nil(t, gotClaims)
	})

	t.Run("invalid token short-circuits", func(t *testing.T) {
		gotClaims = nil
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, w))
		assert.Nil(t, gotClaims)
	})

	t.Run("expired token short-circuits", func(t *testing.T) {
		gotClaims = nil
		expired := signedWith(t, []byte(testSecret), &token.Claims{
			Sub:   42,
			Email: "ada@example.com",
			Exp:   time.Now().Add(-time.Minute).Unix(),
		})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+expired)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, w))
		assert.Nil(t, gotClaims)
	})
}

func TestUnverifiedClaims(t *testing.T) {
	codec := token.New([]byte(testSecret))

	var gotClaims *token.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := UnverifiedClaims(codec)(next)

	t.Run("stale token is still identified", func(t *testing.T) {
		expired := signedWith(t, []byte("another-secret"), &token.Claims{
			Sub:   7,
			Email: "stale@example.com",
			Exp:   time.Now().Add(-time.Hour).Unix(),
		})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+expired)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, int64(7), gotClaims.Sub)
	})

	t.Run("malformed token fails", func(t *testing.T) {
		gotClaims = nil
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, w))
		assert.Nil(t, gotClaims)
	})
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp apperr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func signedWith(t *testing.T, secret []byte, claims *token.Claims) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(secret)
	require.NoError(t, err)

	return signed
}
