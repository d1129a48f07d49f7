package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

func signToken(t *testing.T, secret string, adminID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotAdminID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdminID, _ = GetAdminID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/room-types", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	Auth(testSecret, nopLogger{})(next).ServeHTTP(rec, req)
	return rec, gotAdminID
}

func TestAuth(t *testing.T) {
	t.Run("valid token passes and exposes admin id", func(t *testing.T) {
		rec, adminID := runAuth(t, "Bearer "+signToken(t, testSecret, "admin-7"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin-7", adminID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		rec, _ := runAuth(t, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme is rejected", func(t *testing.T) {
		rec, _ := runAuth(t, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		rec, _ := runAuth(t, "Bearer "+signToken(t, "other-secret", "admin-7"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{
			AdminID: "admin-7",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		rec, _ := runAuth(t, "Bearer "+signed)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetAdminIDWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetAdminID(req.Context())
	assert.False(t, ok)
}
