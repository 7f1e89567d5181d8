package middlewares

import (
	"agriassist/agriassist/config"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func protected() http.Handler {
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: secret}}
	return AuthMiddleware(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, _ := AdminFromContext(r.Context())
		w.Write([]byte(name))
	}))
}

func call(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/knowledge", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareAcceptsAdminToken(t *testing.T) {
	tok := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": "admin", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})

	rec := call(protected(), "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())
}

func TestAuthMiddlewareRejects(t *testing.T) {
	expired := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": "admin", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "admin", "role": "admin"})
	notAdmin := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "farmer", "role": "user"})
	unsigned := sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"sub": "admin", "role": "admin"})

	cases := map[string]string{
		"missing":   "",
		"malformed": "Token abc",
		"garbage":   "Bearer abc.def.ghi",
		"expired":   "Bearer " + expired,
		"wrong key": "Bearer " + wrongKey,
		"not admin": "Bearer " + notAdmin,
		"alg none":  "Bearer " + unsigned,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec := call(protected(), header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
		})
	}
}
