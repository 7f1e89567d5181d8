// agriassist/middlewares/auth.go
package middlewares

import (
	"context"
	"net/http"
	"strings"

	"agriassist/agriassist/config"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const AdminKey contextKey = "admin"

const RoleAdmin = "admin"

// AdminFromContext returns the username stored by AuthMiddleware.
func AdminFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(AdminKey).(string)
	return name, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`))
}

func AuthMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				unauthorized(w)
				return
			}
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w)
				return
			}
			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.Auth.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w)
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w)
				return
			}
			if role, _ := claims["role"].(string); role != RoleAdmin {
				unauthorized(w)
				return
			}
			sub, _ := claims["sub"].(string)
			ctx := context.WithValue(r.Context(), AdminKey, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
