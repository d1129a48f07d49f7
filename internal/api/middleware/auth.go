package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
)

const (
	msgMissingToken = "требуется токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// adminClaims полезная нагрузка админского токена
type adminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// Auth проверяет Bearer-токен и кладет идентификатор администратора в контекст
func Auth(secret string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn("Auth: missing bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims := &adminClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !parsed.Valid {
				logger.Warn("Auth: invalid token: %s %s, error=%v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, claims.AdminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminID возвращает идентификатор администратора из контекста запроса
func GetAdminID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminIDKey).(string)
	return id, ok && id != ""
}
