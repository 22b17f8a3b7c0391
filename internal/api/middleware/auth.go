// Package middleware HTTP middleware: аутентификация и метрики.
// Аутентификацию выполняет API gateway, сюда запрос приходит уже
// с заголовками X-User-ID и X-User-Role.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "userRole"

	// RoleAdmin роль администратора салона
	RoleAdmin = "admin"
)

const (
	msgMissingUserID = "требуется аутентификация"
	msgInvalidUserID = "некорректный ID пользователя"
	msgAdminOnly     = "требуются права администратора"
)

// Auth проверяет наличие X-User-ID и кладет идентификатор и роль в context
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, r.Header.Get("X-User-Role"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только запросы с ролью администратора.
// Используется после Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RoleFromContext(r.Context()) != RoleAdmin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// RoleFromContext возвращает роль пользователя
func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}
