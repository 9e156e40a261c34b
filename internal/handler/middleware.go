package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
	"github.com/google/uuid"
)

type ctxKey int

const userCtxKey ctxKey = iota

// UserFromContext достаёт аутентифицированного пользователя из контекста запроса.
// Возвращает nil, если запрос прошёл мимо Authenticate.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userCtxKey).(*domain.User)
	return user
}

// Authenticate — middleware, проверяющее bearer-токен и кладущее
// владельца токена в контекст запроса. Отсутствующий, битый или
// просроченный токен даёт единый ответ 401.
func Authenticate(authUseCase usecase.AuthUseCase, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated", logger)
				return
			}

			user, err := authUseCase.Authenticate(r.Context(), token)
			if err != nil {
				logger.Warn("bearer token rejected", "error", err)
				respondWithError(w, http.StatusUnauthorized, "Not authenticated", logger)
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger — middleware для логирования HTTP-запросов.
// Каждому запросу присваивается request_id для связывания записей в логах.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()

			// Оборачиваем ResponseWriter, чтобы знать статус
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger.Info("http request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// responseWriter нужен, чтобы перехватывать код ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
