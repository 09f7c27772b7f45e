package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/authservice"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
)

type identityContextKey struct{}

// TokenValidator интерфейс проверки токена во внешнем сервисе авторизации
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*authservice.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer-токен и кладёт identity бизнеса в контекст запроса
func Auth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, authservice.ErrInvalidToken) {
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("Auth: ошибка проверки токена: %v", err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext извлекает identity бизнеса из контекста
func IdentityFromContext(ctx context.Context) (*authservice.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(*authservice.Identity)
	return identity, ok
}

// BusinessIDFromContext извлекает ID авторизованного бизнеса из контекста
func BusinessIDFromContext(ctx context.Context) (int64, bool) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return 0, false
	}
	return identity.BusinessID, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
