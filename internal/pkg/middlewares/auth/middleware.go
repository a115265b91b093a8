package auth

import (
	"context"
	"net/http"
	"strings"

	"service/internal/entities"
	"service/internal/handlers/rest/envelope"
	"service/pkg/logger"
)

type actorKey struct{}

const bearerPrefix = "Bearer "

// Middleware проверяет access-токен и кладет аккаунт в контекст запроса.
// Роль берется из базы, а не из claims: токен мог пережить смену роли.
func Middleware(log handlerLogger, parser TokenParser, accounts AccountReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				writeUnauthorized(log, w)
				return
			}

			claims, err := parser.ParseAccess(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				writeUnauthorized(log, w)
				return
			}

			actor, err := accounts.GetByID(r.Context(), claims.AccountID)
			if err != nil {
				writeUnauthorized(log, w)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithActor(r.Context(), *actor)))
		})
	}
}

// ContextWithActor кладет аккаунт в контекст запроса. Снаружи Middleware
// используется в тестах хендлеров.
func ContextWithActor(ctx context.Context, actor entities.Account) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext достает аккаунт, положенный Middleware.
func ActorFromContext(ctx context.Context) (entities.Account, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Account)
	return actor, ok
}

func writeUnauthorized(log handlerLogger, w http.ResponseWriter) {
	err := envelope.WriteError(w, http.StatusUnauthorized, "authentication required")
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
