package auth

import (
	"net/http"
	"strings"

	"waterboys/pkg/logger"
)

type contextKey struct{}

var userContextKey = contextKey{}

const bearerPrefix = "Bearer "

// Middleware пускает дальше только запросы с токеном живой сессии.
// Пользователь сессии кладется в контекст запроса.
func Middleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeUnauthorized(w)
				return
			}

			user, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("authentication failed")
				writeUnauthorized(w)
				return
			}

			ctx := WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"Valid session token is required."}`))
}
