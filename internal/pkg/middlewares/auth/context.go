package auth

import (
	"context"

	"waterboys/internal/entities"
)

func WithUser(ctx context.Context, user *entities.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext достает пользователя, положенного Middleware.
// Вне защищенных маршрутов возвращает false.
func UserFromContext(ctx context.Context) (*entities.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entities.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
