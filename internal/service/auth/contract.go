//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"waterboys/internal/entities"
)

type UserRepository interface {
	// GetByEmail возвращает пользователя и bcrypt-хэш его пароля.
	GetByEmail(ctx context.Context, email string) (*entities.User, string, error)
}

// SessionStore хранит одну живую сессию на пользователя
// под фиксированным ключом по его id.
type SessionStore interface {
	Save(ctx context.Context, session entities.Session) error
	Get(ctx context.Context, userID string) (*entities.Session, error)
	Delete(ctx context.Context, userID string) error
}

type TokenIssuer interface {
	Issue(userID string, now time.Time) (token string, expiresAt time.Time, err error)
	Verify(token string) (userID string, err error)
}
