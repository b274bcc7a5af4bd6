package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"waterboys/internal/entities"
)

// Auth ведет жизненный цикл сессии: создается при логине, разрушается
// при логауте или по TTL. На пользователя живет ровно одна сессия -
// повторный логин вытесняет предыдущую.
type Auth struct {
	users    UserRepository
	sessions SessionStore
	tokens   TokenIssuer
}

func New(users UserRepository, sessions SessionStore, tokens TokenIssuer) *Auth {
	return &Auth{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Login проверяет учетные данные и выдает токен новой сессии.
// Пустые поля отклоняются до любого обращения к хранилищу.
func (a *Auth) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	if isEmptyString(email) || isEmptyString(password) {
		return nil, "", ErrMissingRequiredFields
	}

	user, passwordHash, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token, expiresAt, err := a.tokens.Issue(user.ID, now)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	session := entities.Session{
		Token:     token,
		User:      *user,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}
	if err := a.sessions.Save(ctx, session); err != nil {
		return nil, "", fmt.Errorf("save session: %w", err)
	}

	return user, token, nil
}

// Authenticate находит живую сессию по токену.
// Токен более ранней сессии того же пользователя считается отозванным.
func (a *Auth) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	if isEmptyString(token) {
		return nil, ErrInvalidToken
	}

	userID, err := a.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	session, err := a.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Token != token {
		return nil, ErrSessionNotFound
	}

	user := session.User
	return &user, nil
}

// Logout разрушает сессию, которой принадлежит токен.
func (a *Auth) Logout(ctx context.Context, token string) error {
	user, err := a.Authenticate(ctx, token)
	if err != nil {
		return err
	}

	if err := a.sessions.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
