package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"waterboys/internal/entities"
	"waterboys/internal/service/auth"
)

const keyPrefix = "session:"

// Store хранит одну сессию на пользователя под ключом session:<user_id>.
// Save перезаписывает ключ, поэтому повторный логин отзывает старый токен.
type Store struct {
	client *redis.Client
}

func New(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

func (s *Store) Save(ctx context.Context, session entities.Session) error {
	payload, err := json.Marshal(FromDomain(&session))
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired at %s", session.ExpiresAt)
	}

	err = s.client.Set(ctx, keyPrefix+session.User.ID, payload, ttl).Err()
	if err != nil {
		return fmt.Errorf("unexpected session store save error: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, userID string) (*entities.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, auth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected session store get error: %w", err)
	}

	var sessionModel SessionDB
	if err := json.Unmarshal(payload, &sessionModel); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return ToDomain(&sessionModel), nil
}

func (s *Store) Delete(ctx context.Context, userID string) error {
	err := s.client.Del(ctx, keyPrefix+userID).Err()
	if err != nil {
		return fmt.Errorf("unexpected session store delete error: %w", err)
	}
	return nil
}
