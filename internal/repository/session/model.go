package session

import (
	"time"

	"waterboys/internal/entities"
)

type SessionDB struct {
	Token     string    `json:"token"`
	User      UserDB    `json:"user"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UserDB struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Tel       string    `json:"tel,omitempty"`
	Image     string    `json:"image,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDomain(s *entities.Session) *SessionDB {
	if s == nil {
		return nil
	}
	return &SessionDB{
		Token: s.Token,
		User: UserDB{
			ID:        s.User.ID,
			Email:     s.User.Email,
			Name:      s.User.Name,
			Tel:       s.User.Tel,
			Image:     s.User.Image,
			Role:      s.User.Role.String(),
			CreatedAt: s.User.CreatedAt,
		},
		IssuedAt:  s.IssuedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func ToDomain(s *SessionDB) *entities.Session {
	if s == nil {
		return nil
	}
	return &entities.Session{
		Token: s.Token,
		User: entities.User{
			ID:        s.User.ID,
			Email:     s.User.Email,
			Name:      s.User.Name,
			Tel:       s.User.Tel,
			Image:     s.User.Image,
			Role:      entities.UserRoleType(s.User.Role),
			CreatedAt: s.User.CreatedAt,
		},
		IssuedAt:  s.IssuedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
