package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"waterboys/internal/entities"
	"waterboys/internal/service/auth"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetByEmail отдает пользователя вместе с хешем пароля.
// Несуществующий email не отличим снаружи от неверного пароля.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, string, error) {
	query := `
		SELECT id, email, password_hash, name, tel, image, role, created_at
		FROM users
		WHERE email = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email).Scan(
		&userModel.ID,
		&userModel.Email,
		&userModel.PasswordHash,
		&userModel.Name,
		&userModel.Tel,
		&userModel.Image,
		&userModel.Role,
		&userModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", auth.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), userModel.PasswordHash, nil
}
