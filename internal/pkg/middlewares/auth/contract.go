package auth

import (
	"context"

	"waterboys/internal/entities"
	"waterboys/pkg/logger"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
