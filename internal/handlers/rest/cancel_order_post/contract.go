//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cancel_order_post_test
package cancel_order_post

import (
	"context"

	"waterboys/internal/entities"
	"waterboys/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CancelOrder(ctx context.Context, orderID, actingUserID string) (*entities.Order, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}
