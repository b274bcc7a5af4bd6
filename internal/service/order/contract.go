//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"waterboys/internal/entities"
)

type Repository interface {
	// GetVisible возвращает видимую агенту коллекцию целиком:
	// его собственные заказы плюс свободные pending.
	GetVisible(ctx context.Context, userID string) ([]entities.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	GetByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error)
	Upsert(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}
