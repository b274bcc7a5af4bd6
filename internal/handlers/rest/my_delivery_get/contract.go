//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=my_delivery_get_test
package my_delivery_get

import (
	"context"

	"waterboys/internal/entities"
	"waterboys/internal/service/order"
	"waterboys/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListOrders(ctx context.Context, userID string, filter order.Filter) ([]entities.Order, error)
}
