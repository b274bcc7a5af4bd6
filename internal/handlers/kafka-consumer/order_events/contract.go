package order_events

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
	ApplyOrderEvent(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}
