package order

import (
	"context"
	"fmt"

	"waterboys/internal/entities"
)

// Service отвечает за чтение коллекции заказов и за прием заказов,
// приходящих событиями из витрины. Коллекция - это кэш серверной правды:
// каждое чтение отдает ее целиком, без инкрементального слияния.
type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// ListOrders возвращает видимую агенту коллекцию, пропущенную через фильтры.
func (s *Service) ListOrders(ctx context.Context, userID string, filter Filter) ([]entities.Order, error) {
	if !isValidID(userID) {
		return nil, ErrInvalidUserID
	}
	if !filter.Scope.Known() {
		return nil, ErrUndefinedScope
	}

	orders, err := s.repository.GetVisible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get visible orders: %w", err)
	}

	filter.UserID = userID
	return Apply(orders, filter), nil
}

// AgentStats считает сводку по доставленным заказам агента.
func (s *Service) AgentStats(ctx context.Context, userID string) (DeliveredStats, error) {
	if !isValidID(userID) {
		return DeliveredStats{}, ErrInvalidUserID
	}

	orders, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return DeliveredStats{}, fmt.Errorf("get orders by user: %w", err)
	}

	return Summarize(orders), nil
}

// DeliveredTotals считает сводку по всем доставленным заказам сервиса.
// Используется фоновой задачей обновления метрик.
func (s *Service) DeliveredTotals(ctx context.Context) (DeliveredStats, error) {
	orders, err := s.repository.GetByStatus(ctx, entities.OrderDelivered)
	if err != nil {
		return DeliveredStats{}, fmt.Errorf("get delivered orders: %w", err)
	}

	return Summarize(orders), nil
}

// ApplyOrderEvent принимает заказ из события витрины и сохраняет его
// целиком (last-write-wins по строке заказа, без слияния полей).
func (s *Service) ApplyOrderEvent(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.OrderID == nil || orderModify.Status == nil ||
		orderModify.ClientName == nil || orderModify.ClientAddress == nil ||
		orderModify.ClientPhoneNumber == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidStatus(orderModify.Status.String()) {
		return nil, ErrUndefinedStatus
	}

	// пустая строка в userId означает "не назначен" и хранится как NULL
	if orderModify.UserID != nil && *orderModify.UserID == "" {
		orderModify.UserID = nil
	}

	// Инвариант коллекции: userId пуст тогда и только тогда, когда pending.
	assigned := orderModify.UserID != nil
	if (*orderModify.Status == entities.OrderPending) == assigned {
		return nil, ErrAssignmentMismatch
	}

	order, err := s.repository.Upsert(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("upsert order: %w", err)
	}
	return order, nil
}
