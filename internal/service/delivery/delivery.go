package delivery

import (
	"context"
	"errors"
	"fmt"

	"waterboys/internal/entities"
)

// Количество попыток перехода при проигрыше гонки конкурирующей записи.
const transitionAttempts = 3

// Delivery выполняет переходы жизненного цикла заказа от имени агента.
// Решение о допустимости перехода принимает Decide, запись идет в
// serializable-транзакции, а UPDATE повторяет условия Decide в WHERE.
// Проигравший гонку получает ErrOrderConflict и повторяет попытку: на
// свежем чтении Decide возвращает ошибку по фактическому состоянию заказа.
type Delivery struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Delivery {
	return &Delivery{
		repository: repository,
		txManager:  txManager,
	}
}

// TakeOrder закрепляет pending-заказ за агентом и переводит его в processing.
func (d *Delivery) TakeOrder(ctx context.Context, orderID, actingUserID string) (*entities.Order, error) {
	return d.transition(ctx, orderID, actingUserID, ActionTake)
}

// ValidateOrder помечает processing-заказ агента как delivered.
func (d *Delivery) ValidateOrder(ctx context.Context, orderID, actingUserID string) (*entities.Order, error) {
	return d.transition(ctx, orderID, actingUserID, ActionValidate)
}

// CancelOrder переводит processing-заказ агента в cancelled.
// userId на заказе сохраняется для аудита.
func (d *Delivery) CancelOrder(ctx context.Context, orderID, actingUserID string) (*entities.Order, error) {
	return d.transition(ctx, orderID, actingUserID, ActionCancel)
}

func (d *Delivery) transition(ctx context.Context, orderID, actingUserID string, action Action) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(actingUserID) {
		return nil, ErrInvalidUserID
	}

	var updated *entities.Order
	var err error
	for attempt := 0; attempt < transitionAttempts; attempt++ {
		updated, err = d.tryTransition(ctx, orderID, actingUserID, action)
		if !errors.Is(err, ErrOrderConflict) {
			break
		}
	}
	return updated, err
}

func (d *Delivery) tryTransition(ctx context.Context, orderID, actingUserID string, action Action) (*entities.Order, error) {
	var updated *entities.Order
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		nextStatus, err := Decide(order, actingUserID, action)
		if err != nil {
			return err
		}

		orderModify := entities.OrderModify{
			ID:     &order.ID,
			Status: &nextStatus,
		}
		if action == ActionTake {
			orderModify.UserID = &actingUserID
		}

		// запись проходит только если заказ все еще в прочитанном состоянии
		precondition := entities.OrderPrecondition{
			Status: order.Status,
			UserID: order.UserID,
		}

		updated, err = d.repository.Update(ctx, orderModify, precondition)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
