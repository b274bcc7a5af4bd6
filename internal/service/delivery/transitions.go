package delivery

import (
	"waterboys/internal/entities"
)

// Action - запрошенный агентом переход жизненного цикла заказа.
type Action string

const (
	ActionTake     Action = "take"
	ActionValidate Action = "validate"
	ActionCancel   Action = "cancel"
)

func (a Action) String() string {
	return string(a)
}

// Decide решает, разрешен ли переход (order, actingUserID, action), и каким
// должен быть следующий статус. Чистая функция без побочных эффектов: сервис
// вызывает ее внутри транзакции перед записью, хендлеры - для маппинга ошибок.
//
// Матрица переходов:
//
//	pending    --take-->     processing (userId := actingUserID)
//	processing --validate--> delivered  (только назначенный агент)
//	processing --cancel-->   cancelled  (только назначенный агент, userId сохраняется)
//
// delivered и cancelled терминальны: любое действие над ними отклоняется.
func Decide(order *entities.Order, actingUserID string, action Action) (entities.OrderStatusType, error) {
	if order == nil {
		return "", ErrOrderNotFound
	}

	if order.Status.Terminal() {
		return "", ErrInvalidTransition
	}

	switch action {
	case ActionTake:
		if order.Assigned() {
			return "", ErrUnauthorized
		}
		if order.Status != entities.OrderPending {
			return "", ErrInvalidTransition
		}
		return entities.OrderProcessing, nil

	case ActionValidate, ActionCancel:
		if order.Status != entities.OrderProcessing {
			return "", ErrInvalidTransition
		}
		if order.UserID != actingUserID {
			return "", ErrUnauthorized
		}
		if action == ActionValidate {
			return entities.OrderDelivered, nil
		}
		return entities.OrderCancelled, nil

	default:
		return "", ErrInvalidTransition
	}
}
