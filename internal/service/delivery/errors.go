package delivery

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidUserID  = errors.New("invalid user id")

	ErrOrderNotFound     = errors.New("order not found")
	ErrUnauthorized      = errors.New("user is not allowed to perform this action on the order")
	ErrInvalidTransition = errors.New("action is not applicable to the order status")

	// ErrOrderConflict: состояние заказа изменилось между чтением и записью,
	// конкурирующая транзакция выиграла гонку.
	ErrOrderConflict = errors.New("order was modified concurrently")
)
