package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")

	ErrUndefinedStatus = errors.New("undefined order status")
	ErrUndefinedScope  = errors.New("undefined collection scope")
	// ErrAssignmentMismatch: pending-заказ с назначенным агентом или
	// не-pending без агента. Такие состояния в коллекцию не попадают.
	ErrAssignmentMismatch = errors.New("order status does not match its assignment")
)
