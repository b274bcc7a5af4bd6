package entities

import "time"

// Order представляет одну заявку на доставку воды.
// UserID пустой тогда и только тогда, когда Status == pending.
type Order struct {
	ID                string
	OrderID           string
	Status            OrderStatusType
	Quantity          *float64
	Price             *float64
	ClientName        string
	ClientAddress     string
	ClientPhoneNumber string
	ClientDescription *string
	UserID            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (o *Order) Assigned() bool {
	return o.UserID != ""
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal сообщает, допускает ли статус дальнейшие переходы.
func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// OrderPrecondition - состояние заказа, при котором запись перехода
// разрешена. Обновление, не нашедшее строку в этом состоянии, проиграло
// гонку конкурирующей записи.
type OrderPrecondition struct {
	Status OrderStatusType
	UserID string // "" - заказ должен быть свободен
}

type OrderModify struct {
	ID                *string
	OrderID           *string
	Status            *OrderStatusType
	Quantity          *float64
	Price             *float64
	ClientName        *string
	ClientAddress     *string
	ClientPhoneNumber *string
	ClientDescription *string
	UserID            *string
}
