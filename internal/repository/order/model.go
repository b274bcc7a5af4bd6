package order

import "time"

type OrderDB struct {
	ID                string
	OrderID           string
	Status            string
	Quantity          *float64
	Price             *float64
	ClientName        string
	ClientAddress     string
	ClientPhoneNumber string
	ClientDescription *string
	UserID            *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderModifyDB struct {
	ID                *string
	OrderID           *string
	Status            *string
	Quantity          *float64
	Price             *float64
	ClientName        *string
	ClientAddress     *string
	ClientPhoneNumber *string
	ClientDescription *string
	UserID            *string
}
