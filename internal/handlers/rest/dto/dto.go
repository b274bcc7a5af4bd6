// Package dto описывает JSON-контракт REST API,
// как его ожидает мобильный клиент.
package dto

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Tel       string    `json:"tel,omitempty"`
	Image     string    `json:"image,omitempty"`
	Role      string    `json:"role"`
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Order struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"orderId"`
	Status            string    `json:"status"`
	Quantity          *float64  `json:"quantity,omitempty"`
	Price             *float64  `json:"price,omitempty"`
	ClientName        string    `json:"clientName"`
	ClientAddress     string    `json:"clientAddress"`
	ClientPhoneNumber string    `json:"clientPhoneNumber"`
	ClientDescription *string   `json:"clientDescription,omitempty"`
	UserID            string    `json:"userId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

type LogoutResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
}

type OrderActionRequest struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

type OrderActionResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
	Order   *Order `json:"order,omitempty"`
}

type MyDeliveryResponse struct {
	Error   bool    `json:"error"`
	Message string  `json:"message,omitempty"`
	Orders  []Order `json:"orders"`
}

type StatsResponse struct {
	TotalLiters    float64 `json:"totalLiters"`
	TotalRevenue   float64 `json:"totalRevenue"`
	DeliveredCount int     `json:"deliveredCount"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
