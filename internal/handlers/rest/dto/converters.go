package dto

import "waterboys/internal/entities"

func NewOrder(o *entities.Order) Order {
	return Order{
		ID:                o.ID,
		OrderID:           o.OrderID,
		Status:            o.Status.String(),
		Quantity:          o.Quantity,
		Price:             o.Price,
		ClientName:        o.ClientName,
		ClientAddress:     o.ClientAddress,
		ClientPhoneNumber: o.ClientPhoneNumber,
		ClientDescription: o.ClientDescription,
		UserID:            o.UserID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func NewOrderList(orders []entities.Order) []Order {
	result := make([]Order, len(orders))
	for i := range orders {
		result[i] = NewOrder(&orders[i])
	}
	return result
}

func NewUser(u *entities.User, token string) *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Tel:       u.Tel,
		Image:     u.Image,
		Role:      u.Role.String(),
		Token:     token,
		CreatedAt: u.CreatedAt,
	}
}
