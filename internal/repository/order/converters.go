package order

import (
	"waterboys/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:                o.ID,
		OrderID:           o.OrderID,
		Status:            entities.OrderStatusType(o.Status),
		Quantity:          o.Quantity,
		Price:             o.Price,
		ClientName:        o.ClientName,
		ClientAddress:     o.ClientAddress,
		ClientPhoneNumber: o.ClientPhoneNumber,
		ClientDescription: o.ClientDescription,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	if o.UserID != nil {
		orderEntity.UserID = *o.UserID
	}
	return orderEntity
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{
		ID:                orderModify.ID,
		OrderID:           orderModify.OrderID,
		Quantity:          orderModify.Quantity,
		Price:             orderModify.Price,
		ClientName:        orderModify.ClientName,
		ClientAddress:     orderModify.ClientAddress,
		ClientPhoneNumber: orderModify.ClientPhoneNumber,
		ClientDescription: orderModify.ClientDescription,
		UserID:            orderModify.UserID,
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	return orderDB
}
