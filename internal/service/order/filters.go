package order

import (
	"strings"

	"waterboys/internal/entities"
)

// Фильтры чистые и сохраняют порядок входной коллекции: один и тот же
// набор фильтров дает одинаковый результат у любого вызывающего.

// MyOrders возвращает заказы, закрепленные за агентом.
func MyOrders(orders []entities.Order, userID string) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result
}

// AvailableOrders возвращает свободные pending-заказы.
func AvailableOrders(orders []entities.Order) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == entities.OrderPending && !o.Assigned() {
			result = append(result, o)
		}
	}
	return result
}

// ProcessingOrders возвращает заказы агента в работе.
func ProcessingOrders(orders []entities.Order, userID string) []entities.Order {
	return ByStatus(MyOrders(orders, userID), entities.OrderProcessing)
}

// ByStatus фильтрует по точному статусу; пустой статус - wildcard.
func ByStatus(orders []entities.Order, status entities.OrderStatusType) []entities.Order {
	if status == "" {
		return orders
	}
	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			result = append(result, o)
		}
	}
	return result
}

// Search ищет подстроку без учета регистра в orderId, имени и адресе клиента.
// Пустой запрос совпадает со всем.
func Search(orders []entities.Order, text string) []entities.Order {
	if text == "" {
		return orders
	}
	needle := strings.ToLower(text)

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.OrderID), needle) ||
			strings.Contains(strings.ToLower(o.ClientName), needle) ||
			strings.Contains(strings.ToLower(o.ClientAddress), needle) {
			result = append(result, o)
		}
	}
	return result
}

// Scope - срез коллекции по принадлежности.
type Scope string

const (
	ScopeAll        Scope = ""
	ScopeMine       Scope = "mine"
	ScopeAvailable  Scope = "available"
	ScopeProcessing Scope = "processing"
)

// Known отличает поддерживаемый срез от опечатки в параметре запроса.
func (s Scope) Known() bool {
	switch s {
	case ScopeAll, ScopeMine, ScopeAvailable, ScopeProcessing:
		return true
	}
	return false
}

type Filter struct {
	Scope  Scope
	UserID string
	Status entities.OrderStatusType
	Query  string
}

// Apply применяет фильтры в фиксированном порядке:
// принадлежность, затем статус, затем текстовый поиск.
func Apply(orders []entities.Order, filter Filter) []entities.Order {
	result := orders
	switch filter.Scope {
	case ScopeMine:
		result = MyOrders(result, filter.UserID)
	case ScopeAvailable:
		result = AvailableOrders(result)
	case ScopeProcessing:
		result = ProcessingOrders(result, filter.UserID)
	case ScopeAll:
	}

	result = ByStatus(result, filter.Status)
	result = Search(result, filter.Query)
	return result
}
