package order

import "waterboys/internal/entities"

// DeliveredStats - сводка по доставленным заказам.
type DeliveredStats struct {
	Liters  float64
	Revenue float64
	Clients int
}

// TotalLiters суммирует литры по delivered-заказам; отсутствующее
// количество считается нулем.
func TotalLiters(orders []entities.Order) float64 {
	var total float64
	for _, o := range orders {
		if o.Status != entities.OrderDelivered {
			continue
		}
		if o.Quantity != nil {
			total += *o.Quantity
		}
	}
	return total
}

// TotalRevenue суммирует выручку по delivered-заказам; отсутствующая
// цена считается нулем.
func TotalRevenue(orders []entities.Order) float64 {
	var total float64
	for _, o := range orders {
		if o.Status != entities.OrderDelivered {
			continue
		}
		if o.Price != nil {
			total += *o.Price
		}
	}
	return total
}

// DeliveredCount возвращает число delivered-заказов.
func DeliveredCount(orders []entities.Order) int {
	count := 0
	for _, o := range orders {
		if o.Status == entities.OrderDelivered {
			count++
		}
	}
	return count
}

func Summarize(orders []entities.Order) DeliveredStats {
	return DeliveredStats{
		Liters:  TotalLiters(orders),
		Revenue: TotalRevenue(orders),
		Clients: DeliveredCount(orders),
	}
}
