package shop

import "github.com/luminafashion/backend/models"

// OrderLog is the session's order history, newest first. Entries are
// immutable once appended.
type OrderLog struct {
	orders []models.Order
}

// Add prepends a freshly placed order.
func (o *OrderLog) Add(order models.Order) {
	o.orders = append([]models.Order{order}, o.orders...)
}

// Replace swaps in the remotely fetched history wholesale.
func (o *OrderLog) Replace(orders []models.Order) {
	o.orders = append([]models.Order(nil), orders...)
}

func (o *OrderLog) Orders() []models.Order {
	return append([]models.Order(nil), o.orders...)
}

func (o *OrderLog) Len() int {
	return len(o.orders)
}

func (o *OrderLog) Clear() {
	o.orders = nil
}
