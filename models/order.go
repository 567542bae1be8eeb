package models

import "time"

type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

type ShippingAddress struct {
	FirstName string `bson:"first_name" json:"firstName" binding:"required"`
	LastName  string `bson:"last_name" json:"lastName" binding:"required"`
	Email     string `bson:"email" json:"email" binding:"required,email"`
	Address   string `bson:"address" json:"address" binding:"required"`
	City      string `bson:"city" json:"city" binding:"required"`
	State     string `bson:"state" json:"state" binding:"required"`
	Zip       string `bson:"zip" json:"zip" binding:"required"`
	Phone     string `bson:"phone" json:"phone" binding:"required"`
}

// Customer is the profile summary attached to orders in the admin view.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is created once at checkout and read-only afterwards. Items are
// cart-line snapshots frozen at purchase time.
type Order struct {
	ID              string           `json:"id"`
	Date            time.Time        `json:"date"`
	Items           []CartLine       `json:"items"`
	Total           float64          `json:"total"`
	Status          OrderStatus      `json:"status"`
	PaymentMethod   string           `json:"paymentMethod"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	Customer        *Customer        `json:"user,omitempty"`
}

// OrderRow is the order header as stored. The id is client-generated so
// header and item rows share a key even when the item insert fails.
type OrderRow struct {
	ID              string           `bson:"_id"`
	UserID          string           `bson:"user_id"`
	Total           any              `bson:"total"`
	Status          string           `bson:"status"`
	PaymentMethod   string           `bson:"payment_method"`
	ShippingAddress *ShippingAddress `bson:"shipping_address,omitempty"`
	CreatedAt       time.Time        `bson:"created_at"`
}

// OrderItemRow carries the denormalized product snapshot alongside the
// line so history never depends on the current catalog.
type OrderItemRow struct {
	OrderID         string `bson:"order_id"`
	ProductID       int64  `bson:"product_id"`
	ProductName     string `bson:"product_name"`
	ProductImage    string `bson:"product_image"`
	Size            string `bson:"size"`
	Quantity        int    `bson:"quantity"`
	PriceAtPurchase any    `bson:"price_at_purchase"`
}

// ToOrder reconstructs the Order entity from a header row and its item
// rows, coercing loose numerics the same way product rows are.
func (r OrderRow) ToOrder(items []OrderItemRow) Order {
	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, CartLine{
			Product: Product{
				ID:    it.ProductID,
				Name:  it.ProductName,
				Price: CoerceFloat(it.PriceAtPurchase),
				Image: it.ProductImage,
			},
			Size:     it.Size,
			Quantity: it.Quantity,
		})
	}
	return Order{
		ID:              r.ID,
		Date:            r.CreatedAt,
		Items:           lines,
		Total:           CoerceFloat(r.Total),
		Status:          OrderStatus(r.Status),
		PaymentMethod:   r.PaymentMethod,
		ShippingAddress: r.ShippingAddress,
	}
}
