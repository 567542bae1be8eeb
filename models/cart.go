package models

// CartLine is one (product, size) entry in a cart. Product is an owned
// snapshot, not a live catalog reference: a later price change in the
// catalog must not alter an existing line or a placed order.
type CartLine struct {
	Product  Product `bson:"product" json:"product"`
	Size     string  `bson:"size" json:"size"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
