package shop

import "github.com/luminafashion/backend/models"

// Cart is the session's cart ledger: at most one line per
// (productId, size) pair, quantity never below 1. All operations are
// total; there are no error states.
type Cart struct {
	lines []models.CartLine
}

// Add merges into an existing (product, size) line or appends a new one
// with a snapshot of the product.
func (c *Cart) Add(p models.Product, size string) {
	for i, l := range c.lines {
		if l.Product.ID == p.ID && l.Size == size {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{Product: p, Size: size, Quantity: 1})
}

// Remove deletes the matching line; no-op if absent.
func (c *Cart) Remove(productID int64, size string) {
	for i, l := range c.lines {
		if l.Product.ID == productID && l.Size == size {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity adjusts a line by delta, clamped at 1. Dropping a line
// is always an explicit Remove, never a side effect of decrementing.
func (c *Cart) UpdateQuantity(productID int64, size string, delta int) {
	for i, l := range c.lines {
		if l.Product.ID == productID && l.Size == size {
			q := l.Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the ledger in insertion order.
func (c *Cart) Lines() []models.CartLine {
	return append([]models.CartLine(nil), c.lines...)
}

func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount is the badge number: the sum of quantities, not line count.
func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Len() int {
	return len(c.lines)
}
