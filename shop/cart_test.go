package shop

import (
	"testing"

	"github.com/luminafashion/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tee(id int64, price float64) models.Product {
	return models.Product{ID: id, Name: "Tee", Price: price, Category: "Men"}
}

func TestCartMergeOnDuplicateAdd(t *testing.T) {
	var c Cart
	p := tee(1, 500)

	c.Add(p, "M")
	c.Add(p, "M")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	// Same product, different size is a separate line.
	c.Add(p, "L")
	assert.Equal(t, 2, c.Len())
}

func TestCartAddTwiceRemoveOnce(t *testing.T) {
	var c Cart
	p := tee(1, 500)

	c.Add(p, "M")
	c.Add(p, "M")
	c.Remove(p.ID, "M")

	assert.Equal(t, 0, c.Len())

	// remove is a no-op on a missing line
	c.Remove(p.ID, "M")
	assert.Equal(t, 0, c.Len())
}

func TestCartQuantityFloor(t *testing.T) {
	var c Cart
	p := tee(7, 120)
	c.Add(p, "M")
	c.UpdateQuantity(p.ID, "M", 2) // qty 3

	c.UpdateQuantity(p.ID, "M", -100)

	lines := c.Lines()
	require.Len(t, lines, 1, "clamping must never remove the line")
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCartUpdateQuantityMissingLine(t *testing.T) {
	var c Cart
	c.UpdateQuantity(42, "M", 1)
	assert.Equal(t, 0, c.Len())
}

func TestCartDerivedReads(t *testing.T) {
	var c Cart
	c.Add(tee(1, 500), "M")
	c.Add(tee(1, 500), "M")
	c.Add(tee(2, 99.5), "S")

	assert.InDelta(t, 1099.5, c.Subtotal(), 1e-9)
	assert.Equal(t, 3, c.ItemCount())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Zero(t, c.Subtotal())
}

func TestCartLineIsSnapshot(t *testing.T) {
	var c Cart
	p := tee(1, 500)
	c.Add(p, "M")

	// A later catalog price change must not leak into the line.
	p.Price = 900
	assert.InDelta(t, 500, c.Lines()[0].Product.Price, 1e-9)
}
