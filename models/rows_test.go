package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRowCoercion(t *testing.T) {
	row := ProductRow{
		ID:       "42",
		Name:     "Linen Shirt",
		Price:    "499.50", // numeric column delivered as string
		Discount: int32(15),
		Rating:   4.5,
		Reviews:  int64(12),
		Category: "Men",
		IsNew:    true,
		// Images/Sizes/Colors/Tags absent
	}

	p := row.ToProduct()

	assert.Equal(t, int64(42), p.ID)
	assert.InDelta(t, 499.50, p.Price, 1e-9)
	assert.InDelta(t, 15, p.Discount, 1e-9)
	assert.InDelta(t, 4.5, p.Rating, 1e-9)
	assert.Equal(t, 12, p.Reviews)
	assert.True(t, p.IsNew)

	// absent array columns default to empty, never nil
	require.NotNil(t, p.Images)
	require.NotNil(t, p.Sizes)
	require.NotNil(t, p.Colors)
	require.NotNil(t, p.Tags)
	assert.Empty(t, p.Images)
}

func TestCoerceUnparseable(t *testing.T) {
	assert.Zero(t, CoerceFloat(nil))
	assert.Zero(t, CoerceFloat("not a number"))
	assert.Zero(t, CoerceInt(nil))
	assert.Zero(t, CoerceInt("x"))
}

func TestDerivedCategoryPredicates(t *testing.T) {
	offer := Product{Discount: 20}
	fresh := Product{IsNew: true}

	assert.True(t, offer.InCategory(CategoryOffers))
	assert.False(t, offer.InCategory(CategoryNewArrivals))
	assert.True(t, fresh.InCategory(CategoryNewArrivals))
	assert.False(t, fresh.InCategory(CategoryOffers))

	men := Product{Category: "Men"}
	assert.True(t, men.InCategory("Men"))
	assert.True(t, men.InCategory(CategoryAll))
	assert.False(t, men.InCategory("Women"))
}

func TestOrderRowToOrder(t *testing.T) {
	created := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	row := OrderRow{
		ID:            "ord-1",
		UserID:        "u1",
		Total:         "1000", // string numeric, as with product rows
		Status:        "Shipped",
		PaymentMethod: "Credit Card",
		CreatedAt:     created,
	}
	items := []OrderItemRow{
		{OrderID: "ord-1", ProductID: 7, ProductName: "Tee", Size: "M", Quantity: 2, PriceAtPurchase: 500},
	}

	order := row.ToOrder(items)

	assert.Equal(t, "ord-1", order.ID)
	assert.Equal(t, created, order.Date)
	assert.InDelta(t, 1000, order.Total, 1e-9)
	assert.Equal(t, StatusShipped, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(7), order.Items[0].Product.ID)
	assert.InDelta(t, 500, order.Items[0].Product.Price, 1e-9)
	assert.Equal(t, 2, order.Items[0].Quantity)
}
