package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWishlistToggleIsInvolution(t *testing.T) {
	var w Wishlist

	w.Toggle(3)
	assert.True(t, w.Has(3))
	assert.Equal(t, 1, w.Count())

	w.Toggle(3)
	assert.False(t, w.Has(3))
	assert.Equal(t, 0, w.Count())
}

func TestWishlistKeepsInsertionOrder(t *testing.T) {
	var w Wishlist
	w.Toggle(5)
	w.Toggle(2)
	w.Toggle(9)
	w.Toggle(2)

	assert.Equal(t, []int64{5, 9}, w.IDs())
}
