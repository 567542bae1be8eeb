package shop

import (
	"testing"

	"github.com/luminafashion/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() models.User {
	return models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}
}

func TestSignOutClearsEverythingAtOnce(t *testing.T) {
	s := NewSession(testUser(), models.ThemeDark)
	s.AddToCart(tee(1, 500), "M")
	s.ToggleWishlist(2)
	s.HydrateOrders([]models.Order{{ID: "o1", Total: 500}})
	s.SetCartOpen(true)

	s.SignOut()

	assert.Empty(t, s.CartLines())
	assert.Zero(t, s.WishlistCount())
	assert.Empty(t, s.Orders())
	assert.False(t, s.CartOpen())
	assert.False(t, s.OrdersHydrated())
	// theme is orthogonal to authentication and survives
	assert.Equal(t, models.ThemeDark, s.Theme())
}

func TestCheckoutDraftSnapshotsCart(t *testing.T) {
	s := NewSession(testUser(), "")
	p := tee(1, 500)
	s.AddToCart(p, "M")
	s.AddToCart(p, "M")

	order, err := s.CheckoutDraft("ord-1", "Credit Card", nil)
	require.NoError(t, err)

	assert.Equal(t, "ord-1", order.ID)
	assert.InDelta(t, 1000, order.Total, 1e-9)
	assert.Equal(t, models.StatusProcessing, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// the draft leaves the cart untouched until the remote confirms
	assert.Equal(t, 2, s.ItemCount())
}

func TestCheckoutDraftEmptyCart(t *testing.T) {
	s := NewSession(testUser(), "")
	_, err := s.CheckoutDraft("ord-1", "Credit Card", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCompleteCheckoutPrependsAndClears(t *testing.T) {
	s := NewSession(testUser(), "")
	s.HydrateOrders([]models.Order{{ID: "old"}})
	s.AddToCart(tee(1, 500), "M")

	order, err := s.CheckoutDraft("new", "UPI", nil)
	require.NoError(t, err)
	s.CompleteCheckout(order)

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "new", orders[0].ID, "history is newest first")
	assert.Empty(t, s.CartLines())
}

func TestOrderItemsAreSnapshots(t *testing.T) {
	s := NewSession(testUser(), "")
	p := tee(1, 500)
	s.AddToCart(p, "M")
	order, err := s.CheckoutDraft("ord", "COD", nil)
	require.NoError(t, err)
	s.CompleteCheckout(order)

	// mutating the cart afterwards must not reach into the order
	s.AddToCart(p, "M")
	s.UpdateQuantity(p.ID, "M", 5)

	got := s.Orders()[0]
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Quantity)
}

func TestThemeToggle(t *testing.T) {
	s := NewSession(testUser(), models.ThemeLight)
	assert.Equal(t, models.ThemeDark, s.ToggleTheme())
	assert.Equal(t, models.ThemeLight, s.ToggleTheme())
}

func TestSessionsRegistry(t *testing.T) {
	r := NewSessions()
	u := testUser()

	s1 := r.GetOrCreate(u, models.ThemeLight)
	s1.AddToCart(tee(1, 100), "S")

	s2 := r.GetOrCreate(u, models.ThemeLight)
	assert.Same(t, s1, s2, "signing in again keeps existing state")
	assert.Equal(t, 1, s2.ItemCount())

	r.Drop(u.ID)
	_, ok := r.Get(u.ID)
	assert.False(t, ok)
	assert.Empty(t, s1.CartLines(), "dropped session is cleared, not just forgotten")
}
