package shop

import (
	"errors"
	"sync"
	"time"

	"github.com/luminafashion/backend/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// Session owns all shopper-scoped state for one authenticated user:
// cart ledger, wishlist, order history, browse state, theme and the
// cart-drawer flag. Every transition runs under the session mutex, so a
// single user action is applied atomically and never observed half
// done. Handlers run concurrently; the mutex restores the one-event-at-
// a-time model the state machine assumes.
type Session struct {
	mu             sync.Mutex
	user           models.User
	theme          models.Theme
	cart           Cart
	wishlist       Wishlist
	orders         OrderLog
	browse         BrowseState
	cartOpen       bool
	ordersHydrated bool
}

func NewSession(user models.User, theme models.Theme) *Session {
	if theme == "" {
		theme = models.ThemeLight
	}
	return &Session{user: user, theme: theme, browse: NewBrowseState()}
}

func (s *Session) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Session) ToggleTheme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggle()
	return s.theme
}

// --- cart ledger ---

// AddToCart merges the product into the ledger. Opening the cart drawer
// is a separate, later effect; it is never fused with the mutation.
func (s *Session) AddToCart(p models.Product, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p, size)
}

func (s *Session) RemoveFromCart(productID int64, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID, size)
}

func (s *Session) UpdateQuantity(productID int64, size string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(productID, size, delta)
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *Session) CartLines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Session) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

func (s *Session) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

func (s *Session) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = open
}

func (s *Session) CartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartOpen
}

// --- wishlist ---

func (s *Session) ToggleWishlist(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist.Toggle(productID)
}

func (s *Session) InWishlist(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Has(productID)
}

func (s *Session) WishlistIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.IDs()
}

func (s *Session) WishlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Count()
}

// --- orders ---

// CheckoutDraft snapshots the current cart into an order ready for the
// remote write. State is untouched; nothing is cleared until the remote
// side confirms.
func (s *Session) CheckoutDraft(id, paymentMethod string, addr *models.ShippingAddress) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Len() == 0 {
		return models.Order{}, ErrEmptyCart
	}
	return models.Order{
		ID:              id,
		Date:            time.Now().UTC(),
		Items:           s.cart.Lines(),
		Total:           s.cart.Subtotal(),
		Status:          models.StatusProcessing,
		PaymentMethod:   paymentMethod,
		ShippingAddress: addr,
	}, nil
}

// CompleteCheckout prepends the confirmed order and empties the cart in
// one transition.
func (s *Session) CompleteCheckout(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.Add(order)
	s.cart.Clear()
}

func (s *Session) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Orders()
}

// HydrateOrders replaces the local history with the remote result.
func (s *Session) HydrateOrders(orders []models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.Replace(orders)
	s.ordersHydrated = true
}

func (s *Session) OrdersHydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordersHydrated
}

// --- browse state ---

func (s *Session) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.browse.SetCategory(category)
}

func (s *Session) SetSort(sortBy models.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.browse.SetSort(sortBy)
}

func (s *Session) ToggleColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.browse.ToggleColor(color)
}

func (s *Session) ToggleSize(size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.browse.ToggleSize(size)
}

func (s *Session) SetMaxPrice(max float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.browse.SetMaxPrice(max)
}

func (s *Session) BrowseSnapshot() BrowseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.browse
	b.Filters.Colors = append([]string(nil), s.browse.Filters.Colors...)
	b.Filters.Sizes = append([]string(nil), s.browse.Filters.Sizes...)
	return b
}

// BrowseProducts runs the filter/sort engine over a catalog snapshot
// with the session's current state.
func (s *Session) BrowseProducts(products []models.Product) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.browse.Apply(products)
}

// SignOut clears cart, wishlist and order history in one transition:
// the instant the session goes Anonymous, all three are empty. Theme is
// orthogonal and survives.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.wishlist.Clear()
	s.orders.Clear()
	s.browse = NewBrowseState()
	s.cartOpen = false
	s.ordersHydrated = false
}
