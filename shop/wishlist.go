package shop

// Wishlist is a product-id set with toggle semantics: toggling twice is
// the identity. Insertion order is kept so the wishlist page renders
// stably.
type Wishlist struct {
	ids []int64
}

func (w *Wishlist) Toggle(productID int64) {
	for i, id := range w.ids {
		if id == productID {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			return
		}
	}
	w.ids = append(w.ids, productID)
}

func (w *Wishlist) Has(productID int64) bool {
	for _, id := range w.ids {
		if id == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) Count() int {
	return len(w.ids)
}

func (w *Wishlist) IDs() []int64 {
	return append([]int64(nil), w.ids...)
}

func (w *Wishlist) Clear() {
	w.ids = nil
}
