package shop

import (
	"sync"

	"github.com/luminafashion/backend/models"
)

// Catalog is the in-memory product snapshot shared by every page. It is
// populated once at startup and only ever grows through the admin
// create flow; shoppers treat it as read-only.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewCatalog() *Catalog {
	return &Catalog{products: []models.Product{}}
}

// Replace swaps in a freshly fetched product list.
func (c *Catalog) Replace(products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]models.Product(nil), products...)
}

// Append makes a newly created product visible without a full reload.
func (c *Catalog) Append(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, p)
}

// Products returns a copy; callers may sort and filter it freely.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Product(nil), c.products...)
}

func (c *Catalog) ByID(id int64) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
