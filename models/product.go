package models

// Fixed category set plus the two derived pseudo-categories. "New
// Arrivals" and "Offers" are never stored on a product; they are
// computed from IsNew and Discount so they stay consistent with the
// underlying flags.
const (
	CategoryAll         = "All"
	CategoryNewArrivals = "New Arrivals"
	CategoryOffers      = "Offers"
)

var Categories = []string{"Men", "Women", "Kids", CategoryNewArrivals, CategoryOffers}

var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

type Product struct {
	ID          int64    `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Price       float64  `bson:"price" json:"price"`
	Discount    float64  `bson:"discount" json:"discount"` // percentage off
	Category    string   `bson:"category" json:"category"`
	Image       string   `bson:"image" json:"image"`
	Images      []string `bson:"images" json:"images"`
	Rating      float64  `bson:"rating" json:"rating"`
	Reviews     int      `bson:"reviews" json:"reviews"`
	Sizes       []string `bson:"sizes" json:"sizes"`
	Colors      []string `bson:"colors" json:"colors"`
	Description string   `bson:"description" json:"description"`
	Fabric      string   `bson:"fabric" json:"fabric"`
	Fit         string   `bson:"fit" json:"fit"`
	Care        string   `bson:"care" json:"care"`
	IsNew       bool     `bson:"isNew" json:"isNew,omitempty"`
	Tags        []string `bson:"tags" json:"tags,omitempty"`
}

// InCategory reports whether the product belongs to the given active
// category, resolving the derived pseudo-categories.
func (p Product) InCategory(category string) bool {
	switch category {
	case CategoryAll:
		return true
	case CategoryNewArrivals:
		return p.IsNew
	case CategoryOffers:
		return p.Discount > 0
	default:
		return p.Category == category
	}
}

func (p Product) HasColor(colors []string) bool {
	for _, pc := range p.Colors {
		for _, c := range colors {
			if pc == c {
				return true
			}
		}
	}
	return false
}

func (p Product) HasSize(sizes []string) bool {
	for _, ps := range p.Sizes {
		for _, s := range sizes {
			if ps == s {
				return true
			}
		}
	}
	return false
}
