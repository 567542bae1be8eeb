package models

import (
	"encoding/json"
	"strconv"
)

// ProductRow is the wire/storage shape of a product. Numeric columns
// arrive either as numbers or as strings depending on how the row was
// written, so they are coerced rather than decoded strictly; absent
// array columns default to empty slices.
type ProductRow struct {
	ID          any      `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Price       any      `bson:"price" json:"price"`
	Discount    any      `bson:"discount" json:"discount"`
	Category    string   `bson:"category" json:"category"`
	Image       string   `bson:"image" json:"image"`
	Images      []string `bson:"images" json:"images"`
	Rating      any      `bson:"rating" json:"rating"`
	Reviews     any      `bson:"reviews_count" json:"reviews_count"`
	Sizes       []string `bson:"sizes" json:"sizes"`
	Colors      []string `bson:"colors" json:"colors"`
	Description string   `bson:"description" json:"description"`
	Fabric      string   `bson:"fabric" json:"fabric"`
	Fit         string   `bson:"fit" json:"fit"`
	Care        string   `bson:"care" json:"care"`
	IsNew       bool     `bson:"is_new" json:"is_new"`
	Tags        []string `bson:"tags" json:"tags"`
}

func (r ProductRow) ToProduct() Product {
	return Product{
		ID:          CoerceInt(r.ID),
		Name:        r.Name,
		Price:       CoerceFloat(r.Price),
		Discount:    CoerceFloat(r.Discount),
		Category:    r.Category,
		Image:       r.Image,
		Images:      orEmpty(r.Images),
		Rating:      CoerceFloat(r.Rating),
		Reviews:     int(CoerceInt(r.Reviews)),
		Sizes:       orEmpty(r.Sizes),
		Colors:      orEmpty(r.Colors),
		Description: r.Description,
		Fabric:      r.Fabric,
		Fit:         r.Fit,
		Care:        r.Care,
		IsNew:       r.IsNew,
		Tags:        orEmpty(r.Tags),
	}
}

// RowFromProduct builds the storage shape for an insert.
func RowFromProduct(p Product) ProductRow {
	return ProductRow{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Discount:    p.Discount,
		Category:    p.Category,
		Image:       p.Image,
		Images:      orEmpty(p.Images),
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Sizes:       orEmpty(p.Sizes),
		Colors:      orEmpty(p.Colors),
		Description: p.Description,
		Fabric:      p.Fabric,
		Fit:         p.Fit,
		Care:        p.Care,
		IsNew:       p.IsNew,
		Tags:        orEmpty(p.Tags),
	}
}

// CoerceFloat converts the loose numeric types a row field can carry.
// Anything unparseable comes back as 0.
func CoerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}

func CoerceInt(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	default:
		return 0
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
