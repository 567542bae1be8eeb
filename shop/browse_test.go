package shop

import (
	"testing"

	"github.com/luminafashion/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Linen Shirt", Price: 120, Category: "Men", Colors: []string{"White", "Beige"}, Sizes: []string{"M", "L"}, Rating: 4.2},
		{ID: 2, Name: "Denim Jacket", Price: 340, Category: "Men", Colors: []string{"Blue"}, Sizes: []string{"S", "M"}, Rating: 4.8, Discount: 20},
		{ID: 3, Name: "Summer Dress", Price: 210, Category: "Women", Colors: []string{"Red"}, Sizes: []string{"XS", "S"}, Rating: 4.5, IsNew: true},
		{ID: 4, Name: "Kids Hoodie", Price: 80, Category: "Kids", Colors: []string{"Green"}, Sizes: []string{"XS"}, Rating: 3.9},
		{ID: 5, Name: "Silk Scarf", Price: 1200, Category: "Women", Colors: []string{"Black"}, Sizes: []string{"M"}, Rating: 4.9, IsNew: true, Discount: 10},
	}
}

func ids(products []models.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestBrowseDefaultNewestDescendingID(t *testing.T) {
	got := Browse(fixtureCatalog(), models.CategoryAll, models.DefaultFilterState(), models.SortNewest)
	// default price range [0,1000] excludes the 1200 scarf
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(got))
}

func TestBrowseDeterministic(t *testing.T) {
	catalog := fixtureCatalog()
	first := Browse(catalog, "Men", models.DefaultFilterState(), models.SortRating)
	for i := 0; i < 10; i++ {
		assert.Equal(t, ids(first), ids(Browse(catalog, "Men", models.DefaultFilterState(), models.SortRating)))
	}
}

func TestBrowseDoesNotMutateInput(t *testing.T) {
	catalog := fixtureCatalog()
	Browse(catalog, models.CategoryAll, models.DefaultFilterState(), models.SortPriceHighLow)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(catalog))
}

func TestBrowseSorts(t *testing.T) {
	catalog := fixtureCatalog()
	f := models.FilterState{PriceRange: [2]float64{0, 5000}}

	tests := []struct {
		name string
		sort models.SortOption
		want []int64
	}{
		{"price low to high", models.SortPriceLowHigh, []int64{4, 1, 3, 2, 5}},
		{"price high to low", models.SortPriceHighLow, []int64{5, 2, 3, 1, 4}},
		{"rating descending", models.SortRating, []int64{5, 2, 3, 1, 4}},
		{"newest by id", models.SortNewest, []int64{5, 4, 3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Browse(catalog, models.CategoryAll, f, tt.sort)))
		})
	}
}

func TestBrowseStableTieBreak(t *testing.T) {
	catalog := []models.Product{
		{ID: 1, Price: 100, Category: "Men"},
		{ID: 2, Price: 100, Category: "Men"},
		{ID: 3, Price: 100, Category: "Men"},
	}
	got := Browse(catalog, models.CategoryAll, models.DefaultFilterState(), models.SortPriceLowHigh)
	assert.Equal(t, []int64{1, 2, 3}, ids(got), "equal keys keep catalog order")
}

func TestBrowseDerivedCategories(t *testing.T) {
	catalog := []models.Product{
		{ID: 1, Price: 100, Category: "Men", Discount: 20},              // offer, not new
		{ID: 2, Price: 100, Category: "Women", IsNew: true},             // new, not offer
		{ID: 3, Price: 100, Category: "Kids", IsNew: true, Discount: 5}, // both
	}
	f := models.DefaultFilterState()

	newArrivals := ids(Browse(catalog, models.CategoryNewArrivals, f, models.SortNewest))
	assert.Equal(t, []int64{3, 2}, newArrivals)
	assert.NotContains(t, newArrivals, int64(1))

	offers := ids(Browse(catalog, models.CategoryOffers, f, models.SortNewest))
	assert.Equal(t, []int64{3, 1}, offers)
	assert.NotContains(t, offers, int64(2))
}

func TestBrowseColorAndSizeFilters(t *testing.T) {
	catalog := fixtureCatalog()
	f := models.DefaultFilterState()
	f.Colors = []string{"Blue", "Red"}

	got := ids(Browse(catalog, models.CategoryAll, f, models.SortNewest))
	assert.Equal(t, []int64{3, 2}, got)

	f.Sizes = []string{"XS"}
	got = ids(Browse(catalog, models.CategoryAll, f, models.SortNewest))
	assert.Equal(t, []int64{3}, got, "color and size filters are conjunctive")
}

func TestBrowseAllBypassesFilters(t *testing.T) {
	catalog := fixtureCatalog()
	f := models.FilterState{PriceRange: [2]float64{0, 50}, Colors: []string{"Purple"}}

	got := Browse(catalog, "Women", f, models.SortAll)
	// category-only pass, descending id; the non-default refinements
	// are ignored entirely
	assert.Equal(t, []int64{5, 3}, ids(got))
}

func TestBrowseStateColorToggleLeavesAll(t *testing.T) {
	b := NewBrowseState()
	b.SetSort(models.SortAll)

	b.ToggleColor("Black")

	assert.Equal(t, models.SortNewest, b.Sort, "activating a filter under ALL must leave ALL")
	assert.Equal(t, []string{"Black"}, b.Filters.Colors)

	b.ToggleColor("Black")
	assert.Empty(t, b.Filters.Colors)
	assert.Equal(t, models.SortNewest, b.Sort)
}

func TestBrowseStatePriceChangeLeavesAll(t *testing.T) {
	b := NewBrowseState()
	b.SetSort(models.SortAll)

	b.SetMaxPrice(300)

	assert.Equal(t, models.SortNewest, b.Sort)
	assert.Equal(t, [2]float64{0, 300}, b.Filters.PriceRange)
}

func TestBrowseStateAllResetsFilters(t *testing.T) {
	b := NewBrowseState()
	b.ToggleColor("Blue")
	b.ToggleSize("M")
	b.SetMaxPrice(250)

	b.SetSort(models.SortAll)

	require.Equal(t, models.SortAll, b.Sort)
	assert.Equal(t, models.DefaultFilterState(), b.Filters)
}

func TestBrowseStateCategoryChangeResetsFilters(t *testing.T) {
	b := NewBrowseState()
	b.SetCategory("Men")
	b.ToggleColor("Blue")
	b.SetMaxPrice(250)

	b.SetCategory("Women")
	assert.Equal(t, models.DefaultFilterState(), b.Filters)

	// re-selecting the current category keeps refinements
	b.ToggleColor("Red")
	b.SetCategory("Women")
	assert.Equal(t, []string{"Red"}, b.Filters.Colors)
}
