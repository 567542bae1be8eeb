package shop

import (
	"sort"

	"github.com/luminafashion/backend/models"
)

// Browse applies the category, filter and sort passes in that order and
// returns the exact result sequence. Pure: the input slice is never
// mutated, and the sort is stable so equal keys keep catalog order.
func Browse(products []models.Product, category string, filters models.FilterState, sortBy models.SortOption) []models.Product {
	result := make([]models.Product, 0, len(products))

	for _, p := range products {
		if category != models.CategoryAll && !p.InCategory(category) {
			continue
		}
		// Filters only apply outside ALL mode; ALL means "ignore all
		// refinements".
		if sortBy != models.SortAll {
			if p.Price < filters.PriceRange[0] || p.Price > filters.PriceRange[1] {
				continue
			}
			if len(filters.Colors) > 0 && !p.HasColor(filters.Colors) {
				continue
			}
			if len(filters.Sizes) > 0 && !p.HasSize(filters.Sizes) {
				continue
			}
		}
		result = append(result, p)
	}

	switch sortBy {
	case models.SortPriceLowHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case models.SortPriceHighLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case models.SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	default:
		// NEWEST and ALL: higher id is the recency proxy.
		sort.SliceStable(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	}

	return result
}

// BrowseState is the per-session filter/sort machine. Its transitions
// carry the coupling rules between filters and the ALL escape hatch:
// touching a color or the price slider while in ALL flips the sort to
// NEWEST (filters are inert under ALL, so activating one silently would
// be a no-op), and choosing ALL resets every refinement.
type BrowseState struct {
	Category string
	Filters  models.FilterState
	Sort     models.SortOption
}

func NewBrowseState() BrowseState {
	return BrowseState{
		Category: models.CategoryAll,
		Filters:  models.DefaultFilterState(),
		Sort:     models.SortNewest,
	}
}

// SetCategory enters a new category context; refinements do not carry
// over between categories.
func (b *BrowseState) SetCategory(category string) {
	if b.Category == category {
		return
	}
	b.Category = category
	b.Filters = models.DefaultFilterState()
}

func (b *BrowseState) SetSort(s models.SortOption) {
	b.Sort = s
	if s == models.SortAll {
		b.Filters = models.DefaultFilterState()
	}
}

func (b *BrowseState) ToggleColor(color string) {
	b.leaveAll()
	for i, c := range b.Filters.Colors {
		if c == color {
			b.Filters.Colors = append(b.Filters.Colors[:i], b.Filters.Colors[i+1:]...)
			return
		}
	}
	b.Filters.Colors = append(b.Filters.Colors, color)
}

func (b *BrowseState) ToggleSize(size string) {
	for i, s := range b.Filters.Sizes {
		if s == size {
			b.Filters.Sizes = append(b.Filters.Sizes[:i], b.Filters.Sizes[i+1:]...)
			return
		}
	}
	b.Filters.Sizes = append(b.Filters.Sizes, size)
}

func (b *BrowseState) SetMaxPrice(max float64) {
	b.leaveAll()
	b.Filters.PriceRange = [2]float64{0, max}
}

func (b *BrowseState) leaveAll() {
	if b.Sort == models.SortAll {
		b.Sort = models.SortNewest
	}
}

// Apply runs the engine over a catalog snapshot with this state.
func (b BrowseState) Apply(products []models.Product) []models.Product {
	return Browse(products, b.Category, b.Filters, b.Sort)
}
