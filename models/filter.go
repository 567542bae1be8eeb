package models

import "fmt"

// FilterState holds the active browse refinements. Ephemeral: reset
// when the sort mode goes to ALL or when a new category context opens.
type FilterState struct {
	PriceRange [2]float64 `json:"priceRange"`
	Colors     []string   `json:"colors"`
	Sizes      []string   `json:"sizes"`
}

func DefaultFilterState() FilterState {
	return FilterState{PriceRange: [2]float64{0, 1000}, Colors: []string{}, Sizes: []string{}}
}

type SortOption string

const (
	SortNewest       SortOption = "NEWEST"
	SortPriceLowHigh SortOption = "PRICE_LOW_HIGH"
	SortPriceHighLow SortOption = "PRICE_HIGH_LOW"
	SortRating       SortOption = "RATING"
	// SortAll is the escape hatch: ignore every refinement and show the
	// whole category, newest first.
	SortAll SortOption = "ALL"
)

func ParseSortOption(s string) (SortOption, error) {
	switch SortOption(s) {
	case SortNewest, SortPriceLowHigh, SortPriceHighLow, SortRating, SortAll:
		return SortOption(s), nil
	}
	return "", fmt.Errorf("unknown sort option %q", s)
}
