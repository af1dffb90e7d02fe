package types

import "strings"

const All = "all"

// Choice is a select-box value. The empty string and "all" both mean no
// constraint.
type Choice string

func (c Choice) IsAll() bool {
	return c == "" || c == All
}

func (c Choice) String() string {
	if c.IsAll() {
		return All
	}
	return string(c)
}

type FilterState struct {
	Query      string `json:"query" schema:"query"`
	Category   Choice `json:"category" schema:"category"`
	Location   Choice `json:"location" schema:"location"`
	PriceRange Choice `json:"priceRange" schema:"price"`
	Quality    Choice `json:"quality" schema:"quality"`
	Status     Choice `json:"status" schema:"status"`
	DateRange  Choice `json:"dateRange" schema:"date"`
	Organic    bool   `json:"organic" schema:"organic"`
	Verified   bool   `json:"verified" schema:"verified"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		Category:   All,
		Location:   All,
		PriceRange: All,
		Quality:    All,
		Status:     All,
		DateRange:  All,
	}
}

func (f FilterState) IsNeutral() bool {
	return strings.TrimSpace(f.Query) == "" &&
		f.Category.IsAll() &&
		f.Location.IsAll() &&
		f.PriceRange.IsAll() &&
		f.Quality.IsAll() &&
		f.Status.IsAll() &&
		f.DateRange.IsAll() &&
		!f.Organic &&
		!f.Verified
}

// ActiveCount is the number of facets that constrain the result.
func (f FilterState) ActiveCount() int {
	n := 0
	if strings.TrimSpace(f.Query) != "" {
		n++
	}
	for _, c := range []Choice{f.Category, f.Location, f.PriceRange, f.Quality, f.Status, f.DateRange} {
		if !c.IsAll() {
			n++
		}
	}
	if f.Organic {
		n++
	}
	if f.Verified {
		n++
	}
	return n
}

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortPopular   SortKey = "popular"
)

const DefaultSort = SortNewest

var SortKeys = []SortKey{SortNewest, SortPriceLow, SortPriceHigh, SortRating, SortPopular}

func ParseSortKey(s string) (SortKey, bool) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, true
		}
	}
	return DefaultSort, false
}
