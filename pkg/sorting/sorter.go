package sorting

import (
	"math"
	"slices"

	"github.com/grochain/listing-finder/pkg/types"
)

type Sorter struct {
	key        types.SortKey
	fn         func(item types.Listing) (float64, bool)
	descending bool
}

func NewSorter(key types.SortKey, fn func(item types.Listing) (float64, bool), descending bool) *Sorter {
	return &Sorter{
		key:        key,
		fn:         fn,
		descending: descending,
	}
}

func (s *Sorter) Name() types.SortKey {
	return s.key
}

func (s *Sorter) IsDescending() bool {
	return s.descending
}

func numberField(id types.FacetId) func(item types.Listing) (float64, bool) {
	return func(item types.Listing) (float64, bool) {
		return item.GetNumberFieldValue(id)
	}
}

func created(item types.Listing) (float64, bool) {
	return float64(ParseTimestamp(item.GetCreated())), true
}

var sorters = map[types.SortKey]*Sorter{
	types.SortNewest:    NewSorter(types.SortNewest, created, true),
	types.SortPriceLow:  NewSorter(types.SortPriceLow, numberField(types.PriceFacet), false),
	types.SortPriceHigh: NewSorter(types.SortPriceHigh, numberField(types.PriceFacet), true),
	types.SortRating:    NewSorter(types.SortRating, numberField(types.RatingFacet), true),
	types.SortPopular:   NewSorter(types.SortPopular, numberField(types.ViewsFacet), true),
}

// GetSorter falls back to the default sort for unknown keys.
func GetSorter(key types.SortKey) *Sorter {
	if s, ok := sorters[key]; ok {
		return s
	}
	return sorters[types.DefaultSort]
}

type Lookup struct {
	Index   int
	Value   float64
	Missing bool
}

func (s *Sorter) compare(a, b Lookup) int {
	if a.Missing || b.Missing {
		switch {
		case a.Missing && b.Missing:
			return 0
		case a.Missing:
			return 1
		default:
			return -1
		}
	}
	if a.Value == b.Value {
		return 0
	}
	if (a.Value < b.Value) != s.descending {
		return -1
	}
	return 1
}

// Lookups scores every item once and stable sorts the scores. Items without
// the sorted field come last in both directions.
func (s *Sorter) Lookups(items []types.Listing) []Lookup {
	ret := make([]Lookup, len(items))
	for i, item := range items {
		v, ok := s.fn(item)
		ret[i] = Lookup{Index: i, Value: v, Missing: !ok || math.IsNaN(v)}
	}
	slices.SortStableFunc(ret, s.compare)
	return ret
}

// Sort returns a stable sorted copy of items.
func Sort[T types.Listing](items []T, key types.SortKey) []T {
	listings := make([]types.Listing, len(items))
	for i, item := range items {
		listings[i] = item
	}
	ret := make([]T, 0, len(items))
	for _, l := range GetSorter(key).Lookups(listings) {
		ret = append(ret, items[l.Index])
	}
	return ret
}
