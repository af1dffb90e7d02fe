package facet

import (
	"github.com/grochain/listing-finder/pkg/types"
)

// Predicates builds one predicate per active facet of the filter state.
func Predicates(f types.FilterState) []Predicate {
	all := []Predicate{
		TextMatch(f.Query),
		KeyMatch(types.CategoryFacet, f.Category),
		AnyKeyMatch(f.Location, types.StateFacet, types.CityFacet),
		RangeMatch(types.PriceFacet, f.PriceRange),
		KeyMatch(types.QualityFacet, f.Quality),
		KeyMatch(types.StatusFacet, f.Status),
		DateMatch(f.DateRange),
		BoolMatch(types.OrganicFacet, f.Organic),
		BoolMatch(types.VerifiedFacet, f.Verified),
	}
	ret := all[:0]
	for _, p := range all {
		if p != nil {
			ret = append(ret, p)
		}
	}
	return ret
}

func matchesAll(item types.Listing, predicates []Predicate) bool {
	for _, p := range predicates {
		if !p(item) {
			return false
		}
	}
	return true
}

// Filter keeps the items passing every active facet, in input order. The
// source slice is never modified and the result is never nil.
func Filter[T types.Listing](source []T, f types.FilterState) []T {
	predicates := Predicates(f)
	ret := make([]T, 0, len(source))
	if len(predicates) == 0 {
		return append(ret, source...)
	}
	for _, item := range source {
		if matchesAll(item, predicates) {
			ret = append(ret, item)
		}
	}
	return ret
}
