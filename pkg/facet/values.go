package facet

import (
	"slices"

	"github.com/grochain/listing-finder/pkg/types"
)

type NumberBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FacetValues lists what the select boxes of a screen can offer.
type FacetValues struct {
	Categories []string      `json:"categories"`
	Locations  []string      `json:"locations"`
	Qualities  []string      `json:"qualities"`
	Statuses   []string      `json:"statuses"`
	Price      *NumberBounds `json:"price,omitempty"`
}

type valueSet map[string]struct{}

func (s valueSet) add(item types.Listing, id types.FacetId) {
	if v, ok := item.GetStringFieldValue(id); ok {
		s[v] = struct{}{}
	}
}

func (s valueSet) sorted() []string {
	ret := make([]string, 0, len(s))
	for v := range s {
		ret = append(ret, v)
	}
	slices.Sort(ret)
	return ret
}

func GetFacetValues[T types.Listing](source []T) FacetValues {
	categories, locations, qualities, statuses := valueSet{}, valueSet{}, valueSet{}, valueSet{}
	var bounds *NumberBounds
	for _, item := range source {
		categories.add(item, types.CategoryFacet)
		locations.add(item, types.StateFacet)
		locations.add(item, types.CityFacet)
		qualities.add(item, types.QualityFacet)
		statuses.add(item, types.StatusFacet)
		if price, ok := item.GetNumberFieldValue(types.PriceFacet); ok {
			if bounds == nil {
				bounds = &NumberBounds{Min: price, Max: price}
			} else {
				bounds.Min = min(bounds.Min, price)
				bounds.Max = max(bounds.Max, price)
			}
		}
	}
	return FacetValues{
		Categories: categories.sorted(),
		Locations:  locations.sorted(),
		Qualities:  qualities.sorted(),
		Statuses:   statuses.sorted(),
		Price:      bounds,
	}
}
