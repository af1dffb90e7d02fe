package discovery

import (
	"github.com/grochain/listing-finder/pkg/facet"
	"github.com/grochain/listing-finder/pkg/sorting"
	"github.com/grochain/listing-finder/pkg/types"
)

type Result[T types.Listing] struct {
	Items []T
	Shown int
	Total int
}

// Discover filters then sorts source. It has no state and never modifies
// source, so equal inputs always give equal results.
func Discover[T types.Listing](source []T, filters types.FilterState, key types.SortKey) Result[T] {
	if source == nil {
		source = []T{}
	}
	items := sorting.Sort(facet.Filter(source, filters), key)
	return Result[T]{
		Items: items,
		Shown: len(items),
		Total: len(source),
	}
}
