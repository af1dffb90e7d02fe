package discovery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grochain/listing-finder/pkg/types"
)

func ids[T types.Listing](items []T) []string {
	ret := make([]string, len(items))
	for i, item := range items {
		ret[i] = item.GetId()
	}
	return ret
}

func TestDiscoverNeutralKeepsEverything(t *testing.T) {
	products := types.MockProducts()
	res := Discover(products, types.DefaultFilterState(), types.SortNewest)
	if res.Shown != 6 || res.Total != 6 {
		t.Errorf("Expected 6 of 6, got %d of %d", res.Shown, res.Total)
	}
	if diff := cmp.Diff([]string{"4", "1", "2", "3", "5", "6"}, ids(res.Items)); diff != "" {
		t.Errorf("Unexpected order (-want +got):\n%s", diff)
	}
}

func TestDiscoverFiltersThenSorts(t *testing.T) {
	res := Discover(types.MockProducts(), types.FilterState{Verified: true}, types.SortPriceLow)
	if diff := cmp.Diff([]string{"2", "1", "6", "4"}, ids(res.Items)); diff != "" {
		t.Errorf("Unexpected result (-want +got):\n%s", diff)
	}
	if res.Shown != 4 || res.Total != 6 {
		t.Errorf("Expected 4 of 6, got %d of %d", res.Shown, res.Total)
	}
}

func TestDiscoverIsIdempotent(t *testing.T) {
	products := types.MockProducts()
	f := types.FilterState{Query: "fresh", PriceRange: "500-3000"}
	first := Discover(products, f, types.SortRating)
	second := Discover(products, f, types.SortRating)
	if diff := cmp.Diff(ids(first.Items), ids(second.Items)); diff != "" {
		t.Errorf("Expected equal results (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "6", "5"}, ids(first.Items)); diff != "" {
		t.Errorf("Unexpected result (-want +got):\n%s", diff)
	}
}

func TestDiscoverEmptySource(t *testing.T) {
	res := Discover[*types.Product](nil, types.FilterState{Query: "rice"}, types.SortNewest)
	if res.Items == nil || res.Shown != 0 || res.Total != 0 {
		t.Errorf("Expected empty result, got %+v", res)
	}
}

func TestDiscoverNoMatchesIsNotAnError(t *testing.T) {
	res := Discover(types.MockProducts(), types.FilterState{Organic: true, Category: "Tubers"}, types.SortNewest)
	if len(res.Items) != 0 || res.Total != 6 {
		t.Errorf("Expected 0 of 6, got %d of %d", len(res.Items), res.Total)
	}
}
