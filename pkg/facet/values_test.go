package facet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grochain/listing-finder/pkg/types"
)

func TestGetFacetValues(t *testing.T) {
	values := GetFacetValues(types.MockProducts())
	expected := FacetValues{
		Categories: []string{"Grains", "Legumes", "Tubers", "Vegetables"},
		Locations: []string{
			"Abakaliki", "Abeokuta", "Ebonyi", "Ibadan", "Ikeja", "Kaduna",
			"Kano", "Lagos", "Ogun", "Oyo", "Zaria",
		},
		Qualities: []string{"basic", "premium", "standard"},
		Statuses:  []string{"active", "sold"},
		Price:     &NumberBounds{Min: 800, Max: 3200},
	}
	if diff := cmp.Diff(expected, values); diff != "" {
		t.Errorf("Unexpected facet values (-want +got):\n%s", diff)
	}
}

func TestGetFacetValuesEmpty(t *testing.T) {
	values := GetFacetValues([]*types.Product{})
	if values.Price != nil {
		t.Errorf("Expected no price bounds, got %v", values.Price)
	}
	if values.Categories == nil || len(values.Categories) != 0 {
		t.Errorf("Expected empty categories, got %v", values.Categories)
	}
}
