package types

import "testing"

func TestChoiceIsAll(t *testing.T) {
	for _, c := range []Choice{"", "all"} {
		if !c.IsAll() {
			t.Errorf("Expected %q to be neutral", c)
		}
	}
	for _, c := range []Choice{"All", "Grains", " "} {
		if c.IsAll() {
			t.Errorf("Expected %q to constrain", c)
		}
	}
}

func TestDefaultFilterStateIsNeutral(t *testing.T) {
	f := DefaultFilterState()
	if !f.IsNeutral() {
		t.Errorf("Expected default filters to be neutral, got %+v", f)
	}
	if f.ActiveCount() != 0 {
		t.Errorf("Expected 0 active facets, got %d", f.ActiveCount())
	}
	f.Query = "   "
	if !f.IsNeutral() {
		t.Errorf("Expected blank query to be neutral")
	}
	f.Organic = true
	f.Category = "Grains"
	if f.IsNeutral() {
		t.Errorf("Expected filters with organic and category to constrain")
	}
	if f.ActiveCount() != 2 {
		t.Errorf("Expected 2 active facets, got %d", f.ActiveCount())
	}
	f.DateRange = "2024-01-13.."
	if f.ActiveCount() != 3 {
		t.Errorf("Expected date range to count as active, got %d", f.ActiveCount())
	}
}

func TestDateRangeAloneConstrains(t *testing.T) {
	f := DefaultFilterState()
	if f.DateRange != All {
		t.Errorf("Expected date range to default to all, got %v", f.DateRange)
	}
	f.DateRange = "..2024-01-12"
	if f.IsNeutral() {
		t.Errorf("Expected date range to constrain")
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys {
		got, ok := ParseSortKey(string(k))
		if !ok || got != k {
			t.Errorf("Expected %s to parse, got %s", k, got)
		}
	}
	got, ok := ParseSortKey("cheapest")
	if ok || got != SortNewest {
		t.Errorf("Expected unknown key to fall back to newest, got %s", got)
	}
}

func TestProductFieldAccess(t *testing.T) {
	p := &Product{Id: "x", Name: "Yam", Category: "Tubers"}
	if _, ok := p.GetNumberFieldValue(PriceFacet); ok {
		t.Errorf("Expected missing price")
	}
	if _, ok := p.GetStringFieldValue(StateFacet); ok {
		t.Errorf("Expected missing state without location")
	}
	if _, ok := p.GetBoolFieldValue(VerifiedFacet); ok {
		t.Errorf("Expected missing verified without farmer")
	}
	p.Farmer = &Farmer{Rating: float(4.1)}
	if r, ok := p.GetNumberFieldValue(RatingFacet); !ok || r != 4.1 {
		t.Errorf("Expected farmer rating 4.1, got %v", r)
	}
	if got := p.GetSearchText(); len(got) != 2 {
		t.Errorf("Expected empty description to be skipped, got %v", got)
	}
}

func TestShipmentLocationIsDestination(t *testing.T) {
	s := &Shipment{
		Origin:      &Location{City: "Kano", State: "Kano"},
		Destination: &Location{City: "Ikeja", State: "Lagos"},
	}
	if v, _ := s.GetStringFieldValue(StateFacet); v != "Lagos" {
		t.Errorf("Expected destination state Lagos, got %s", v)
	}
}

func TestParseCollection(t *testing.T) {
	if c, err := ParseCollection("shipments"); err != nil || c != Shipments {
		t.Errorf("Expected shipments, got %s %v", c, err)
	}
	if _, err := ParseCollection("orders"); err != ErrUnknownCollection {
		t.Errorf("Expected ErrUnknownCollection, got %v", err)
	}
}
