package facet

import (
	"math"
	"testing"

	"github.com/grochain/listing-finder/pkg/types"
)

func TestNeutralValuesBuildNoPredicate(t *testing.T) {
	if TextMatch("  ") != nil {
		t.Errorf("Expected blank query to be neutral")
	}
	for _, c := range []types.Choice{"", types.All} {
		if KeyMatch(types.CategoryFacet, c) != nil {
			t.Errorf("Expected %q category to be neutral", c)
		}
		if AnyKeyMatch(c, types.StateFacet, types.CityFacet) != nil {
			t.Errorf("Expected %q location to be neutral", c)
		}
		if RangeMatch(types.PriceFacet, c) != nil {
			t.Errorf("Expected %q price range to be neutral", c)
		}
		if DateMatch(c) != nil {
			t.Errorf("Expected %q date range to be neutral", c)
		}
	}
	if BoolMatch(types.OrganicFacet, false) != nil {
		t.Errorf("Expected false toggle to be neutral")
	}
}

func TestTextMatch(t *testing.T) {
	p := &types.Product{Name: "Fresh Tomatoes", Description: "Vine ripened", Category: "Vegetables"}
	cases := map[string]bool{
		"tomato":     true,
		"  TOMATO  ": true,
		"ripened":    true,
		"vegetables": true,
		"rice":       false,
	}
	for q, expected := range cases {
		if got := TextMatch(q)(p); got != expected {
			t.Errorf("Expected %q to match %v, got %v", q, expected, got)
		}
	}
}

func TestKeyMatchIsCaseSensitive(t *testing.T) {
	p := &types.Product{Category: "Grains"}
	if !KeyMatch(types.CategoryFacet, "Grains")(p) {
		t.Errorf("Expected exact category to match")
	}
	if KeyMatch(types.CategoryFacet, "grains")(p) {
		t.Errorf("Expected lower case category not to match")
	}
	if KeyMatch(types.QualityFacet, "premium")(p) {
		t.Errorf("Expected missing quality not to match")
	}
}

func TestLocationMatchesStateOrCity(t *testing.T) {
	p := &types.Product{Location: &types.Location{City: "Ikeja", State: "Lagos"}}
	match := func(v types.Choice) bool {
		return AnyKeyMatch(v, types.StateFacet, types.CityFacet)(p)
	}
	if !match("Lagos") || !match("Ikeja") {
		t.Errorf("Expected both state and city to match")
	}
	if match("Kano") {
		t.Errorf("Expected other location not to match")
	}
	if AnyKeyMatch("Lagos", types.StateFacet, types.CityFacet)(&types.Product{}) {
		t.Errorf("Expected listing without location not to match")
	}
}

func TestParseRange(t *testing.T) {
	inf := math.Inf(1)
	cases := map[string]Range{
		"1000-2000": {Min: 1000, Max: 2000},
		"5000-":     {Min: 5000, Max: inf},
		"-1000":     {Min: -inf, Max: 1000},
		"abc":       {Min: -inf, Max: inf},
		"":          {Min: -inf, Max: inf},
		" 10 - 20 ": {Min: 10, Max: 20},
	}
	for s, expected := range cases {
		if got := ParseRange(s); got != expected {
			t.Errorf("Expected %q to parse as %v, got %v", s, expected, got)
		}
	}
}

func TestRangeIsInclusive(t *testing.T) {
	r := ParseRange("1200-1800")
	for _, v := range []float64{1200, 1500, 1800} {
		if !r.Contains(v) {
			t.Errorf("Expected %v in range", v)
		}
	}
	if r.Contains(1199.99) || r.Contains(1800.01) {
		t.Errorf("Expected values outside bounds to be excluded")
	}
}

func TestRangeMatchExcludesMissingValues(t *testing.T) {
	price := 100.0
	match := RangeMatch(types.PriceFacet, "abc")
	if !match(&types.Product{Price: &price}) {
		t.Errorf("Expected unbounded range to accept any price")
	}
	if match(&types.Product{}) {
		t.Errorf("Expected listing without price to be excluded")
	}
}

func TestParseDateRange(t *testing.T) {
	day := int64(24*60*60*1000) - 1
	cases := map[string]DateRange{
		"2024-01-13..2024-01-15":                      {From: 1705104000000, To: 1705276800000 + day},
		"2024-01-15T10:30:00Z..2024-01-15T12:00:00Z": {From: 1705314600000, To: 1705320000000},
		"2024-01-15..":                                {From: 1705276800000, To: math.MaxInt64},
		"..2024-01-15T10:30Z":                         {From: math.MinInt64 + 1, To: 1705314600000},
		"soon..later":                                 {From: math.MinInt64 + 1, To: math.MaxInt64},
		"":                                            {From: math.MinInt64 + 1, To: math.MaxInt64},
	}
	for s, expected := range cases {
		if got := ParseDateRange(s); got != expected {
			t.Errorf("Expected %q to parse as %v, got %v", s, expected, got)
		}
	}
}

func TestDateMatchIsInclusive(t *testing.T) {
	match := DateMatch("2024-01-15T10:30:00Z..2024-01-15T12:00:00Z")
	for _, created := range []string{"2024-01-15T10:30:00Z", "2024-01-15T12:00:00+01:00", "2024-01-15T12:00:00Z"} {
		if !match(&types.Product{CreatedAt: created}) {
			t.Errorf("Expected %s in range", created)
		}
	}
	for _, created := range []string{"2024-01-15T10:29:59Z", "2024-01-15T12:00:00.001Z"} {
		if match(&types.Product{CreatedAt: created}) {
			t.Errorf("Expected %s outside range", created)
		}
	}
}

func TestDateMatchExcludesMissingTimestamps(t *testing.T) {
	match := DateMatch("soon..later")
	if !match(&types.Product{CreatedAt: "2024-01-15"}) {
		t.Errorf("Expected unbounded range to accept any readable date")
	}
	for _, created := range []string{"", "yesterday"} {
		if match(&types.Product{CreatedAt: created}) {
			t.Errorf("Expected listing created %q to be excluded", created)
		}
	}
}

func TestBoolMatch(t *testing.T) {
	verified := BoolMatch(types.VerifiedFacet, true)
	if !verified(&types.Product{Farmer: &types.Farmer{Verified: true}}) {
		t.Errorf("Expected verified farmer to match")
	}
	if verified(&types.Product{Farmer: &types.Farmer{}}) {
		t.Errorf("Expected unverified farmer not to match")
	}
	if verified(&types.Product{}) {
		t.Errorf("Expected product without farmer not to match")
	}
	if BoolMatch(types.OrganicFacet, true)(&types.Payment{}) {
		t.Errorf("Expected payment without organic field not to match")
	}
}
