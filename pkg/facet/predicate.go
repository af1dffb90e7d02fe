package facet

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/grochain/listing-finder/pkg/sorting"
	"github.com/grochain/listing-finder/pkg/types"
)

type Predicate func(item types.Listing) bool

// TextMatch matches when the trimmed, lower cased query is a substring of any
// searchable field. A blank query is not a constraint and returns nil.
func TextMatch(query string) Predicate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(item types.Listing) bool {
		for _, text := range item.GetSearchText() {
			if strings.Contains(strings.ToLower(text), q) {
				return true
			}
		}
		return false
	}
}

// KeyMatch compares a string field exactly, case sensitive.
func KeyMatch(id types.FacetId, value types.Choice) Predicate {
	if value.IsAll() {
		return nil
	}
	v := string(value)
	return func(item types.Listing) bool {
		actual, ok := item.GetStringFieldValue(id)
		return ok && actual == v
	}
}

// AnyKeyMatch passes when any of the given fields equals value.
func AnyKeyMatch(value types.Choice, ids ...types.FacetId) Predicate {
	if value.IsAll() {
		return nil
	}
	v := string(value)
	return func(item types.Listing) bool {
		for _, id := range ids {
			if actual, ok := item.GetStringFieldValue(id); ok && actual == v {
				return true
			}
		}
		return false
	}
}

type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// ParseRange reads "min-max". A side that is not a number is unbounded.
func ParseRange(s string) Range {
	lo, hi, _ := strings.Cut(strings.TrimSpace(s), "-")
	r := Range{Min: math.Inf(-1), Max: math.Inf(1)}
	if v, err := strconv.ParseFloat(strings.TrimSpace(lo), 64); err == nil && !math.IsNaN(v) {
		r.Min = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(hi), 64); err == nil && !math.IsNaN(v) {
		r.Max = v
	}
	return r
}

func RangeMatch(id types.FacetId, value types.Choice) Predicate {
	if value.IsAll() {
		return nil
	}
	r := ParseRange(string(value))
	return func(item types.Listing) bool {
		v, ok := item.GetNumberFieldValue(id)
		return ok && r.Contains(v)
	}
}

// DateRange bounds creation times in epoch milliseconds, both ends inclusive.
type DateRange struct {
	From int64
	To   int64
}

func (r DateRange) Contains(ms int64) bool {
	return ms != sorting.Oldest && r.From <= ms && ms <= r.To
}

// ParseDateRange reads "from..to". A side that is empty or not a timestamp is
// unbounded. A date-only upper bound covers that whole day.
func ParseDateRange(s string) DateRange {
	from, to, _ := strings.Cut(strings.TrimSpace(s), "..")
	r := DateRange{From: math.MinInt64 + 1, To: math.MaxInt64}
	if v := sorting.ParseTimestamp(from); v != sorting.Oldest {
		r.From = v
	}
	to = strings.TrimSpace(to)
	if v := sorting.ParseTimestamp(to); v != sorting.Oldest {
		r.To = v
		if _, err := time.Parse(time.DateOnly, to); err == nil {
			r.To = v + (24 * time.Hour).Milliseconds() - 1
		}
	}
	return r
}

// DateMatch keeps listings created inside the range. Listings without a
// readable creation time never match an active range.
func DateMatch(value types.Choice) Predicate {
	if value.IsAll() {
		return nil
	}
	r := ParseDateRange(string(value))
	return func(item types.Listing) bool {
		return r.Contains(sorting.ParseTimestamp(item.GetCreated()))
	}
}

// BoolMatch only constrains when required is true.
func BoolMatch(id types.FacetId, required bool) Predicate {
	if !required {
		return nil
	}
	return func(item types.Listing) bool {
		v, ok := item.GetBoolFieldValue(id)
		return ok && v
	}
}
