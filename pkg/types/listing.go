package types

type FacetId uint32

const (
	CategoryFacet FacetId = iota + 1
	CityFacet
	StateFacet
	QualityFacet
	StatusFacet
	PriceFacet
	RatingFacet
	ViewsFacet
	OrganicFacet
	VerifiedFacet
)

// Listing is any item on a browsable screen. Accessors return false as the
// second value when the listing has no such field.
type Listing interface {
	GetId() string
	GetSearchText() []string
	GetStringFieldValue(id FacetId) (string, bool)
	GetNumberFieldValue(id FacetId) (float64, bool)
	GetBoolFieldValue(id FacetId) (bool, bool)
	GetCreated() string
}

type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

func (l *Location) value(id FacetId) (string, bool) {
	if l == nil {
		return "", false
	}
	switch id {
	case CityFacet:
		return l.City, l.City != ""
	case StateFacet:
		return l.State, l.State != ""
	}
	return "", false
}

func textFields(values ...string) []string {
	ret := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			ret = append(ret, v)
		}
	}
	return ret
}
