package types

type Farmer struct {
	Name     string   `json:"name"`
	Rating   *float64 `json:"rating,omitempty"`
	Verified bool     `json:"verified"`
}

type Product struct {
	Id           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        *float64  `json:"price,omitempty"`
	Unit         string    `json:"unit,omitempty"`
	Quantity     float64   `json:"quantity"`
	QualityGrade string    `json:"qualityGrade,omitempty"`
	Organic      bool      `json:"organic"`
	Rating       *float64  `json:"rating,omitempty"`
	Views        *float64  `json:"views,omitempty"`
	Location     *Location `json:"location,omitempty"`
	Farmer       *Farmer   `json:"farmer,omitempty"`
	Status       string    `json:"status,omitempty"`
	CreatedAt    string    `json:"createdAt"`
}

func (p *Product) GetId() string { return p.Id }

func (p *Product) GetSearchText() []string {
	return textFields(p.Name, p.Description, p.Category)
}

func (p *Product) GetStringFieldValue(id FacetId) (string, bool) {
	switch id {
	case CategoryFacet:
		return p.Category, p.Category != ""
	case QualityFacet:
		return p.QualityGrade, p.QualityGrade != ""
	case StatusFacet:
		return p.Status, p.Status != ""
	case CityFacet, StateFacet:
		return p.Location.value(id)
	}
	return "", false
}

func (p *Product) GetNumberFieldValue(id FacetId) (float64, bool) {
	switch id {
	case PriceFacet:
		return deref(p.Price)
	case RatingFacet:
		if p.Rating == nil && p.Farmer != nil {
			return deref(p.Farmer.Rating)
		}
		return deref(p.Rating)
	case ViewsFacet:
		return deref(p.Views)
	}
	return 0, false
}

func (p *Product) GetBoolFieldValue(id FacetId) (bool, bool) {
	switch id {
	case OrganicFacet:
		return p.Organic, true
	case VerifiedFacet:
		if p.Farmer == nil {
			return false, false
		}
		return p.Farmer.Verified, true
	}
	return false, false
}

func (p *Product) GetCreated() string { return p.CreatedAt }

type Partner struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Location  *Location `json:"location,omitempty"`
	Rating    *float64  `json:"rating,omitempty"`
	Verified  bool      `json:"verified"`
	Farmers   *float64  `json:"farmerCount,omitempty"`
	Revenue   *float64  `json:"revenue,omitempty"`
	CreatedAt string    `json:"joinedAt"`
}

func (p *Partner) GetId() string { return p.Id }

func (p *Partner) GetSearchText() []string {
	return textFields(p.Name, p.Email, p.Type)
}

func (p *Partner) GetStringFieldValue(id FacetId) (string, bool) {
	switch id {
	case CategoryFacet:
		return p.Type, p.Type != ""
	case StatusFacet:
		return p.Status, p.Status != ""
	case CityFacet, StateFacet:
		return p.Location.value(id)
	}
	return "", false
}

func (p *Partner) GetNumberFieldValue(id FacetId) (float64, bool) {
	switch id {
	case PriceFacet:
		return deref(p.Revenue)
	case RatingFacet:
		return deref(p.Rating)
	case ViewsFacet:
		return deref(p.Farmers)
	}
	return 0, false
}

func (p *Partner) GetBoolFieldValue(id FacetId) (bool, bool) {
	if id == VerifiedFacet {
		return p.Verified, true
	}
	return false, false
}

func (p *Partner) GetCreated() string { return p.CreatedAt }

type Payment struct {
	Id          string   `json:"id"`
	Reference   string   `json:"reference"`
	Description string   `json:"description"`
	Payer       string   `json:"payer"`
	Method      string   `json:"method"`
	Status      string   `json:"status"`
	Amount      *float64 `json:"amount,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

func (p *Payment) GetId() string { return p.Id }

func (p *Payment) GetSearchText() []string {
	return textFields(p.Reference, p.Description, p.Payer)
}

func (p *Payment) GetStringFieldValue(id FacetId) (string, bool) {
	switch id {
	case CategoryFacet:
		return p.Method, p.Method != ""
	case StatusFacet:
		return p.Status, p.Status != ""
	}
	return "", false
}

func (p *Payment) GetNumberFieldValue(id FacetId) (float64, bool) {
	if id == PriceFacet {
		return deref(p.Amount)
	}
	return 0, false
}

func (p *Payment) GetBoolFieldValue(id FacetId) (bool, bool) { return false, false }

func (p *Payment) GetCreated() string { return p.CreatedAt }

type Shipment struct {
	Id             string    `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	Carrier        string    `json:"carrier"`
	Status         string    `json:"status"`
	Origin         *Location `json:"origin,omitempty"`
	Destination    *Location `json:"destination,omitempty"`
	Cost           *float64  `json:"cost,omitempty"`
	CreatedAt      string    `json:"createdAt"`
}

func (s *Shipment) GetId() string { return s.Id }

func (s *Shipment) GetSearchText() []string {
	ret := textFields(s.TrackingNumber, s.Carrier)
	if s.Destination != nil {
		ret = append(ret, textFields(s.Destination.City, s.Destination.State)...)
	}
	return ret
}

// Location facets match the destination.
func (s *Shipment) GetStringFieldValue(id FacetId) (string, bool) {
	switch id {
	case CategoryFacet:
		return s.Carrier, s.Carrier != ""
	case StatusFacet:
		return s.Status, s.Status != ""
	case CityFacet, StateFacet:
		return s.Destination.value(id)
	}
	return "", false
}

func (s *Shipment) GetNumberFieldValue(id FacetId) (float64, bool) {
	if id == PriceFacet {
		return deref(s.Cost)
	}
	return 0, false
}

func (s *Shipment) GetBoolFieldValue(id FacetId) (bool, bool) { return false, false }

func (s *Shipment) GetCreated() string { return s.CreatedAt }

type HarvestApproval struct {
	Id           string    `json:"id"`
	CropType     string    `json:"cropType"`
	FarmerName   string    `json:"farmerName"`
	QualityGrade string    `json:"qualityGrade"`
	Status       string    `json:"status"`
	Quantity     *float64  `json:"quantity,omitempty"`
	Value        *float64  `json:"estimatedValue,omitempty"`
	Organic      bool      `json:"organic"`
	Location     *Location `json:"location,omitempty"`
	CreatedAt    string    `json:"submittedAt"`
}

func (h *HarvestApproval) GetId() string { return h.Id }

func (h *HarvestApproval) GetSearchText() []string {
	return textFields(h.CropType, h.FarmerName)
}

func (h *HarvestApproval) GetStringFieldValue(id FacetId) (string, bool) {
	switch id {
	case CategoryFacet:
		return h.CropType, h.CropType != ""
	case QualityFacet:
		return h.QualityGrade, h.QualityGrade != ""
	case StatusFacet:
		return h.Status, h.Status != ""
	case CityFacet, StateFacet:
		return h.Location.value(id)
	}
	return "", false
}

func (h *HarvestApproval) GetNumberFieldValue(id FacetId) (float64, bool) {
	switch id {
	case PriceFacet:
		return deref(h.Value)
	case ViewsFacet:
		return deref(h.Quantity)
	}
	return 0, false
}

func (h *HarvestApproval) GetBoolFieldValue(id FacetId) (bool, bool) {
	if id == OrganicFacet {
		return h.Organic, true
	}
	return false, false
}

func (h *HarvestApproval) GetCreated() string { return h.CreatedAt }

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
