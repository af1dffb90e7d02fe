package types

func float(v float64) *float64 {
	return &v
}

// MockProducts is the placeholder marketplace shown while the backend has
// no listings to offer.
func MockProducts() []*Product {
	return []*Product{
		{
			Id: "1", Name: "Fresh Tomatoes", Description: "Organic vine-ripened tomatoes from Lagos farms",
			Category: "Vegetables", Price: float(2500), Unit: "basket", Quantity: 50, QualityGrade: "premium",
			Organic: true, Rating: float(4.8), Views: float(245),
			Location: &Location{City: "Ikeja", State: "Lagos"},
			Farmer:   &Farmer{Name: "Adebayo Ogunlesi", Rating: float(4.8), Verified: true},
			Status:   "active", CreatedAt: "2024-01-15T10:30:00Z",
		},
		{
			Id: "2", Name: "Yellow Maize", Description: "Dried maize grain sold in 50kg bags",
			Category: "Grains", Price: float(1800), Unit: "bag", Quantity: 120, QualityGrade: "standard",
			Organic: false, Rating: float(4.5), Views: float(189),
			Location: &Location{City: "Zaria", State: "Kaduna"},
			Farmer:   &Farmer{Name: "Ibrahim Musa", Rating: float(4.5), Verified: true},
			Status:   "active", CreatedAt: "2024-01-14T09:00:00Z",
		},
		{
			Id: "3", Name: "Brown Beans", Description: "Sun dried brown beans, stone free",
			Category: "Legumes", Price: float(1200), Unit: "kg", Quantity: 300, QualityGrade: "premium",
			Organic: true, Rating: float(4.7), Views: float(156),
			Location: &Location{City: "Kano", State: "Kano"},
			Farmer:   &Farmer{Name: "Fatima Bello", Rating: float(4.7), Verified: false},
			Status:   "active", CreatedAt: "2024-01-13T14:15:00Z",
		},
		{
			Id: "4", Name: "Local Rice", Description: "Organic long grain rice, destoned",
			Category: "Grains", Price: float(3200), Unit: "bag", Quantity: 80, QualityGrade: "premium",
			Organic: true, Rating: float(4.9), Views: float(320),
			Location: &Location{City: "Abakaliki", State: "Ebonyi"},
			Farmer:   &Farmer{Name: "Chinedu Okafor", Rating: float(4.9), Verified: true},
			Status:   "active", CreatedAt: "2024-01-16T08:45:00Z",
		},
		{
			Id: "5", Name: "Fresh Pepper", Description: "Hot scotch bonnet peppers",
			Category: "Vegetables", Price: float(800), Unit: "basket", Quantity: 40, QualityGrade: "standard",
			Organic: false, Rating: float(4.3), Views: float(98),
			Location: &Location{City: "Abeokuta", State: "Ogun"},
			Farmer:   &Farmer{Name: "Kemi Adeyemi", Rating: float(4.3), Verified: false},
			Status:   "active", CreatedAt: "2024-01-12T11:20:00Z",
		},
		{
			Id: "6", Name: "Cassava Tubers", Description: "Freshly harvested cassava",
			Category: "Tubers", Price: float(2800), Unit: "bag", Quantity: 60, QualityGrade: "basic",
			Organic: false, Rating: float(4.6), Views: float(175),
			Location: &Location{City: "Ibadan", State: "Oyo"},
			Farmer:   &Farmer{Name: "Oluwaseun Ajayi", Rating: float(4.6), Verified: true},
			Status:   "sold", CreatedAt: "2024-01-11T16:00:00Z",
		},
	}
}
