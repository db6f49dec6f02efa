package models

// Filters is the transient, per-session search configuration. It is never
// persisted; a session starts from DefaultFilters and the filter sheet
// replaces it wholesale on apply.
type Filters struct {
	Country       string   `json:"country"`
	State         string   `json:"state"`
	City          string   `json:"city"`
	ZipCode       string   `json:"zipCode"`
	PropertyTypes []string `json:"propertyTypes"`
	MinPrice      float64  `json:"minPrice"`
	MaxPrice      float64  `json:"maxPrice"`
	MinBedrooms   int      `json:"minBedrooms"`
	MaxBedrooms   int      `json:"maxBedrooms"`
	MinBathrooms  int      `json:"minBathrooms"`
	MaxBathrooms  int      `json:"maxBathrooms"`
	Amenities     []string `json:"amenities"`
}

// DefaultFilters returns the reset configuration the filter sheet starts from.
func DefaultFilters() Filters {
	return Filters{
		Country:       "",
		State:         "",
		City:          "",
		ZipCode:       "",
		PropertyTypes: []string{},
		MinPrice:      0,
		MaxPrice:      10000000,
		MinBedrooms:   0,
		MaxBedrooms:   10,
		MinBathrooms:  0,
		MaxBathrooms:  10,
		Amenities:     []string{},
	}
}
