package models

// Restaurant is one establishment of the catalog. Name is the natural display
// key; ID is assigned by the loader or generator and is only used by the
// storage backends.
type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Cuisine      string   `json:"cuisine"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviews_count"`
	PriceRange   string   `json:"price_range,omitempty"`
	Location     Location `json:"location"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
}

// DisplayAddress returns the address or a placeholder when it is missing.
func (r Restaurant) DisplayAddress() string {
	if r.Address == "" {
		return AddressPlaceholder
	}
	return r.Address
}

// DisplayPhone returns the phone number or a placeholder when it is missing.
func (r Restaurant) DisplayPhone() string {
	if r.Phone == "" {
		return PhonePlaceholder
	}
	return r.Phone
}
