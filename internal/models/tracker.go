package models

// PricePoint is one historical VP price observation for a tracked skin
type PricePoint struct {
	Date string `json:"date"`
	VP   int    `json:"vp"`
}

// TrackedSkin is a skin whose estimated VP price is tracked over time
type TrackedSkin struct {
	Slug             string       `json:"slug"`
	Name             string       `json:"name"`
	Weapon           string       `json:"weapon"`
	ImageURL         string       `json:"imageUrl"`
	EstimatedVPPrice int          `json:"estimatedVpPrice"`
	PriceHistory     []PricePoint `json:"priceHistory"`
}
