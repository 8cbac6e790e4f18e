package models

// BuyerInterest is a buyer's standing search profile, independent of any
// specific property. Interests are append-only: no operation mutates or
// removes one.
type BuyerInterest struct {
	ID              string       `json:"id"`
	Type            PropertyType `json:"type"`
	Region          string       `json:"region"`
	MinBedrooms     int          `json:"minBedrooms"`
	MinArea         float64      `json:"minArea"`
	Characteristics string       `json:"characteristics,omitempty"`
	BuyerName       string       `json:"buyerName"`
	BuyerPhone      string       `json:"buyerPhone"`
	CreatedAt       int64        `json:"createdAt"`
}
