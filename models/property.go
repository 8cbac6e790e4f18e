package models

// PropertyType enumerates the five listing categories offered on the site.
// The values are the Portuguese labels persisted in the document and used to
// populate form choices.
type PropertyType string

const (
	TypeApartment  PropertyType = "Apartamento"
	TypeHouse      PropertyType = "Casa"
	TypePenthouse  PropertyType = "Cobertura"
	TypeLand       PropertyType = "Terreno"
	TypeCommercial PropertyType = "Comercial"
)

// Valid reports whether t is one of the five fixed categories.
func (t PropertyType) Valid() bool {
	switch t {
	case TypeApartment, TypeHouse, TypePenthouse, TypeLand, TypeCommercial:
		return true
	}
	return false
}

// Property is a listing registered by an owner. Apart from the featured
// flag it is immutable after creation; removal is the only other mutation.
type Property struct {
	ID          string       `json:"id"`
	Type        PropertyType `json:"type"`
	Region      string       `json:"region"`
	CondoName   string       `json:"condoName"`
	Bedrooms    int          `json:"bedrooms"`
	Area        float64      `json:"area"` // m²
	Price       *float64     `json:"price,omitempty"`
	Description string       `json:"description"`
	OwnerName   string       `json:"ownerName"`
	OwnerPhone  string       `json:"ownerPhone"`
	Images      []string     `json:"images"`
	IsFeatured  bool         `json:"isFeatured,omitempty"`
	CreatedAt   int64        `json:"createdAt"`
}
