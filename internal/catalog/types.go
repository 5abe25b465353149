package catalog

import "github.com/google/uuid"

// CHOKind is the form factor of a carbohydrate product.
type CHOKind string

const (
	KindGel   CHOKind = "gel"
	KindBar   CHOKind = "bar"
	KindOther CHOKind = "other"
)

// CHOProduct is a solid carbohydrate source (gel, bar, ...). The sugar
// breakdown is informational except for the tolerance screener, which uses
// fructose, maltodextrin and caffeine.
type CHOProduct struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Kind          CHOKind   `json:"kind"`
	CHOGrams      float64   `json:"cho_g"`
	GlucoseGrams  float64   `json:"glucose_g"`
	FructoseGrams float64   `json:"fructose_g"`
	MaltodextrinG float64   `json:"maltodextrin_g"`
	SucroseGrams  float64   `json:"sucrose_g"`
	CaffeineMg    float64   `json:"caffeine_mg"`
	Notes         string    `json:"notes,omitempty"`
}

// FructoseFraction returns the fructose share of total carbohydrate,
// or 0 for a product with no carbohydrate.
func (p CHOProduct) FructoseFraction() float64 {
	if p.CHOGrams <= 0 {
		return 0
	}
	return p.FructoseGrams / p.CHOGrams
}

// Drink is a sports drink described per serving.
type Drink struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	MlPerServing     float64   `json:"ml_per_serving"`
	CHOPerServing    float64   `json:"cho_g_per_serving"`
	SodiumPerServing float64   `json:"sodium_mg_per_serving"`
	Notes            string    `json:"notes,omitempty"`
}

// Electrolyte is a sodium capsule or tablet.
type Electrolyte struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	SodiumPerUnit float64   `json:"sodium_mg_per_unit"`
	Notes         string    `json:"notes,omitempty"`
}
