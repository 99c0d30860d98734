package costcalc

// ItemType says where a calculation row came from.
type ItemType string

const (
	ItemIngredient ItemType = "ingredient"
	ItemRecipe     ItemType = "recipe"
)

// Item is one row in an interactive calculation. Items are ephemeral: they
// live only for the duration of a calculation session and are never
// persisted.
type Item struct {
	ID          string   `json:"id"`
	Type        ItemType `json:"type"`
	Name        string   `json:"name"`
	Quantity    float64  `json:"quantity"`
	Unit        string   `json:"unit"`
	CostPerUnit float64  `json:"cost_per_unit"`
	// CostBasisUnit is the unit the cost is quoted in (e.g. kr/kg for a
	// quantity measured in g).
	CostBasisUnit string `json:"cost_basis_unit"`
}

// Patch is a partial item update; nil fields are left untouched.
type Patch struct {
	Name          *string  `json:"name,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	Unit          *string  `json:"unit,omitempty"`
	CostPerUnit   *float64 `json:"cost_per_unit,omitempty"`
	CostBasisUnit *string  `json:"cost_basis_unit,omitempty"`
}

func (p Patch) apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.CostPerUnit != nil {
		item.CostPerUnit = *p.CostPerUnit
	}
	if p.CostBasisUnit != nil {
		item.CostBasisUnit = *p.CostBasisUnit
	}
}
