package ingredient

import "time"

// Ingredient is costed in a fixed unit chosen at creation time. The costing
// unit never changes implicitly; repricing happens by updating CostPerUnit.
type Ingredient struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Unit           string    `json:"unit"`
	CostPerUnit    float64   `json:"cost_per_unit"`
	Supplier       string    `json:"supplier,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
