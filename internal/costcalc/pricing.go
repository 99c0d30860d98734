package costcalc

// DefaultTargetMargin is used until the user saves a preference.
const DefaultTargetMargin = 30

// Candidate margins offered as pricing suggestions. 30% is always the
// recommended one.
var suggestionMargins = []float64{25, 30, 35, 40, 50}

const recommendedMargin = 30

// MarginStatus is the four-bucket classification of a margin against the
// user's target.
type MarginStatus struct {
	Level   string `json:"level"`
	Color   string `json:"color"`
	Message string `json:"message"`
}

// PriceSuggestion is one candidate price for a known cost per serving.
type PriceSuggestion struct {
	Margin      float64 `json:"margin"`
	Price       float64 `json:"price"`
	Profit      float64 `json:"profit"`
	Markup      float64 `json:"markup"`
	Recommended bool    `json:"recommended"`
}

// clampTargetMargin keeps the target inside (0, 100) so the price formula
// stays finite. 100% or more is nonsense input, not an error.
func clampTargetMargin(margin float64) float64 {
	if margin < 0 {
		return 0
	}
	if margin >= 100 {
		return 99
	}
	return margin
}

// SuggestedPrice derives a selling price from a cost and a target margin
// percentage: price = cost / (1 - margin/100).
func SuggestedPrice(costPerServing, targetMargin float64) float64 {
	m := clampTargetMargin(targetMargin)
	if m <= 0 {
		return costPerServing
	}
	return costPerServing / (1 - m/100)
}

// ClassifyMargin buckets a margin percentage against the target. Lower
// bounds are inclusive: exactly 1.2x target is excellent, exactly the target
// is good, exactly 0.7x target is warning.
func ClassifyMargin(currentMargin, targetMargin float64) MarginStatus {
	switch {
	case currentMargin >= targetMargin*1.2:
		return MarginStatus{
			Level:   "excellent",
			Color:   "#16a34a",
			Message: "Utmärkt marginal!",
		}
	case currentMargin >= targetMargin:
		return MarginStatus{
			Level:   "good",
			Color:   "#84cc16",
			Message: "Bra marginal",
		}
	case currentMargin >= targetMargin*0.7:
		return MarginStatus{
			Level:   "warning",
			Color:   "#f59e0b",
			Message: "Låg marginal — se över priset",
		}
	default:
		return MarginStatus{
			Level:   "danger",
			Color:   "#dc2626",
			Message: "Kritiskt låg marginal",
		}
	}
}

// PriceSuggestions computes candidate prices for the fixed margin ladder.
func PriceSuggestions(costPerServing float64) []PriceSuggestion {
	out := make([]PriceSuggestion, 0, len(suggestionMargins))
	for _, m := range suggestionMargins {
		price := SuggestedPrice(costPerServing, m)
		markup := 0.0
		if costPerServing > 0 {
			markup = price / costPerServing
		}
		out = append(out, PriceSuggestion{
			Margin:      m,
			Price:       price,
			Profit:      price - costPerServing,
			Markup:      markup,
			Recommended: m == recommendedMargin,
		})
	}
	return out
}
