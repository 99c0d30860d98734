package vat

import "fmt"

// Rate is one of the Swedish VAT brackets. The set is closed: anything else
// is rejected at validation time.
type Rate string

const (
	RateStandard    Rate = "standard"     // 25% — alcohol, non-food retail
	RateReducedFood Rate = "reduced_food" // 12% — restaurang- och livsmedelsmoms
	RateCultural    Rate = "cultural"     // 6% — culture, events
	RateZero        Rate = "zero"         // 0% — exempt
)

// Mode states whether a stored selling price already includes VAT.
type Mode string

const (
	ModeInclusive Mode = "inclusive"
	ModeExclusive Mode = "exclusive"
)

func (r Rate) Percent() float64 {
	switch r {
	case RateStandard:
		return 25
	case RateReducedFood:
		return 12
	case RateCultural:
		return 6
	case RateZero:
		return 0
	}
	return 0
}

func (r Rate) Valid() bool {
	switch r {
	case RateStandard, RateReducedFood, RateCultural, RateZero:
		return true
	}
	return false
}

func (m Mode) Valid() bool {
	return m == ModeInclusive || m == ModeExclusive
}

func ParseRate(s string) (Rate, error) {
	r := Rate(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown VAT rate %q", s)
	}
	return r, nil
}

func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown VAT mode %q", s)
	}
	return m, nil
}

// NetAmount returns the VAT-exclusive part of price.
func NetAmount(price float64, rate Rate, mode Mode) float64 {
	if mode == ModeExclusive {
		return price
	}
	return price / (1 + rate.Percent()/100)
}

// GrossAmount returns the VAT-inclusive total for price.
func GrossAmount(price float64, rate Rate, mode Mode) float64 {
	if mode == ModeInclusive {
		return price
	}
	return price * (1 + rate.Percent()/100)
}

// Amount returns the VAT portion of price.
func Amount(price float64, rate Rate, mode Mode) float64 {
	return GrossAmount(price, rate, mode) - NetAmount(price, rate, mode)
}
