package units

import (
	"fmt"
	"sort"
	"strings"
)

// Each group converts through a base unit with fixed linear ratios.
// Weight base = gram, volume base = milliliter. Count units (st, port, förp)
// never convert into anything else, so each one is its own group.
var groupTable = map[string]map[string]float64{
	"weight": {
		"g":  1,
		"hg": 100,
		"kg": 1000,
	},
	"volume": {
		"ml":    1,
		"cl":    10,
		"dl":    100,
		"l":     1000,
		"liter": 1000,
	},
	"piece":   {"st": 1},
	"portion": {"port": 1},
	"package": {"förp": 1},
}

func normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

func groupOf(unit string) (string, map[string]float64) {
	u := normalize(unit)
	for name, ratios := range groupTable {
		if _, ok := ratios[u]; ok {
			return name, ratios
		}
	}
	return "", nil
}

// Convert converts quantity from one unit to another.
//
// Cross-group conversions (e.g. "g" to "st") are not meaningful, but this is
// a pricing preview tool, so the policy is fail-soft: the quantity is
// returned unchanged and a warning is appended instead of an error.
func Convert(quantity float64, fromUnit, toUnit string) (float64, []string) {
	from := normalize(fromUnit)
	to := normalize(toUnit)

	if from == to {
		return quantity, nil
	}

	fromGroup, fromRatios := groupOf(from)
	toGroup, _ := groupOf(to)

	if fromGroup == "" || toGroup == "" || fromGroup != toGroup {
		warning := fmt.Sprintf(
			"kan inte konvertera %q till %q, använder okonverterad mängd",
			fromUnit, toUnit,
		)
		return quantity, []string{warning}
	}

	return quantity * fromRatios[from] / fromRatios[to], nil
}

// AreCompatible reports whether two units belong to the same group.
func AreCompatible(u1, u2 string) bool {
	a := normalize(u1)
	b := normalize(u2)
	if a == b {
		return true
	}
	g1, _ := groupOf(a)
	g2, _ := groupOf(b)
	return g1 != "" && g1 == g2
}

// CompatibleUnits returns every unit convertible with u, including u itself.
// Unknown units get a single-element group.
func CompatibleUnits(u string) []string {
	_, ratios := groupOf(u)
	if ratios == nil {
		return []string{normalize(u)}
	}
	out := make([]string, 0, len(ratios))
	for unit := range ratios {
		out = append(out, unit)
	}
	sort.Strings(out)
	return out
}

// Known reports whether the unit appears in the conversion table.
func Known(u string) bool {
	_, ratios := groupOf(u)
	return ratios != nil
}
