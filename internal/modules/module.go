package modules

import "errors"

// Module identifies a subscribable feature area. The set is closed: adding a
// module means adding a constant and extending the switches below, which the
// compiler then checks everywhere.
type Module string

const (
	CostControl  Module = "cost_control"
	MenuPlanning Module = "menu_planning"
	Analytics    Module = "analytics"
	Onboarding   Module = "onboarding"
)

var ErrUnknownModule = errors.New("unknown module")

// All lists every module in a stable order.
func All() []Module {
	return []Module{CostControl, MenuPlanning, Analytics, Onboarding}
}

// Valid reports whether m names a known module.
func Valid(m Module) bool {
	switch m {
	case CostControl, MenuPlanning, Analytics, Onboarding:
		return true
	}
	return false
}

// Capabilities are the concrete switches a module grants. Handlers check
// these rather than comparing module names.
type Capabilities struct {
	RecipeCosting  bool `json:"recipe_costing"`
	MarginAnalysis bool `json:"margin_analysis"`
	MenuManagement bool `json:"menu_management"`
	OrgWideReports bool `json:"org_wide_reports"`
	GuidedSetup    bool `json:"guided_setup"`
}

// CapabilitiesOf maps each module to what it unlocks.
func CapabilitiesOf(m Module) (Capabilities, error) {
	switch m {
	case CostControl:
		return Capabilities{RecipeCosting: true, MarginAnalysis: true}, nil
	case MenuPlanning:
		return Capabilities{MenuManagement: true}, nil
	case Analytics:
		return Capabilities{OrgWideReports: true}, nil
	case Onboarding:
		return Capabilities{GuidedSetup: true}, nil
	}
	return Capabilities{}, ErrUnknownModule
}

// merge ORs two capability sets.
func merge(a, b Capabilities) Capabilities {
	return Capabilities{
		RecipeCosting:  a.RecipeCosting || b.RecipeCosting,
		MarginAnalysis: a.MarginAnalysis || b.MarginAnalysis,
		MenuManagement: a.MenuManagement || b.MenuManagement,
		OrgWideReports: a.OrgWideReports || b.OrgWideReports,
		GuidedSetup:    a.GuidedSetup || b.GuidedSetup,
	}
}
