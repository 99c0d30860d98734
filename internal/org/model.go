package org

import "time"

// OnboardingStatus is a closed set. Unknown is reported when the status
// cannot be fetched; it is never silently promoted to completed.
type OnboardingStatus string

const (
	OnboardingNotStarted OnboardingStatus = "not_started"
	OnboardingInProgress OnboardingStatus = "in_progress"
	OnboardingCompleted  OnboardingStatus = "completed"
	OnboardingUnknown    OnboardingStatus = "unknown"
)

// Organization is the tenant. Every domain row is scoped to exactly one
// organization.
type Organization struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	OrgNumber        string           `json:"org_number,omitempty"`
	OnboardingStatus OnboardingStatus `json:"onboarding_status"`
	CreatedAt        time.Time        `json:"created_at"`
}

// WizardState is the persisted progress of an onboarding wizard flow. It is
// discarded when older than the staleness window.
type WizardState struct {
	Flow    string                 `json:"flow"`
	Step    int                    `json:"step"`
	Data    map[string]interface{} `json:"data,omitempty"`
	SavedAt time.Time              `json:"saved_at"`
}
