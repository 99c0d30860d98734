package kvstore

import (
	"context"
	"time"
)

// Namespaces used across the application.
const (
	NamespacePreferences   = "preferences"
	NamespaceRecipeHistory = "recipe_history"
	NamespaceWizard        = "wizard"
)

// WizardMaxAge is how long saved wizard progress stays usable before it is
// discarded on read.
const WizardMaxAge = 2 * time.Hour

// Store is a namespaced JSON key-value store. It replaces ad-hoc timestamp
// arithmetic with explicit staleness: GetFresh treats entries older than
// maxAge as absent.
type Store interface {
	// Get unmarshals the stored value into dest. Returns false when the key
	// does not exist.
	Get(ctx context.Context, namespace, key string, dest interface{}) (bool, error)

	// GetFresh behaves like Get but discards entries older than maxAge.
	GetFresh(ctx context.Context, namespace, key string, maxAge time.Duration, dest interface{}) (bool, error)

	Set(ctx context.Context, namespace, key string, value interface{}) error

	Delete(ctx context.Context, namespace, key string) error
}

// IsStale is the single staleness rule used by every implementation.
func IsStale(updatedAt time.Time, maxAge time.Duration, now time.Time) bool {
	return now.Sub(updatedAt) > maxAge
}
