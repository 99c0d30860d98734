package impact

import (
	"context"
	"time"

	"github.com/diffen77/gastropartner-sub000/internal/kvstore"
	"github.com/diffen77/gastropartner-sub000/internal/recipe"
)

// MaxHistoryEntries caps the per-recipe version history.
const MaxHistoryEntries = 10

// HistoryEntry is a snapshot of a recipe taken just before a batch update.
type HistoryEntry struct {
	RecipeName string        `json:"recipe_name"`
	Servings   int           `json:"servings"`
	Lines      []recipe.Line `json:"lines"`
	Reason     string        `json:"reason"`
	Timestamp  time.Time     `json:"timestamp"`
}

// History keeps the last MaxHistoryEntries snapshots per recipe, newest
// first, in the key-value store.
type History struct {
	store kvstore.Store
}

func NewHistory(store kvstore.Store) *History {
	return &History{store: store}
}

func historyKey(organizationID, recipeID string) string {
	return organizationID + "/" + recipeID
}

func (h *History) Record(ctx context.Context, organizationID string, rec *recipe.Recipe, reason string) error {
	entry := HistoryEntry{
		RecipeName: rec.Name,
		Servings:   rec.Servings,
		Lines:      append([]recipe.Line(nil), rec.Lines...),
		Reason:     reason,
		Timestamp:  time.Now(),
	}

	key := historyKey(organizationID, rec.ID)

	var entries []HistoryEntry
	if _, err := h.store.Get(ctx, kvstore.NamespaceRecipeHistory, key, &entries); err != nil {
		return err
	}

	entries = append([]HistoryEntry{entry}, entries...)
	if len(entries) > MaxHistoryEntries {
		entries = entries[:MaxHistoryEntries]
	}

	return h.store.Set(ctx, kvstore.NamespaceRecipeHistory, key, entries)
}

func (h *History) List(ctx context.Context, organizationID, recipeID string) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if _, err := h.store.Get(ctx, kvstore.NamespaceRecipeHistory, historyKey(organizationID, recipeID), &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}
	return entries, nil
}
