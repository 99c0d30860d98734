package kvstore

import (
	"context"
	"testing"
	"time"
)

type prefs struct {
	TargetMargin float64 `json:"target_margin"`
}

func TestMemoryStoreSetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, NamespacePreferences, "org-1", prefs{TargetMargin: 35}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got prefs
	found, err := store.Get(ctx, NamespacePreferences, "org-1", &got)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found {
		t.Fatal("expected key to exist")
	}
	if got.TargetMargin != 35 {
		t.Errorf("target margin = %v, want 35", got.TargetMargin)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	var got prefs
	found, err := store.Get(context.Background(), NamespacePreferences, "nope", &got)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found {
		t.Error("missing key reported as found")
	}
}

func TestMemoryStoreGetFreshDiscardsStale(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	now := time.Now()
	store.Now = func() time.Time { return now }

	if err := store.Set(ctx, NamespaceWizard, "org-1/onboarding", prefs{TargetMargin: 30}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	// Three hours later the wizard state is past its 2h window.
	store.Now = func() time.Time { return now.Add(3 * time.Hour) }

	var got prefs
	found, err := store.GetFresh(ctx, NamespaceWizard, "org-1/onboarding", WizardMaxAge, &got)
	if err != nil {
		t.Fatalf("GetFresh failed: %v", err)
	}
	if found {
		t.Error("stale entry should be treated as absent")
	}

	// And the stale entry is gone even for a plain Get.
	found, _ = store.Get(ctx, NamespaceWizard, "org-1/onboarding", &got)
	if found {
		t.Error("stale entry should have been deleted")
	}
}

func TestMemoryStoreGetFreshKeepsRecent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, NamespaceWizard, "k", prefs{TargetMargin: 30}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got prefs
	found, err := store.GetFresh(ctx, NamespaceWizard, "k", WizardMaxAge, &got)
	if err != nil || !found {
		t.Fatalf("fresh entry should be returned, found=%v err=%v", found, err)
	}
}

func TestIsStale(t *testing.T) {
	now := time.Now()
	if IsStale(now.Add(-time.Hour), 2*time.Hour, now) {
		t.Error("1h old entry with 2h window is not stale")
	}
	if !IsStale(now.Add(-3*time.Hour), 2*time.Hour, now) {
		t.Error("3h old entry with 2h window is stale")
	}
}
