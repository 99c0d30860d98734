package modules

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func newTestService() *Service {
	return NewService(NewInMemoryRepository(), zap.NewNop().Sugar())
}

func TestEnableRejectsUnknownModule(t *testing.T) {
	s := newTestService()

	if err := s.Enable(context.Background(), "org-1", Module("catering")); err != ErrUnknownModule {
		t.Errorf("expected ErrUnknownModule, got %v", err)
	}
}

func TestEnableDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	if err := s.EnableDefaults(ctx, "org-1"); err != nil {
		t.Fatalf("enable defaults failed: %v", err)
	}

	for _, m := range DefaultModules {
		on, err := s.IsEnabled(ctx, "org-1", m)
		if err != nil {
			t.Fatal(err)
		}
		if !on {
			t.Errorf("default module %s not enabled", m)
		}
	}

	on, err := s.IsEnabled(ctx, "org-1", Analytics)
	if err != nil {
		t.Fatal(err)
	}
	if on {
		t.Error("analytics should not be on by default")
	}
}

func TestEnableIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	if err := s.Enable(ctx, "org-1", CostControl); err != nil {
		t.Fatal(err)
	}
	if err := s.Enable(ctx, "org-1", CostControl); err != nil {
		t.Fatal(err)
	}

	enabled, err := s.Enabled(ctx, "org-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(enabled) != 1 {
		t.Errorf("enabled = %v, want a single cost_control entry", enabled)
	}
}

func TestCapabilitiesMerge(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	if err := s.Enable(ctx, "org-1", CostControl); err != nil {
		t.Fatal(err)
	}
	if err := s.Enable(ctx, "org-1", MenuPlanning); err != nil {
		t.Fatal(err)
	}

	caps, err := s.CapabilitiesFor(ctx, "org-1")
	if err != nil {
		t.Fatal(err)
	}
	if !caps.RecipeCosting || !caps.MarginAnalysis || !caps.MenuManagement {
		t.Errorf("capabilities = %+v, want costing+margins+menu", caps)
	}
	if caps.OrgWideReports || caps.GuidedSetup {
		t.Errorf("capabilities = %+v, reports and setup must stay off", caps)
	}
}

func TestDisable(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	if err := s.Enable(ctx, "org-1", Analytics); err != nil {
		t.Fatal(err)
	}
	if err := s.Disable(ctx, "org-1", Analytics); err != nil {
		t.Fatal(err)
	}

	on, err := s.IsEnabled(ctx, "org-1", Analytics)
	if err != nil {
		t.Fatal(err)
	}
	if on {
		t.Error("analytics still enabled after disable")
	}
}
