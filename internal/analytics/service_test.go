package analytics

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/diffen77/gastropartner-sub000/internal/costcalc"
	"github.com/diffen77/gastropartner-sub000/internal/menu"
)

type fakeMarginSource struct {
	margins []menu.Margins
}

func (f *fakeMarginSource) MarginsForAll(ctx context.Context, organizationID string) ([]menu.Margins, error) {
	return f.margins, nil
}

func marginAt(pct, target float64) menu.Margins {
	return menu.Margins{
		MarginPct: pct,
		Status:    costcalc.ClassifyMargin(pct, target),
	}
}

func TestRecomputeAggregatesMargins(t *testing.T) {
	source := &fakeMarginSource{margins: []menu.Margins{
		marginAt(40, 30), // excellent
		marginAt(30, 30), // good
		marginAt(22, 30), // warning
		marginAt(10, 30), // danger
	}}
	s := NewService(NewInMemoryRepository(), source, zap.NewNop().Sugar())

	snapshot, err := s.RecomputeSnapshot(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("recompute failed: %v", err)
	}
	if snapshot == nil {
		t.Fatal("expected a snapshot")
	}

	if snapshot.ItemCount != 4 {
		t.Errorf("item count = %d, want 4", snapshot.ItemCount)
	}
	if snapshot.AvgMarginPct != 25.5 {
		t.Errorf("avg = %v, want 25.5", snapshot.AvgMarginPct)
	}
	if snapshot.MedianMarginPct != 30 {
		t.Errorf("median = %v, want 30", snapshot.MedianMarginPct)
	}
	if snapshot.ExcellentCount != 1 || snapshot.GoodCount != 1 || snapshot.WarningCount != 1 || snapshot.DangerCount != 1 {
		t.Errorf("status counts = %+v, want one of each", snapshot)
	}
}

func TestRecomputeSkipsEmptyMenu(t *testing.T) {
	s := NewService(NewInMemoryRepository(), &fakeMarginSource{}, zap.NewNop().Sugar())

	snapshot, err := s.RecomputeSnapshot(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("recompute failed: %v", err)
	}
	if snapshot != nil {
		t.Errorf("empty menu should not produce a snapshot, got %+v", snapshot)
	}

	if _, err := s.Snapshot(context.Background(), "org-1"); err != ErrNoSnapshot {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestSnapshotIsUpdatedInPlace(t *testing.T) {
	source := &fakeMarginSource{margins: []menu.Margins{marginAt(20, 30)}}
	s := NewService(NewInMemoryRepository(), source, zap.NewNop().Sugar())

	first, err := s.RecomputeSnapshot(context.Background(), "org-1")
	if err != nil {
		t.Fatal(err)
	}

	source.margins = []menu.Margins{marginAt(50, 30)}
	second, err := s.RecomputeSnapshot(context.Background(), "org-1")
	if err != nil {
		t.Fatal(err)
	}

	if second.ID != first.ID {
		t.Errorf("recompute created a new row: %d then %d", first.ID, second.ID)
	}
	if second.AvgMarginPct != 50 {
		t.Errorf("avg = %v, want 50", second.AvgMarginPct)
	}
}
