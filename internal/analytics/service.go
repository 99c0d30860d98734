package analytics

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/diffen77/gastropartner-sub000/internal/menu"
)

// MarginSource provides per-item margin figures. Satisfied by the menu
// service.
type MarginSource interface {
	MarginsForAll(ctx context.Context, organizationID string) ([]menu.Margins, error)
}

type Service struct {
	repo    Repository
	margins MarginSource
	logger  *zap.SugaredLogger
}

func NewService(repo Repository, margins MarginSource, logger *zap.SugaredLogger) *Service {
	return &Service{repo: repo, margins: margins, logger: logger}
}

// RecomputeSnapshot aggregates the current margins of every active menu item
// and stores the result. An organization without active items keeps its
// previous snapshot, if any.
func (s *Service) RecomputeSnapshot(ctx context.Context, organizationID string) (*Snapshot, error) {
	all, err := s.margins.MarginsForAll(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if len(all) == 0 {
		s.logger.Infow("skipping margin snapshot, no active items", "org_id", organizationID)
		return nil, nil
	}

	snapshot := aggregate(organizationID, all)

	if err := s.repo.Upsert(ctx, snapshot); err != nil {
		return nil, err
	}

	s.logger.Infow("margin snapshot recomputed",
		"org_id", organizationID,
		"items", snapshot.ItemCount,
		"avg_margin_pct", snapshot.AvgMarginPct,
	)

	stored, err := s.repo.Get(ctx, organizationID)
	if err != nil {
		return &snapshot, nil
	}
	return stored, nil
}

func aggregate(organizationID string, all []menu.Margins) Snapshot {
	values := make([]float64, 0, len(all))
	snapshot := Snapshot{OrganizationID: organizationID, ItemCount: len(all)}

	for _, m := range all {
		values = append(values, m.MarginPct)
		switch m.Status.Level {
		case "excellent":
			snapshot.ExcellentCount++
		case "good":
			snapshot.GoodCount++
		case "warning":
			snapshot.WarningCount++
		case "danger":
			snapshot.DangerCount++
		}
	}

	sort.Float64s(values)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	snapshot.AvgMarginPct = sum / float64(len(values))
	snapshot.MedianMarginPct = values[len(values)/2]

	return snapshot
}

// Snapshot returns the stored aggregate for the organization.
func (s *Service) Snapshot(ctx context.Context, organizationID string) (*Snapshot, error) {
	return s.repo.Get(ctx, organizationID)
}
