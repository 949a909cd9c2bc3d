package dashboard

import (
	"context"

	"github.com/hazarhq/attendance-backend-go/internal/domain/dashboard"
	"github.com/hazarhq/attendance-backend-go/internal/domain/summary"
)

const defaultRankingLimit = 5

type dashboardService struct {
	dashboardRepo dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

// GetStats implements dashboard.DashboardService.
func (s *dashboardService) GetStats(ctx context.Context, year, month int) (*dashboard.Stats, error) {
	if err := summary.ValidatePeriod(year, month); err != nil {
		return nil, err
	}
	return s.dashboardRepo.GetStats(ctx, year, month)
}

// TopDelays implements dashboard.DashboardService.
func (s *dashboardService) TopDelays(ctx context.Context, year, month, limit int) ([]dashboard.EmployeeRanking, error) {
	if err := summary.ValidatePeriod(year, month); err != nil {
		return nil, err
	}
	if limit < 1 || limit > 50 {
		limit = defaultRankingLimit
	}
	return s.dashboardRepo.TopDelays(ctx, year, month, limit)
}

// TopCommitment implements dashboard.DashboardService.
func (s *dashboardService) TopCommitment(ctx context.Context, year, month, limit int) ([]dashboard.EmployeeRanking, error) {
	if err := summary.ValidatePeriod(year, month); err != nil {
		return nil, err
	}
	if limit < 1 || limit > 50 {
		limit = defaultRankingLimit
	}
	return s.dashboardRepo.TopCommitment(ctx, year, month, limit)
}
