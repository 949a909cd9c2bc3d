package postgresql

import (
	"context"
	"fmt"

	"github.com/hazarhq/attendance-backend-go/internal/domain/dashboard"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetStats implements dashboard.DashboardRepository. Deleted and inactive
// employees are left out of both the headcount and the sums.
func (r *dashboardRepository) GetStats(ctx context.Context, year, month int) (*dashboard.Stats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE is_deleted = FALSE AND is_active = TRUE),
			COALESCE(SUM(s.total_delay_minutes), 0),
			COALESCE(SUM(s.total_overtime_minutes), 0),
			COALESCE(SUM(s.total_time_off_minutes_used), 0)
		FROM monthly_summaries s
		JOIN employees e ON e.id = s.employee_id
			AND e.is_deleted = FALSE AND e.is_active = TRUE
		WHERE s.year = $1 AND s.month = $2 AND s.is_deleted = FALSE
	`

	stats := dashboard.Stats{Year: year, Month: month}
	err := q.QueryRow(ctx, query, year, month).Scan(
		&stats.TotalEmployees,
		&stats.TotalDelayMinutes,
		&stats.TotalOvertimeMinutes,
		&stats.TotalTimeOffMinutes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return &stats, nil
}

// TopDelays implements dashboard.DashboardRepository.
func (r *dashboardRepository) TopDelays(ctx context.Context, year, month, limit int) ([]dashboard.EmployeeRanking, error) {
	query := `
		SELECT s.employee_id, e.full_name, s.total_delay_minutes
		FROM monthly_summaries s
		JOIN employees e ON e.id = s.employee_id
			AND e.is_deleted = FALSE AND e.is_active = TRUE
		WHERE s.year = $1 AND s.month = $2 AND s.is_deleted = FALSE
		ORDER BY s.total_delay_minutes DESC
		LIMIT $3
	`

	return r.queryRankings(ctx, query, dashboard.MetricDelayMinutes, year, month, limit)
}

// TopCommitment implements dashboard.DashboardRepository.
func (r *dashboardRepository) TopCommitment(ctx context.Context, year, month, limit int) ([]dashboard.EmployeeRanking, error) {
	query := `
		SELECT s.employee_id, e.full_name,
			   s.total_overtime_minutes - s.total_delay_minutes
		FROM monthly_summaries s
		JOIN employees e ON e.id = s.employee_id
			AND e.is_deleted = FALSE AND e.is_active = TRUE
		WHERE s.year = $1 AND s.month = $2 AND s.is_deleted = FALSE
		ORDER BY s.total_delay_minutes ASC,
				 s.total_overtime_minutes DESC,
				 s.total_time_off_minutes_used ASC
		LIMIT $3
	`

	return r.queryRankings(ctx, query, dashboard.MetricCommitmentScore, year, month, limit)
}

func (r *dashboardRepository) queryRankings(ctx context.Context, query, metric string, year, month, limit int) ([]dashboard.EmployeeRanking, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, year, month, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query rankings: %w", err)
	}
	defer rows.Close()

	var rankings []dashboard.EmployeeRanking
	for rows.Next() {
		rk := dashboard.EmployeeRanking{Metric: metric}
		if err := rows.Scan(&rk.EmployeeID, &rk.FullName, &rk.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan ranking: %w", err)
		}
		rankings = append(rankings, rk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rankings: %w", err)
	}

	return rankings, nil
}
