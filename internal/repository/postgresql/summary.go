package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hazarhq/attendance-backend-go/internal/domain/summary"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type summaryRepository struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepository{db: db}
}

// GetByEmployeeAndMonth implements summary.SummaryRepository.
func (r *summaryRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, year, month int) (*summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, month,
			   total_time_off_minutes_used, total_delay_minutes, total_overtime_minutes,
			   grace_minutes_consumed, remaining_time_off_minutes, remaining_grace_minutes,
			   calculated_at, created_at, updated_at, is_deleted
		FROM monthly_summaries
		WHERE employee_id = $1 AND year = $2 AND month = $3 AND is_deleted = FALSE
	`

	var s summary.MonthlySummary
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(
		&s.ID, &s.EmployeeID, &s.Year, &s.Month,
		&s.TotalTimeOffMinutesUsed, &s.TotalDelayMinutes, &s.TotalOvertimeMinutes,
		&s.GraceMinutesConsumed, &s.RemainingTimeOffMinutes, &s.RemainingGraceMinutes,
		&s.CalculatedAt, &s.CreatedAt, &s.UpdatedAt, &s.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return &s, nil
}

// Upsert implements summary.SummaryRepository.
func (r *summaryRepository) Upsert(ctx context.Context, s *summary.MonthlySummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_summaries (
			employee_id, year, month,
			total_time_off_minutes_used, total_delay_minutes, total_overtime_minutes,
			grace_minutes_consumed, remaining_time_off_minutes, remaining_grace_minutes,
			calculated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, year, month) WHERE NOT is_deleted
		DO UPDATE SET
			total_time_off_minutes_used = EXCLUDED.total_time_off_minutes_used,
			total_delay_minutes = EXCLUDED.total_delay_minutes,
			total_overtime_minutes = EXCLUDED.total_overtime_minutes,
			grace_minutes_consumed = EXCLUDED.grace_minutes_consumed,
			remaining_time_off_minutes = EXCLUDED.remaining_time_off_minutes,
			remaining_grace_minutes = EXCLUDED.remaining_grace_minutes,
			calculated_at = EXCLUDED.calculated_at,
			updated_at = NOW()
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID,
		s.Year,
		s.Month,
		s.TotalTimeOffMinutesUsed,
		s.TotalDelayMinutes,
		s.TotalOvertimeMinutes,
		s.GraceMinutesConsumed,
		s.RemainingTimeOffMinutes,
		s.RemainingGraceMinutes,
		s.CalculatedAt,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly summary: %w", err)
	}

	return nil
}
