package postgresql

import (
	"context"
	"fmt"

	"github.com/hazarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
)

type timeOffRepository struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) attendance.TimeOffRepository {
	return &timeOffRepository{db: db}
}

// Create implements attendance.TimeOffRepository.
func (r *timeOffRepository) Create(ctx context.Context, rec attendance.TimeOffRecord) (attendance.TimeOffRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_off_records (
			employee_id, time_off_date, minutes_used, reason, is_used_for_delay
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.TimeOffDate,
		rec.MinutesUsed,
		rec.Reason,
		rec.IsUsedForDelay,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		return attendance.TimeOffRecord{}, fmt.Errorf("failed to create time-off record: %w", err)
	}

	return rec, nil
}

// ListMonth implements attendance.TimeOffRepository.
func (r *timeOffRepository) ListMonth(ctx context.Context, employeeID string, year int, month int) ([]attendance.TimeOffRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, time_off_date, minutes_used, reason, is_used_for_delay,
			   created_at, updated_at, is_deleted
		FROM time_off_records
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM time_off_date) = $2
		  AND EXTRACT(MONTH FROM time_off_date) = $3
		  AND is_deleted = FALSE
		ORDER BY time_off_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list time-off records: %w", err)
	}
	defer rows.Close()

	var records []attendance.TimeOffRecord
	for rows.Next() {
		var rec attendance.TimeOffRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.TimeOffDate, &rec.MinutesUsed, &rec.Reason, &rec.IsUsedForDelay,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.IsDeleted,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time-off record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time-off records: %w", err)
	}

	return records, nil
}
