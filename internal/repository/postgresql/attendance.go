package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, work_date, check_in, check_out,
	time_off_minutes_used, delay_minutes, overtime_minutes, grace_minutes_deducted,
	notes, is_locked, created_at, updated_at, is_deleted
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.WorkDate, &rec.CheckIn, &rec.CheckOut,
		&rec.TimeOffMinutesUsed, &rec.DelayMinutes, &rec.OvertimeMinutes, &rec.GraceMinutesDeducted,
		&rec.Notes, &rec.IsLocked, &rec.CreatedAt, &rec.UpdatedAt, &rec.IsDeleted,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, work_date, check_in, check_out,
			time_off_minutes_used, delay_minutes, overtime_minutes, grace_minutes_deducted,
			notes, is_locked
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.WorkDate,
		rec.CheckIn.Minutes(),
		rec.CheckOut.Minutes(),
		rec.TimeOffMinutesUsed,
		rec.DelayMinutes,
		rec.OvertimeMinutes,
		rec.GraceMinutesDeducted,
		rec.Notes,
		rec.IsLocked,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string, employeeID string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE id = $1 AND employee_id = $2 AND is_deleted = FALSE
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND work_date = $2 AND is_deleted = FALSE
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by date: %w", err)
	}

	return &rec, nil
}

// ListMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListMonth(ctx context.Context, employeeID string, year int, month int, includeLocked bool) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM work_date) = $2
		  AND EXTRACT(MONTH FROM work_date) = $3
		  AND is_deleted = FALSE
	`
	if !includeLocked {
		query += ` AND is_locked = FALSE`
	}
	query += ` ORDER BY work_date ASC`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_in = $2,
			check_out = $3,
			time_off_minutes_used = $4,
			delay_minutes = $5,
			overtime_minutes = $6,
			grace_minutes_deducted = $7,
			notes = $8,
			updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.CheckIn.Minutes(),
		rec.CheckOut.Minutes(),
		rec.TimeOffMinutesUsed,
		rec.DelayMinutes,
		rec.OvertimeMinutes,
		rec.GraceMinutesDeducted,
		rec.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
