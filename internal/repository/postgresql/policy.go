package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hazarhq/attendance-backend-go/internal/domain/policy"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}

const policyColumns = `
	id, workday_start, workday_end, monthly_time_off_allowance,
	grace_minutes_allowance, is_active, created_at, updated_at, is_deleted
`

func scanPolicy(row pgx.Row) (policy.Policy, error) {
	var p policy.Policy
	err := row.Scan(
		&p.ID, &p.WorkdayStart, &p.WorkdayEnd, &p.MonthlyTimeOffAllowance,
		&p.GraceMinutesAllowance, &p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.IsDeleted,
	)
	return p, err
}

// GetActive implements policy.PolicyRepository.
func (r *policyRepository) GetActive(ctx context.Context) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + policyColumns + `
		FROM attendance_policies
		WHERE is_active = TRUE AND is_deleted = FALSE
		LIMIT 1
	`

	p, err := scanPolicy(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Policy{}, policy.ErrNoActivePolicy
		}
		return policy.Policy{}, fmt.Errorf("failed to get active policy: %w", err)
	}

	return p, nil
}

// GetByID implements policy.PolicyRepository.
func (r *policyRepository) GetByID(ctx context.Context, id string) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + policyColumns + `
		FROM attendance_policies
		WHERE id = $1 AND is_deleted = FALSE
	`

	p, err := scanPolicy(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Policy{}, policy.ErrPolicyNotFound
		}
		return policy.Policy{}, fmt.Errorf("failed to get policy: %w", err)
	}

	return p, nil
}

// Create implements policy.PolicyRepository.
func (r *policyRepository) Create(ctx context.Context, p policy.Policy) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_policies (
			workday_start, workday_end, monthly_time_off_allowance,
			grace_minutes_allowance, is_active
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.WorkdayStart.Minutes(),
		p.WorkdayEnd.Minutes(),
		p.MonthlyTimeOffAllowance,
		p.GraceMinutesAllowance,
		p.IsActive,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return policy.Policy{}, policy.ErrActivePolicyExists
		}
		return policy.Policy{}, fmt.Errorf("failed to create policy: %w", err)
	}

	return p, nil
}

// Update implements policy.PolicyRepository.
func (r *policyRepository) Update(ctx context.Context, p policy.Policy) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_policies
		SET workday_start = $2,
			workday_end = $3,
			monthly_time_off_allowance = $4,
			grace_minutes_allowance = $5,
			is_active = $6,
			updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.WorkdayStart.Minutes(),
		p.WorkdayEnd.Minutes(),
		p.MonthlyTimeOffAllowance,
		p.GraceMinutesAllowance,
		p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Policy{}, policy.ErrPolicyNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return policy.Policy{}, policy.ErrActivePolicyExists
		}
		return policy.Policy{}, fmt.Errorf("failed to update policy: %w", err)
	}

	return p, nil
}

// DeactivateAllExcept implements policy.PolicyRepository.
func (r *policyRepository) DeactivateAllExcept(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_policies
		SET is_active = FALSE, updated_at = NOW()
		WHERE id <> $1 AND is_active = TRUE AND is_deleted = FALSE
	`

	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to deactivate policies: %w", err)
	}

	return nil
}
