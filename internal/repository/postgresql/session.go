package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/auth"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) auth.SessionRepository {
	return &sessionRepository{db: db}
}

// Create implements auth.SessionRepository.
func (r *sessionRepository) Create(ctx context.Context, s *auth.UserSession) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_sessions (employee_id, token_id, login_at, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, s.EmployeeID, s.TokenID, s.LoginAt).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	s.IsActive = true

	return nil
}

// ListSince implements auth.SessionRepository.
func (r *sessionRepository) ListSince(ctx context.Context, employeeID string, since time.Time) ([]auth.UserSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, token_id, login_at, logout_at, is_active,
			   created_at, updated_at, is_deleted
		FROM user_sessions
		WHERE employee_id = $1 AND login_at >= $2 AND is_deleted = FALSE
		ORDER BY login_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []auth.UserSession
	for rows.Next() {
		var s auth.UserSession
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.TokenID, &s.LoginAt, &s.LogoutAt, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt, &s.IsDeleted,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// CloseAllForEmployee implements auth.SessionRepository.
func (r *sessionRepository) CloseAllForEmployee(ctx context.Context, employeeID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE user_sessions
		SET is_active = FALSE, logout_at = NOW(), updated_at = NOW()
		WHERE employee_id = $1 AND is_active = TRUE AND is_deleted = FALSE
		RETURNING token_id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to close sessions: %w", err)
	}
	defer rows.Close()

	var tokenIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan token id: %w", err)
		}
		tokenIDs = append(tokenIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate token ids: %w", err)
	}

	return tokenIDs, nil
}
