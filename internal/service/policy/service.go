package policy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/policy"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
	"github.com/hazarhq/attendance-backend-go/internal/repository/postgresql"
)

type policyService struct {
	db         *database.DB
	policyRepo policy.PolicyRepository
}

func NewPolicyService(db *database.DB, policyRepo policy.PolicyRepository) policy.PolicyService {
	return &policyService{
		db:         db,
		policyRepo: policyRepo,
	}
}

// ActivePolicy implements policy.Provider. When no active policy exists the
// default one is created; losing the insert race to a concurrent request is
// resolved by re-reading.
func (s *policyService) ActivePolicy(ctx context.Context) (policy.Policy, error) {
	p, err := s.policyRepo.GetActive(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, policy.ErrNoActivePolicy) {
		return policy.Policy{}, err
	}

	created, err := s.policyRepo.Create(ctx, policy.Default())
	if err != nil {
		if errors.Is(err, policy.ErrActivePolicyExists) {
			return s.policyRepo.GetActive(ctx)
		}
		return policy.Policy{}, fmt.Errorf("create default policy: %w", err)
	}

	return created, nil
}

// GetActivePolicy implements policy.PolicyService.
func (s *policyService) GetActivePolicy(ctx context.Context) (policy.PolicyResponse, error) {
	p, err := s.ActivePolicy(ctx)
	if err != nil {
		return policy.PolicyResponse{}, err
	}
	return toResponse(p), nil
}

// UpdatePolicy implements policy.PolicyService.
func (s *policyService) UpdatePolicy(ctx context.Context, req policy.UpdatePolicyRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	var updated policy.Policy
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.policyRepo.GetByID(txCtx, req.ID); err != nil {
			return err
		}

		if req.IsActive {
			if err := s.policyRepo.DeactivateAllExcept(txCtx, req.ID); err != nil {
				return err
			}
		}

		p, err := s.policyRepo.Update(txCtx, req.Entity())
		if err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	return toResponse(updated), nil
}

func toResponse(p policy.Policy) policy.PolicyResponse {
	resp := policy.PolicyResponse{
		ID:                      p.ID,
		WorkdayStart:            p.WorkdayStart.String(),
		WorkdayEnd:              p.WorkdayEnd.String(),
		MonthlyTimeOffAllowance: p.MonthlyTimeOffAllowance,
		GraceMinutesAllowance:   p.GraceMinutesAllowance,
		IsActive:                p.IsActive,
		CreatedAt:               p.CreatedAt.Format(time.RFC3339),
	}
	if p.UpdatedAt != nil {
		updatedAt := p.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
