package summary

import (
	"context"
	"errors"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/hazarhq/attendance-backend-go/internal/domain/employee"
	"github.com/hazarhq/attendance-backend-go/internal/domain/policy"
	"github.com/hazarhq/attendance-backend-go/internal/domain/summary"
)

type summaryService struct {
	summaryRepo    summary.SummaryRepository
	attendanceRepo attendance.AttendanceRepository
	timeOffRepo    attendance.TimeOffRepository
	employeeRepo   employee.EmployeeRepository
	policies       policy.Provider
}

func NewSummaryService(
	summaryRepo summary.SummaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	timeOffRepo attendance.TimeOffRepository,
	employeeRepo employee.EmployeeRepository,
	policies policy.Provider,
) summary.SummaryService {
	return &summaryService{
		summaryRepo:    summaryRepo,
		attendanceRepo: attendanceRepo,
		timeOffRepo:    timeOffRepo,
		employeeRepo:   employeeRepo,
		policies:       policies,
	}
}

// RecalculateForMonth implements summary.Recalculator. The summary is
// recomputed from scratch and upserted, never incremented, so repeated
// calls with unchanged inputs produce the same derived fields.
func (s *summaryService) RecalculateForMonth(ctx context.Context, employeeID string, year, month int) error {
	records, err := s.attendanceRepo.ListMonth(ctx, employeeID, year, month, true)
	if err != nil {
		return err
	}
	grants, err := s.timeOffRepo.ListMonth(ctx, employeeID, year, month)
	if err != nil {
		return err
	}
	pol, err := s.policies.ActivePolicy(ctx)
	if err != nil {
		return err
	}

	sum := summary.MonthlySummary{
		EmployeeID:   employeeID,
		Year:         year,
		Month:        month,
		CalculatedAt: time.Now().UTC(),
	}
	for _, rec := range records {
		sum.TotalTimeOffMinutesUsed += rec.TimeOffMinutesUsed
		sum.TotalDelayMinutes += rec.DelayMinutes
		sum.TotalOvertimeMinutes += rec.OvertimeMinutes
		sum.GraceMinutesConsumed += rec.GraceMinutesDeducted
	}
	for _, grant := range grants {
		sum.TotalTimeOffMinutesUsed += grant.MinutesUsed
	}
	sum.RemainingTimeOffMinutes = pol.MonthlyTimeOffAllowance - sum.TotalTimeOffMinutesUsed
	sum.RemainingGraceMinutes = pol.GraceMinutesAllowance - sum.GraceMinutesConsumed

	return s.summaryRepo.Upsert(ctx, &sum)
}

// GetMonthly implements summary.SummaryService.
func (s *summaryService) GetMonthly(ctx context.Context, employeeID string, year, month int) (*summary.SummaryResponse, error) {
	if err := summary.ValidatePeriod(year, month); err != nil {
		return nil, err
	}

	sum, err := s.summaryRepo.GetByEmployeeAndMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}
	if sum == nil {
		if err := s.RecalculateForMonth(ctx, employeeID, year, month); err != nil {
			return nil, err
		}
		sum, err = s.summaryRepo.GetByEmployeeAndMonth(ctx, employeeID, year, month)
		if err != nil {
			return nil, err
		}
		if sum == nil {
			return nil, summary.ErrSummaryNotFound
		}
	}

	return toResponse(sum), nil
}

// Recalculate implements summary.SummaryService. A request for an unknown
// or deleted employee is reported in the result, not as an error.
func (s *summaryService) Recalculate(ctx context.Context, employeeID string, year, month int) (*summary.RecalculateResult, error) {
	if err := summary.ValidatePeriod(year, month); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return &summary.RecalculateResult{Message: "employee not found"}, nil
		}
		return nil, err
	}

	if err := s.RecalculateForMonth(ctx, employeeID, year, month); err != nil {
		return nil, err
	}

	return &summary.RecalculateResult{
		Success: true,
		Message: "monthly summary recalculated",
	}, nil
}

func toResponse(sum *summary.MonthlySummary) *summary.SummaryResponse {
	return &summary.SummaryResponse{
		ID:                      sum.ID,
		EmployeeID:              sum.EmployeeID,
		Year:                    sum.Year,
		Month:                   sum.Month,
		TotalTimeOffMinutesUsed: sum.TotalTimeOffMinutesUsed,
		TotalDelayMinutes:       sum.TotalDelayMinutes,
		TotalOvertimeMinutes:    sum.TotalOvertimeMinutes,
		GraceMinutesConsumed:    sum.GraceMinutesConsumed,
		RemainingTimeOffMinutes: sum.RemainingTimeOffMinutes,
		RemainingGraceMinutes:   sum.RemainingGraceMinutes,
		CalculatedAt:            sum.CalculatedAt.Format(time.RFC3339),
	}
}
