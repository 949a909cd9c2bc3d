package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/employee"
	"github.com/hazarhq/attendance-backend-go/internal/domain/policy"
	"github.com/hazarhq/attendance-backend-go/internal/domain/summary"
	"golang.org/x/crypto/bcrypt"
)

type employeeService struct {
	employeeRepo employee.EmployeeRepository
	summaryRepo  summary.SummaryRepository
	policies     policy.Provider
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	summaryRepo summary.SummaryRepository,
	policies policy.Provider,
) employee.EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		summaryRepo:  summaryRepo,
		policies:     policies,
	}
}

// List implements employee.EmployeeService.
func (s *employeeService) List(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

// Get implements employee.EmployeeService.
func (s *employeeService) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

// Create implements employee.EmployeeService.
func (s *employeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	e := employee.Employee{
		FullName:              strings.TrimSpace(req.FullName),
		Username:              strings.ToLower(strings.TrimSpace(req.Username)),
		PasswordHash:          string(hash),
		JobTitle:              req.JobTitle,
		IsActive:              true,
		Role:                  employee.RoleEmployee,
		MonthlyTimeOffBalance: employee.DefaultMonthlyTimeOffBalance,
		GraceMinutesBalance:   employee.DefaultGraceMinutesBalance,
	}

	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *employeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		e.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.JobTitle != nil {
		e.JobTitle = req.JobTitle
	}

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, id)
}

// ToggleStatus implements employee.EmployeeService. A missing employee is
// reported in the result, not as an error.
func (s *employeeService) ToggleStatus(ctx context.Context, id string, isActive bool) (employee.Result, error) {
	if err := s.employeeRepo.SetActive(ctx, id, isActive); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Result{Message: "employee not found"}, nil
		}
		return employee.Result{}, err
	}

	state := "deactivated"
	if isActive {
		state = "activated"
	}
	return employee.Result{Success: true, Message: "employee " + state}, nil
}

// ResetPassword implements employee.EmployeeService.
func (s *employeeService) ResetPassword(ctx context.Context, id string, req employee.ResetPasswordRequest) (employee.Result, error) {
	if err := req.Validate(); err != nil {
		return employee.Result{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return employee.Result{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.employeeRepo.UpdatePassword(ctx, id, string(hash)); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Result{Message: "employee not found"}, nil
		}
		return employee.Result{}, err
	}

	return employee.Result{Success: true, Message: "password reset"}, nil
}

// Delete implements employee.EmployeeService.
func (s *employeeService) Delete(ctx context.Context, id string) (employee.Result, error) {
	if err := s.employeeRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Result{Message: "employee not found"}, nil
		}
		return employee.Result{}, err
	}
	return employee.Result{Success: true, Message: "employee deleted"}, nil
}

// GetMyBalance implements employee.EmployeeService. The time-off figure is
// derived from the current month's summary when one exists; the grace
// figure is the live balance on the employee row.
func (s *employeeService) GetMyBalance(ctx context.Context, employeeID string) (employee.BalanceResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.BalanceResponse{}, err
	}

	pol, err := s.policies.ActivePolicy(ctx)
	if err != nil {
		return employee.BalanceResponse{}, err
	}

	now := time.Now()
	used := 0
	if sum, err := s.summaryRepo.GetByEmployeeAndMonth(ctx, employeeID, now.Year(), int(now.Month())); err != nil {
		return employee.BalanceResponse{}, err
	} else if sum != nil {
		used = sum.TotalTimeOffMinutesUsed
	}

	return employee.BalanceResponse{
		EmployeeID:          e.ID,
		EmployeeName:        e.FullName,
		Year:                now.Year(),
		Month:               int(now.Month()),
		TotalTimeOffUsed:    used,
		RemainingTimeOff:    pol.MonthlyTimeOffAllowance - used,
		GraceMinutesBalance: e.GraceMinutesBalance,
	}, nil
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                    e.ID,
		FullName:              e.FullName,
		Username:              e.Username,
		JobTitle:              e.JobTitle,
		IsActive:              e.IsActive,
		Role:                  string(e.Role),
		MonthlyTimeOffBalance: e.MonthlyTimeOffBalance,
		GraceMinutesBalance:   e.GraceMinutesBalance,
		CreatedAt:             e.CreatedAt.Format(time.RFC3339),
	}
	if e.UpdatedAt != nil {
		updatedAt := e.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
