package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/hazarhq/attendance-backend-go/internal/domain/auth"
	"github.com/hazarhq/attendance-backend-go/internal/domain/employee"
	"github.com/hazarhq/attendance-backend-go/internal/domain/policy"
	"github.com/hazarhq/attendance-backend-go/internal/domain/summary"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/clock"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
	"github.com/hazarhq/attendance-backend-go/internal/repository/postgresql"
)

type attendanceService struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	timeOffRepo    attendance.TimeOffRepository
	employeeRepo   employee.EmployeeRepository
	summaryRepo    summary.SummaryRepository
	policies       policy.Provider
	summaries      summary.Recalculator
	sessions       auth.SessionCloser
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	timeOffRepo attendance.TimeOffRepository,
	employeeRepo employee.EmployeeRepository,
	summaryRepo summary.SummaryRepository,
	policies policy.Provider,
	summaries summary.Recalculator,
	sessions auth.SessionCloser,
) attendance.AttendanceService {
	return &attendanceService{
		db:             db,
		attendanceRepo: attendanceRepo,
		timeOffRepo:    timeOffRepo,
		employeeRepo:   employeeRepo,
		summaryRepo:    summaryRepo,
		policies:       policies,
		summaries:      summaries,
		sessions:       sessions,
	}
}

func (s *attendanceService) activeEmployee(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.IsActive {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// newRecord validates the day and scores it against the active policy. The
// pre-check on an existing record is an optimization; the uniqueness
// constraint on (employee, work date) is the authoritative guard.
func (s *attendanceService) newRecord(ctx context.Context, emp employee.Employee, workDate time.Time, checkIn clock.Time, checkOutReq *clock.Time, timeOffRequested int, notes *string) (attendance.Record, Metrics, error) {
	if attendance.IsWeekend(workDate) {
		return attendance.Record{}, Metrics{}, attendance.ErrWeekend
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, workDate)
	if err != nil {
		return attendance.Record{}, Metrics{}, err
	}
	if existing != nil {
		return attendance.Record{}, Metrics{}, attendance.ErrDuplicateRecord
	}

	pol, err := s.policies.ActivePolicy(ctx)
	if err != nil {
		return attendance.Record{}, Metrics{}, err
	}

	checkOut := pol.WorkdayEnd
	if checkOutReq != nil {
		checkOut = *checkOutReq
	}

	m := CalculateMetrics(checkIn, checkOut, timeOffRequested, pol, emp.GraceMinutesBalance)

	rec := attendance.Record{
		EmployeeID:           emp.ID,
		WorkDate:             workDate,
		CheckIn:              checkIn,
		CheckOut:             checkOut,
		TimeOffMinutesUsed:   m.TimeOffMinutesUsed,
		DelayMinutes:         m.DelayMinutes,
		OvertimeMinutes:      m.OvertimeMinutes,
		GraceMinutesDeducted: m.GraceMinutesConsumed,
		Notes:                notes,
	}

	return rec, m, nil
}

func (s *attendanceService) persistNewRecord(ctx context.Context, rec attendance.Record, graceConsumed int) (attendance.Record, error) {
	var created attendance.Record
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.attendanceRepo.Create(txCtx, rec)
		if err != nil {
			return err
		}
		if graceConsumed > 0 {
			if _, err := s.employeeRepo.AdjustGraceBalance(txCtx, rec.EmployeeID, -graceConsumed); err != nil {
				return err
			}
		}
		return s.summaries.RecalculateForMonth(txCtx, rec.EmployeeID, rec.WorkDate.Year(), int(rec.WorkDate.Month()))
	})
	if err != nil {
		return attendance.Record{}, err
	}
	return created, nil
}

// Create implements attendance.AttendanceService.
func (s *attendanceService) Create(ctx context.Context, employeeID string, req *attendance.CreateRecordRequest) (*attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var checkOut *clock.Time
	if req.CheckOut != nil {
		t := attendance.ParseClock(*req.CheckOut)
		checkOut = &t
	}
	timeOff := 0
	if req.TimeOffMinutes != nil {
		timeOff = *req.TimeOffMinutes
	}

	rec, m, err := s.newRecord(ctx, emp, attendance.ParseDate(req.WorkDate), attendance.ParseClock(req.CheckIn), checkOut, timeOff, req.Notes)
	if err != nil {
		return nil, err
	}

	created, err := s.persistNewRecord(ctx, rec, m.GraceMinutesConsumed)
	if err != nil {
		return nil, err
	}

	return recordResponse(created), nil
}

// CheckIn implements attendance.AttendanceService. The check-out is stored
// provisionally as the workday end with zero overtime until CheckOut runs.
func (s *attendanceService) CheckIn(ctx context.Context, employeeID string, req *attendance.CheckInRequest) (*attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	timeOff := 0
	if req.TimeOffMinutes != nil {
		timeOff = *req.TimeOffMinutes
	}

	rec, m, err := s.newRecord(ctx, emp, attendance.ParseDate(req.WorkDate), attendance.ParseClock(req.CheckInTime), nil, timeOff, req.Notes)
	if err != nil {
		return nil, err
	}
	rec.OvertimeMinutes = 0

	created, err := s.persistNewRecord(ctx, rec, m.GraceMinutesConsumed)
	if err != nil {
		return nil, err
	}

	return recordResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. All four metrics are
// re-derived from the stored check-in and the new check-out against the
// employee's current grace balance; the balance itself is not touched here.
func (s *attendanceService) CheckOut(ctx context.Context, employeeID string, req *attendance.CheckOutRequest) (*attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	workDate := attendance.ParseDate(req.WorkDate)
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, workDate)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, attendance.ErrNoCheckIn
	}
	if rec.IsLocked {
		return nil, attendance.ErrRecordLocked
	}

	pol, err := s.policies.ActivePolicy(ctx)
	if err != nil {
		return nil, err
	}

	rec.CheckOut = attendance.ParseClock(req.CheckOutTime)
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	m := CalculateMetrics(rec.CheckIn, rec.CheckOut, rec.TimeOffMinutesUsed, pol, emp.GraceMinutesBalance)
	rec.TimeOffMinutesUsed = m.TimeOffMinutesUsed
	rec.DelayMinutes = m.DelayMinutes
	rec.OvertimeMinutes = m.OvertimeMinutes
	rec.GraceMinutesDeducted = m.GraceMinutesConsumed

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.attendanceRepo.Update(txCtx, *rec); err != nil {
			return err
		}
		if err := s.sessions.CloseSessionsForEmployee(txCtx, employeeID); err != nil {
			return err
		}
		return s.summaries.RecalculateForMonth(txCtx, employeeID, workDate.Year(), int(workDate.Month()))
	})
	if err != nil {
		return nil, err
	}

	return recordResponse(*rec), nil
}

// Update implements attendance.AttendanceService. Records are editable only
// on the calendar day they describe.
func (s *attendanceService) Update(ctx context.Context, employeeID string, req *attendance.UpdateRecordRequest) (*attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	rec, err := s.attendanceRepo.GetByID(ctx, req.ID, employeeID)
	if err != nil {
		return nil, err
	}
	if rec.IsLocked {
		return nil, attendance.ErrRecordLocked
	}

	today := time.Now()
	if rec.WorkDate.Year() != today.Year() || rec.WorkDate.YearDay() != today.YearDay() {
		return nil, attendance.ErrNotToday
	}

	pol, err := s.policies.ActivePolicy(ctx)
	if err != nil {
		return nil, err
	}

	rec.CheckIn = attendance.ParseClock(req.CheckIn)
	if req.CheckOut != nil {
		rec.CheckOut = attendance.ParseClock(*req.CheckOut)
	}
	if req.TimeOffMinutes != nil {
		rec.TimeOffMinutesUsed = *req.TimeOffMinutes
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	m := CalculateMetrics(rec.CheckIn, rec.CheckOut, rec.TimeOffMinutesUsed, pol, emp.GraceMinutesBalance)
	rec.TimeOffMinutesUsed = m.TimeOffMinutesUsed
	rec.DelayMinutes = m.DelayMinutes
	rec.OvertimeMinutes = m.OvertimeMinutes
	rec.GraceMinutesDeducted = m.GraceMinutesConsumed

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.attendanceRepo.Update(txCtx, rec); err != nil {
			return err
		}
		return s.summaries.RecalculateForMonth(txCtx, employeeID, rec.WorkDate.Year(), int(rec.WorkDate.Month()))
	})
	if err != nil {
		return nil, err
	}

	return recordResponse(rec), nil
}

// GetMonthly implements attendance.AttendanceService.
func (s *attendanceService) GetMonthly(ctx context.Context, employeeID string, year, month int, includeLocked bool) ([]attendance.RecordResponse, error) {
	if err := summary.ValidatePeriod(year, month); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListMonth(ctx, employeeID, year, month, includeLocked)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, *recordResponse(rec))
	}

	return responses, nil
}

// AddTimeOff implements attendance.AttendanceService. Expected rejections
// come back as a failed Result; only infrastructure problems are errors.
func (s *attendanceService) AddTimeOff(ctx context.Context, employeeID string, req *attendance.AddTimeOffRequest) (*attendance.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return &attendance.Result{Message: "employee not found or inactive"}, nil
		}
		return nil, err
	}
	if !emp.IsActive {
		return &attendance.Result{Message: "employee not found or inactive"}, nil
	}

	date := attendance.ParseDate(req.TimeOffDate)
	if attendance.IsWeekend(date) {
		return &attendance.Result{Message: "time off cannot be requested for a weekend day"}, nil
	}
	if req.MinutesUsed > attendance.MaxTimeOffMinutesPerDay {
		return &attendance.Result{Message: fmt.Sprintf("a single day's time off cannot exceed %d minutes", attendance.MaxTimeOffMinutesPerDay)}, nil
	}

	pol, err := s.policies.ActivePolicy(ctx)
	if err != nil {
		return nil, err
	}

	remaining := pol.MonthlyTimeOffAllowance
	if sum, err := s.summaryRepo.GetByEmployeeAndMonth(ctx, employeeID, date.Year(), int(date.Month())); err != nil {
		return nil, err
	} else if sum != nil {
		remaining = pol.MonthlyTimeOffAllowance - sum.TotalTimeOffMinutesUsed
	}
	if req.MinutesUsed > remaining {
		return &attendance.Result{Message: fmt.Sprintf("insufficient time-off balance: %d minutes remaining this month", remaining)}, nil
	}

	grant := attendance.TimeOffRecord{
		EmployeeID:  employeeID,
		TimeOffDate: date,
		MinutesUsed: req.MinutesUsed,
		Reason:      req.Reason,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		rec, err := s.attendanceRepo.GetByEmployeeAndDate(txCtx, employeeID, date)
		if err != nil {
			return err
		}

		if rec != nil && rec.DelayMinutes > 0 {
			if req.MinutesUsed >= rec.DelayMinutes {
				// Full coverage: the grant absorbs the whole delay, so any
				// grace spent on it goes back to the employee.
				grant.IsUsedForDelay = true
				if rec.GraceMinutesDeducted > 0 {
					if _, err := s.employeeRepo.AdjustGraceBalance(txCtx, employeeID, rec.GraceMinutesDeducted); err != nil {
						return err
					}
				}
				rec.GraceMinutesDeducted = 0
				rec.DelayMinutes = 0
				rec.TimeOffMinutesUsed += req.MinutesUsed
			} else {
				// Partial coverage: shrink the delay, then let whatever grace
				// is still available absorb the remainder.
				rec.TimeOffMinutesUsed += req.MinutesUsed
				remainder := rec.DelayMinutes - req.MinutesUsed

				current, err := s.employeeRepo.GetByID(txCtx, employeeID)
				if err != nil {
					return err
				}
				if remainder > 0 && current.GraceMinutesBalance > 0 {
					consume := remainder
					if consume > current.GraceMinutesBalance {
						consume = current.GraceMinutesBalance
					}
					if _, err := s.employeeRepo.AdjustGraceBalance(txCtx, employeeID, -consume); err != nil {
						return err
					}
					// The deduction is re-derived for the remaining delay,
					// replacing whatever the record carried before.
					rec.GraceMinutesDeducted = consume
					rec.DelayMinutes = remainder - consume
				} else {
					rec.DelayMinutes = remainder
				}
			}

			if err := s.attendanceRepo.Update(txCtx, *rec); err != nil {
				return err
			}
		}

		if _, err := s.timeOffRepo.Create(txCtx, grant); err != nil {
			return err
		}

		return s.summaries.RecalculateForMonth(txCtx, employeeID, date.Year(), int(date.Month()))
	})
	if err != nil {
		return nil, err
	}

	return &attendance.Result{
		Success: true,
		Message: fmt.Sprintf("time off of %d minutes recorded for %s", req.MinutesUsed, req.TimeOffDate),
	}, nil
}

func recordResponse(rec attendance.Record) *attendance.RecordResponse {
	resp := &attendance.RecordResponse{
		ID:                   rec.ID,
		EmployeeID:           rec.EmployeeID,
		EmployeeName:         rec.EmployeeName,
		WorkDate:             rec.WorkDate.Format("2006-01-02"),
		CheckIn:              rec.CheckIn.String(),
		CheckOut:             rec.CheckOut.String(),
		TimeOffMinutesUsed:   rec.TimeOffMinutesUsed,
		DelayMinutes:         rec.DelayMinutes,
		OvertimeMinutes:      rec.OvertimeMinutes,
		GraceMinutesDeducted: rec.GraceMinutesDeducted,
		Notes:                rec.Notes,
		IsLocked:             rec.IsLocked,
		CreatedAt:            rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.UpdatedAt != nil {
		updatedAt := rec.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
