package attendance

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/jwt"
	"github.com/hazarhq/attendance-backend-go/internal/repository/postgresql"
	authService "github.com/hazarhq/attendance-backend-go/internal/service/auth"
	policyService "github.com/hazarhq/attendance-backend-go/internal/service/policy"
	summaryService "github.com/hazarhq/attendance-backend-go/internal/service/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAttendanceDB *database.DB

func newTestJWTService() jwt.Service {
	return jwt.NewJWTService("attendance-test-secret", "1h", "168h")
}

func attendanceTestInit(t *testing.T) attendance.AttendanceService {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testAttendanceDB == nil {
		var err error
		testAttendanceDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}

	db := testAttendanceDB
	policyRepo := postgresql.NewPolicyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)

	policySvc := policyService.NewPolicyService(db, policyRepo)
	summarySvc := summaryService.NewSummaryService(summaryRepo, attendanceRepo, timeOffRepo, employeeRepo, policySvc)
	authSvc := authService.NewAuthService(sessionRepo, employeeRepo, newTestJWTService())

	return NewAttendanceService(
		db, attendanceRepo, timeOffRepo, employeeRepo, summaryRepo,
		policySvc, summarySvc, authSvc,
	)
}

func createTestEmployee(t *testing.T, ctx context.Context, graceBalance int) string {
	t.Helper()
	var id string
	username := fmt.Sprintf("att-test-%d", time.Now().UnixNano())
	err := testAttendanceDB.QueryRow(ctx, `
		INSERT INTO employees (full_name, username, password_hash, grace_minutes_balance)
		VALUES ($1, $2, 'x', $3)
		RETURNING id
	`, "Attendance Tester", username, graceBalance).Scan(&id)
	require.NoError(t, err)
	return id
}

func employeeGraceBalance(t *testing.T, ctx context.Context, id string) int {
	t.Helper()
	var balance int
	err := testAttendanceDB.QueryRow(ctx,
		`SELECT grace_minutes_balance FROM employees WHERE id = $1`, id).Scan(&balance)
	require.NoError(t, err)
	return balance
}

// nextWorkday returns an upcoming non-weekend date offset by months so
// concurrent tests land in distinct months.
func nextWorkday(offsetDays int) string {
	d := time.Now().AddDate(0, 0, offsetDays)
	for attendance.IsWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func nextWeekendDay() string {
	d := time.Now()
	for !attendance.IsWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

// sameMonthWorkdays returns two distinct workdays guaranteed to fall in the
// same calendar month (the first week of next month).
func sameMonthWorkdays() (string, string) {
	now := time.Now()
	d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	for attendance.IsWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	second := d.AddDate(0, 0, 1)
	for attendance.IsWeekend(second) {
		second = second.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02"), second.Format("2006-01-02")
}

func yearMonthOf(t *testing.T, day string) (int, int) {
	t.Helper()
	d, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return d.Year(), int(d.Month())
}

func TestAttendanceService_CheckIn_DeductsGrace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 90)

	resp, err := svc.CheckIn(ctx, employeeID, &attendance.CheckInRequest{
		WorkDate:    nextWorkday(0),
		CheckInTime: "07:40",
	})
	require.NoError(t, err)

	assert.Equal(t, "07:40", resp.CheckIn)
	assert.Equal(t, "14:00", resp.CheckOut, "check-out defaults to workday end")
	assert.Equal(t, 0, resp.DelayMinutes)
	assert.Equal(t, 0, resp.OvertimeMinutes, "overtime deferred until check-out")
	assert.Equal(t, 40, resp.GraceMinutesDeducted)
	assert.Equal(t, 50, employeeGraceBalance(t, ctx, employeeID))
}

func TestAttendanceService_CheckIn_PartialGrace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 20)

	resp, err := svc.CheckIn(ctx, employeeID, &attendance.CheckInRequest{
		WorkDate:    nextWorkday(0),
		CheckInTime: "08:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 40, resp.DelayMinutes)
	assert.Equal(t, 20, resp.GraceMinutesDeducted)
	assert.Equal(t, 0, employeeGraceBalance(t, ctx, employeeID))
}

func TestAttendanceService_CheckIn_DuplicateDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 90)

	day := nextWorkday(0)
	_, err := svc.CheckIn(ctx, employeeID, &attendance.CheckInRequest{
		WorkDate:    day,
		CheckInTime: "07:00",
	})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, employeeID, &attendance.CheckInRequest{
		WorkDate:    day,
		CheckInTime: "07:05",
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)
}

func TestAttendanceService_CheckIn_Weekend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 90)

	_, err := svc.CheckIn(ctx, employeeID, &attendance.CheckInRequest{
		WorkDate:    nextWeekendDay(),
		CheckInTime: "07:00",
	})
	assert.ErrorIs(t, err, attendance.ErrWeekend)
}

func TestAttendanceService_CheckOut_RequiresCheckIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 90)

	_, err := svc.CheckOut(ctx, employeeID, &attendance.CheckOutRequest{
		WorkDate:     nextWorkday(0),
		CheckOutTime: "14:30",
	})
	assert.ErrorIs(t, err, attendance.ErrNoCheckIn)
}

func TestAttendanceService_CheckOut_RecomputesAgainstCurrentBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 90)

	day := nextWorkday(0)
	_, err := svc.CheckIn(ctx, employeeID, &attendance.CheckInRequest{
		WorkDate:    day,
		CheckInTime: "07:40",
	})
	require.NoError(t, err)
	require.Equal(t, 50, employeeGraceBalance(t, ctx, employeeID))

	resp, err := svc.CheckOut(ctx, employeeID, &attendance.CheckOutRequest{
		WorkDate:     day,
		CheckOutTime: "14:10",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, resp.OvertimeMinutes)
	assert.Equal(t, 0, resp.DelayMinutes)
	// The record is re-scored from the post-check-in balance of 50: the 40
	// late minutes still fit, so the stored deduction stays at 40 while the
	// balance itself is not debited a second time.
	assert.Equal(t, 40, resp.GraceMinutesDeducted)
	assert.Equal(t, 50, employeeGraceBalance(t, ctx, employeeID))
}

func TestAttendanceService_Update_SameDayOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 90)

	// A record for a future workday is not editable today.
	created, err := svc.Create(ctx, employeeID, &attendance.CreateRecordRequest{
		WorkDate: nextWorkday(7),
		CheckIn:  "07:00",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, employeeID, &attendance.UpdateRecordRequest{
		ID:      created.ID,
		CheckIn: "07:30",
	})
	assert.ErrorIs(t, err, attendance.ErrNotToday)
}

func TestAttendanceService_GetMonthly_Ordering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 0)

	// Two future workdays, inserted out of order.
	later := nextWorkday(15)
	earlier := nextWorkday(10)
	if earlier > later {
		earlier, later = later, earlier
	}

	for _, day := range []string{later, earlier} {
		_, err := svc.Create(ctx, employeeID, &attendance.CreateRecordRequest{
			WorkDate: day,
			CheckIn:  "07:00",
		})
		require.NoError(t, err)
	}

	d, _ := time.Parse("2006-01-02", earlier)
	records, err := svc.GetMonthly(ctx, employeeID, d.Year(), int(d.Month()), false)
	require.NoError(t, err)

	var monthDays []string
	for _, rec := range records {
		monthDays = append(monthDays, rec.WorkDate)
	}
	assert.IsNonDecreasing(t, monthDays)
}

func TestAttendanceService_AddTimeOff_FullCoverageRestoresGrace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 20)

	day := nextWorkday(0)
	created, err := svc.CheckIn(ctx, employeeID, &attendance.CheckInRequest{
		WorkDate:    day,
		CheckInTime: "08:00", // 60 late: 20 grace, 40 delay
	})
	require.NoError(t, err)
	require.Equal(t, 40, created.DelayMinutes)
	require.Equal(t, 20, created.GraceMinutesDeducted)
	require.Equal(t, 0, employeeGraceBalance(t, ctx, employeeID))

	result, err := svc.AddTimeOff(ctx, employeeID, &attendance.AddTimeOffRequest{
		TimeOffDate: day,
		MinutesUsed: 50,
		Reason:      "family errand",
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	year, month := yearMonthOf(t, day)
	records, err := svc.GetMonthly(ctx, employeeID, year, month, true)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 0, records[0].DelayMinutes)
	assert.Equal(t, 0, records[0].GraceMinutesDeducted)
	assert.Equal(t, 50, records[0].TimeOffMinutesUsed)
	assert.Equal(t, 20, employeeGraceBalance(t, ctx, employeeID), "deducted grace restored")
}

func TestAttendanceService_AddTimeOff_PartialCoverage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 0)

	day := nextWorkday(0)
	created, err := svc.CheckIn(ctx, employeeID, &attendance.CheckInRequest{
		WorkDate:    day,
		CheckInTime: "08:30", // 90 late, no grace
	})
	require.NoError(t, err)
	require.Equal(t, 90, created.DelayMinutes)

	result, err := svc.AddTimeOff(ctx, employeeID, &attendance.AddTimeOffRequest{
		TimeOffDate: day,
		MinutesUsed: 30,
		Reason:      "traffic",
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	year, month := yearMonthOf(t, day)
	records, err := svc.GetMonthly(ctx, employeeID, year, month, true)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 60, records[0].DelayMinutes)
	assert.Equal(t, 30, records[0].TimeOffMinutesUsed)
}

func TestAttendanceService_AddTimeOff_PartialCoverageRederivesGrace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 20)

	day := nextWorkday(0)
	created, err := svc.CheckIn(ctx, employeeID, &attendance.CheckInRequest{
		WorkDate:    day,
		CheckInTime: "08:00", // 60 late: 20 grace, 40 delay
	})
	require.NoError(t, err)
	require.Equal(t, 40, created.DelayMinutes)
	require.Equal(t, 20, created.GraceMinutesDeducted)

	// Grace has come back since the check-in, as a covering grant on another
	// day would leave it.
	_, err = testAttendanceDB.Exec(ctx,
		`UPDATE employees SET grace_minutes_balance = 15 WHERE id = $1`, employeeID)
	require.NoError(t, err)

	result, err := svc.AddTimeOff(ctx, employeeID, &attendance.AddTimeOffRequest{
		TimeOffDate: day,
		MinutesUsed: 10,
		Reason:      "appointment",
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	year, month := yearMonthOf(t, day)
	records, err := svc.GetMonthly(ctx, employeeID, year, month, true)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// The deduction is re-derived for the remaining 30 delay minutes against
	// the current balance of 15, replacing the earlier 20 rather than adding
	// to it.
	assert.Equal(t, 15, records[0].GraceMinutesDeducted)
	assert.Equal(t, 15, records[0].DelayMinutes)
	assert.Equal(t, 10, records[0].TimeOffMinutesUsed)
	assert.Equal(t, 0, employeeGraceBalance(t, ctx, employeeID))
}

func TestAttendanceService_AddTimeOff_Rejections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := attendanceTestInit(t)
	employeeID := createTestEmployee(t, ctx, 90)

	// Over the single-day cap.
	result, err := svc.AddTimeOff(ctx, employeeID, &attendance.AddTimeOffRequest{
		TimeOffDate: nextWorkday(0),
		MinutesUsed: 300,
		Reason:      "long trip",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)

	// Weekend day.
	result, err = svc.AddTimeOff(ctx, employeeID, &attendance.AddTimeOffRequest{
		TimeOffDate: nextWeekendDay(),
		MinutesUsed: 60,
		Reason:      "weekend",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)

	// Exhausting the monthly balance: two 240-minute grants drain 480 > 420.
	dayOne, dayTwo := sameMonthWorkdays()
	first, err := svc.AddTimeOff(ctx, employeeID, &attendance.AddTimeOffRequest{
		TimeOffDate: dayOne,
		MinutesUsed: 240,
		Reason:      "first grant",
	})
	require.NoError(t, err)
	require.True(t, first.Success, first.Message)

	second, err := svc.AddTimeOff(ctx, employeeID, &attendance.AddTimeOffRequest{
		TimeOffDate: dayTwo,
		MinutesUsed: 240,
		Reason:      "second grant",
	})
	require.NoError(t, err)
	assert.False(t, second.Success, "monthly balance exceeded")
}
