package summary

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/summary"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
	"github.com/hazarhq/attendance-backend-go/internal/repository/postgresql"
	policyService "github.com/hazarhq/attendance-backend-go/internal/service/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSummaryDB *database.DB

func summaryTestInit(t *testing.T) summary.SummaryService {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testSummaryDB == nil {
		var err error
		testSummaryDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}

	db := testSummaryDB
	policySvc := policyService.NewPolicyService(db, postgresql.NewPolicyRepository(db))

	return NewSummaryService(
		postgresql.NewSummaryRepository(db),
		postgresql.NewAttendanceRepository(db),
		postgresql.NewTimeOffRepository(db),
		postgresql.NewEmployeeRepository(db),
		policySvc,
	)
}

func createSummaryTestEmployee(t *testing.T, ctx context.Context) string {
	t.Helper()
	var id string
	username := fmt.Sprintf("sum-test-%d", time.Now().UnixNano())
	err := testSummaryDB.QueryRow(ctx, `
		INSERT INTO employees (full_name, username, password_hash)
		VALUES ('Summary Tester', $1, 'x')
		RETURNING id
	`, username).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertSummaryTestRecord(t *testing.T, ctx context.Context, employeeID, workDate string, timeOff, delay, overtime, grace int) {
	t.Helper()
	_, err := testSummaryDB.Exec(ctx, `
		INSERT INTO attendance_records (
			employee_id, work_date, check_in, check_out,
			time_off_minutes_used, delay_minutes, overtime_minutes, grace_minutes_deducted
		) VALUES ($1, $2, 420, 840, $3, $4, $5, $6)
	`, employeeID, workDate, timeOff, delay, overtime, grace)
	require.NoError(t, err)
}

func TestSummaryService_Recalculate_Totals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := summaryTestInit(t)
	employeeID := createSummaryTestEmployee(t, ctx)

	// A fixed past month keeps the fixture dates stable.
	insertSummaryTestRecord(t, ctx, employeeID, "2026-03-02", 30, 10, 20, 40)
	insertSummaryTestRecord(t, ctx, employeeID, "2026-03-03", 0, 5, 0, 15)
	_, err := testSummaryDB.Exec(ctx, `
		INSERT INTO time_off_records (employee_id, time_off_date, minutes_used, reason)
		VALUES ($1, '2026-03-04', 60, 'errand')
	`, employeeID)
	require.NoError(t, err)

	resp, err := svc.GetMonthly(ctx, employeeID, 2026, 3)
	require.NoError(t, err)

	assert.Equal(t, 90, resp.TotalTimeOffMinutesUsed, "record usage plus grants")
	assert.Equal(t, 15, resp.TotalDelayMinutes)
	assert.Equal(t, 20, resp.TotalOvertimeMinutes)
	assert.Equal(t, 55, resp.GraceMinutesConsumed)
	assert.Equal(t, 420-90, resp.RemainingTimeOffMinutes)
	assert.Equal(t, 90-55, resp.RemainingGraceMinutes)
}

func TestSummaryService_Recalculate_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := summaryTestInit(t)
	employeeID := createSummaryTestEmployee(t, ctx)

	insertSummaryTestRecord(t, ctx, employeeID, "2026-04-06", 0, 25, 10, 30)

	first, err := svc.GetMonthly(ctx, employeeID, 2026, 4)
	require.NoError(t, err)

	result, err := svc.Recalculate(ctx, employeeID, 2026, 4)
	require.NoError(t, err)
	require.True(t, result.Success)

	second, err := svc.GetMonthly(ctx, employeeID, 2026, 4)
	require.NoError(t, err)

	// Same row, same derived fields; only the calculation stamp moves.
	assert.Equal(t, first.ID, second.ID)
	first.CalculatedAt = ""
	second.CalculatedAt = ""
	assert.Equal(t, first, second)
}

func TestSummaryService_GetMonthly_LazilyCreates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := summaryTestInit(t)
	employeeID := createSummaryTestEmployee(t, ctx)

	resp, err := svc.GetMonthly(ctx, employeeID, 2026, 5)
	require.NoError(t, err)

	assert.Zero(t, resp.TotalDelayMinutes)
	assert.Equal(t, 420, resp.RemainingTimeOffMinutes)
	assert.Equal(t, 90, resp.RemainingGraceMinutes)
}

func TestSummaryService_Recalculate_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := summaryTestInit(t)

	result, err := svc.Recalculate(ctx, "00000000-0000-0000-0000-000000000000", 2026, 3)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "employee not found", result.Message)
}

func TestSummaryService_ValidatePeriod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := summaryTestInit(t)

	_, err := svc.GetMonthly(ctx, "00000000-0000-0000-0000-000000000000", 2026, 13)
	assert.Error(t, err)
}
