package employee

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/employee"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
	"github.com/hazarhq/attendance-backend-go/internal/repository/postgresql"
	policyService "github.com/hazarhq/attendance-backend-go/internal/service/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEmployeeDB *database.DB

func employeeTestInit(t *testing.T) employee.EmployeeService {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testEmployeeDB == nil {
		var err error
		testEmployeeDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}

	db := testEmployeeDB
	policySvc := policyService.NewPolicyService(db, postgresql.NewPolicyRepository(db))

	return NewEmployeeService(
		postgresql.NewEmployeeRepository(db),
		postgresql.NewSummaryRepository(db),
		policySvc,
	)
}

func uniqueUsername(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestEmployeeService_Create_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := employeeTestInit(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FullName: "  Jamie Rivera  ",
		Username: uniqueUsername("emp-create"),
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Jamie Rivera", created.FullName)
	assert.True(t, created.IsActive)
	assert.Equal(t, string(employee.RoleEmployee), created.Role)
	assert.Equal(t, employee.DefaultMonthlyTimeOffBalance, created.MonthlyTimeOffBalance)
	assert.Equal(t, employee.DefaultGraceMinutesBalance, created.GraceMinutesBalance)
}

func TestEmployeeService_Create_DuplicateUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := employeeTestInit(t)

	username := uniqueUsername("emp-dup")
	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FullName: "First",
		Username: username,
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
		FullName: "Second",
		Username: username,
		Password: "sup3r-secret",
	})
	assert.ErrorIs(t, err, employee.ErrUsernameExists)
}

func TestEmployeeService_List_Search(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := employeeTestInit(t)

	marker := fmt.Sprintf("needle%d", time.Now().UnixNano())
	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FullName: "Searchable " + marker,
		Username: uniqueUsername("emp-search"),
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	resp, err := svc.List(ctx, employee.ListFilter{Search: &marker, Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Equal(t, int64(1), resp.TotalCount)
	assert.Contains(t, resp.Employees[0].FullName, marker)
}

func TestEmployeeService_ToggleStatus_And_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := employeeTestInit(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FullName: "Toggle Target",
		Username: uniqueUsername("emp-toggle"),
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	result, err := svc.ToggleStatus(ctx, created.ID, false)
	require.NoError(t, err)
	assert.True(t, result.Success)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	result, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_SoftOps_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := employeeTestInit(t)

	const unknown = "00000000-0000-0000-0000-000000000000"

	result, err := svc.ToggleStatus(ctx, unknown, true)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "employee not found", result.Message)

	result, err = svc.ResetPassword(ctx, unknown, employee.ResetPasswordRequest{NewPassword: "sup3r-secret"})
	require.NoError(t, err)
	assert.False(t, result.Success)

	result, err = svc.Delete(ctx, unknown)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestEmployeeService_GetMyBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := employeeTestInit(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FullName: "Balance Holder",
		Username: uniqueUsername("emp-balance"),
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	balance, err := svc.GetMyBalance(ctx, created.ID)
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Year(), balance.Year)
	assert.Equal(t, int(now.Month()), balance.Month)
	assert.Equal(t, employee.DefaultGraceMinutesBalance, balance.GraceMinutesBalance)
	assert.Equal(t, 420, balance.RemainingTimeOff+balance.TotalTimeOffUsed)
}
