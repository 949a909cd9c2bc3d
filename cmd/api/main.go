package main

import (
	"fmt"
	"net/http"

	"github.com/hazarhq/attendance-backend-go/internal/config"
	appHTTP "github.com/hazarhq/attendance-backend-go/internal/handler/http"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/database"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/jwt"
	"github.com/hazarhq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hazarhq/attendance-backend-go/internal/service/attendance"
	authService "github.com/hazarhq/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/hazarhq/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/hazarhq/attendance-backend-go/internal/service/employee"
	policyService "github.com/hazarhq/attendance-backend-go/internal/service/policy"
	summaryService "github.com/hazarhq/attendance-backend-go/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	policyRepo := postgresql.NewPolicyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	policySvc := policyService.NewPolicyService(db, policyRepo)
	summarySvc := summaryService.NewSummaryService(summaryRepo, attendanceRepo, timeOffRepo, employeeRepo, policySvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, summaryRepo, policySvc)
	authSvc := authService.NewAuthService(sessionRepo, employeeRepo, jwtSvc)
	attendanceSvc := attendanceService.NewAttendanceService(
		db, attendanceRepo, timeOffRepo, employeeRepo, summaryRepo,
		policySvc, summarySvc, authSvc,
	)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		jwtSvc,
		authHandler,
		policyHandler,
		attendanceHandler,
		summaryHandler,
		employeeHandler,
		dashboardHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
