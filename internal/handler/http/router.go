package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hazarhq/attendance-backend-go/internal/handler/http/middleware"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	authHandler AuthHandler,
	policyHandler PolicyHandler,
	attendanceHandler AttendanceHandler,
	summaryHandler SummaryHandler,
	employeeHandler EmployeeHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/logout", authHandler.Logout)
				r.Get("/sessions", authHandler.Sessions)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/policies", func(r chi.Router) {
				r.Get("/active", policyHandler.GetActive)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{policyID}", policyHandler.Update)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", attendanceHandler.GetMonthly)
				r.Post("/", attendanceHandler.Create)
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Put("/{recordID}", attendanceHandler.Update)
				r.Post("/time-off", attendanceHandler.AddTimeOff)
			})

			r.Route("/summaries", func(r chi.Router) {
				r.Get("/my", summaryHandler.GetMy)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{employeeID}/recalculate", summaryHandler.Recalculate)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/my/balance", employeeHandler.GetMyBalance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{employeeID}", employeeHandler.Get)
					r.Put("/{employeeID}", employeeHandler.Update)
					r.Patch("/{employeeID}/status", employeeHandler.ToggleStatus)
					r.Post("/{employeeID}/reset-password", employeeHandler.ResetPassword)
					r.Delete("/{employeeID}", employeeHandler.Delete)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/stats", dashboardHandler.GetStats)
				r.Get("/top-delays", dashboardHandler.TopDelays)
				r.Get("/top-commitment", dashboardHandler.TopCommitment)
			})
		})
	})

	return r
}
