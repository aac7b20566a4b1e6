package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/config"
	"github.com/sevaksoft/payroll-backend-go/internal/handler/http/middleware"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	salaryHandler SalaryHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	shiftHandler ShiftHandler,
	regularizationHandler RegularizationHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	employeeCodeParam := func(r *http.Request) string {
		return chi.URLParam(r, "employeeCode")
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/admin/login", authHandler.AdminLogin)
			r.Post("/otp/request", authHandler.RequestOTP)
			r.Post("/otp/verify", authHandler.VerifyOTP)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/monthly-hours", attendanceHandler.CalculateMonthlyHours)
				})

				r.Route("/salary", func(r chi.Router) {
					r.Post("/calculate", salaryHandler.Calculate)
					r.Post("/batch-calculate", salaryHandler.BatchCalculate)
					r.Post("/finalize-all", salaryHandler.FinalizeAll)
					r.Get("/{employeeCode}/{month}", salaryHandler.GetSalary)
					r.Get("/{employeeCode}/latest", salaryHandler.GetLatestSalary)
					r.Post("/{employeeCode}/{month}/finalize", salaryHandler.Finalize)

					r.Route("/adjustments", func(r chi.Router) {
						r.Post("/", salaryHandler.SaveAdjustment)
						r.Get("/{employeeCode}/{month}", salaryHandler.ListAdjustments)
						r.Delete("/{id}", salaryHandler.DeleteAdjustment)
					})

					r.Route("/holds", func(r chi.Router) {
						r.Post("/", salaryHandler.CreateHold)
						r.Get("/{month}", salaryHandler.ListHolds)
						r.Post("/{id}/release", salaryHandler.ReleaseHold)
					})

					r.Post("/overtime-toggle", salaryHandler.SetOvertimeToggle)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Post("/", leaveHandler.SaveMonthlyLeaves)
					r.Get("/{employeeCode}/{month}", leaveHandler.GetMonthlyUsage)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", shiftHandler.ListShifts)
					r.Post("/", shiftHandler.CreateShift)
					r.Get("/{name}", shiftHandler.GetShift)
					r.Put("/{name}", shiftHandler.UpdateShift)
					r.Delete("/{name}", shiftHandler.DeleteShift)

					r.Route("/assignments", func(r chi.Router) {
						r.Post("/", shiftHandler.AssignShift)
						r.Get("/{employeeCode}", shiftHandler.ListAssignments)
						r.Delete("/{id}", shiftHandler.RemoveAssignment)
					})

					r.Get("/resolve/{employeeCode}/{date}", shiftHandler.ResolveForDate)
				})

				r.Route("/regularizations", func(r chi.Router) {
					r.Post("/", regularizationHandler.SaveRegularization)
					r.Get("/{employeeCode}/{month}", regularizationHandler.ListForCycle)
					r.Delete("/{employeeCode}/{date}", regularizationHandler.RemoveRegularization)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", holidayHandler.SaveHoliday)
					r.Get("/{month}", holidayHandler.ListForCycle)
					r.Delete("/{date}", holidayHandler.RemoveHoliday)
				})
			})

			// Employee portal. Employees only see their own finalized
			// payslips; admins can use the same routes.
			r.Route("/portal", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.SelfOrAdmin(employeeCodeParam))

					r.Get("/salary/{employeeCode}/latest", salaryHandler.GetLatestFinalizedSalary)
					r.Get("/salary/{employeeCode}/{month}", salaryHandler.GetFinalizedSalary)
					r.Get("/leaves/{employeeCode}/entitlement", leaveHandler.GetEntitlement)
				})
			})
		})
	})
	return r
}
