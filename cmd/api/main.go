package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/config"
	appHTTP "github.com/sevaksoft/payroll-backend-go/internal/handler/http"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/cron"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/jwt"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/otp"
	"github.com/sevaksoft/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sevaksoft/payroll-backend-go/internal/service/attendance"
	authService "github.com/sevaksoft/payroll-backend-go/internal/service/auth"
	holidayService "github.com/sevaksoft/payroll-backend-go/internal/service/holiday"
	leaveService "github.com/sevaksoft/payroll-backend-go/internal/service/leave"
	regularizationService "github.com/sevaksoft/payroll-backend-go/internal/service/regularization"
	salaryService "github.com/sevaksoft/payroll-backend-go/internal/service/salary"
	shiftService "github.com/sevaksoft/payroll-backend-go/internal/service/shift"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchLogRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	regularizationRepo := postgresql.NewRegularizationRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	holdRepo := postgresql.NewHoldRepository(db)
	overtimeRepo := postgresql.NewOvertimeToggleRepository(db)
	adminRepo := postgresql.NewAdminUserRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	otpStore := otp.NewStore(cfg.OTP.TTL, cfg.OTP.MaxAttempts)

	attendanceSvc := attendanceService.NewAttendanceService(
		employeeRepo,
		punchRepo,
		shiftRepo,
		assignmentRepo,
		leaveRepo,
		regularizationRepo,
		holidayRepo,
	)
	salarySvc := salaryService.NewSalaryService(
		cfg.Payroll,
		attendanceSvc,
		employeeRepo,
		salaryRepo,
		adjustmentRepo,
		holdRepo,
		overtimeRepo,
		leaveRepo,
		punchRepo,
		shiftRepo,
		assignmentRepo,
	)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, assignmentRepo, employeeRepo)
	regularizationSvc := regularizationService.NewRegularizationService(regularizationRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	authSvc := authService.NewAuthService(adminRepo, employeeRepo, jwtSvc, otpStore)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	regularizationHandler := appHTTP.NewRegularizationHandler(regularizationSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		salaryHandler,
		attendanceHandler,
		leaveHandler,
		shiftHandler,
		regularizationHandler,
		holidayHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(salarySvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
