package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

// PayrollJobs refreshes draft salary snapshots in the background so the
// admin dashboard always shows numbers computed from recent punches.
type PayrollJobs struct {
	salaryService salary.SalaryService

	mu          sync.Mutex
	lastRunDate paycycle.LocalDate
}

func NewPayrollJobs(salaryService salary.SalaryService) *PayrollJobs {
	return &PayrollJobs{salaryService: salaryService}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("nightly_draft_payroll", 1*time.Hour, j.NightlyDraftRun)
}

// NightlyDraftRun recomputes draft snapshots for the cycle containing
// today. Finalized snapshots are never overwritten, so rerunning after a
// payout is safe.
func (j *PayrollJobs) NightlyDraftRun(ctx context.Context) error {
	now := time.Now().UTC()

	// Only run at 02:00-02:59 UTC, after the device sync for the previous
	// workday has settled.
	if now.Hour() != 2 {
		return nil
	}

	today := paycycle.DateOf(now)
	j.mu.Lock()
	if j.lastRunDate.Equal(today) {
		j.mu.Unlock()
		return nil
	}
	j.lastRunDate = today
	j.mu.Unlock()

	month := paycycle.CycleForDate(today)
	slog.Info("Cron: Starting nightly draft payroll run", "month", month)

	result, err := j.salaryService.BatchCalculate(ctx, month, 0)
	if err != nil {
		return err
	}

	slog.Info("Cron: Nightly draft payroll run completed",
		"month", month,
		"processed", result.Processed,
		"skipped", len(result.Skipped),
		"failed", result.Failed)
	return nil
}
