package salary

import (
	"math"
	"strings"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/shopspring/decimal"
)

const (
	// PT applies once gross crosses this slab, but only for employees at
	// or above the PT salary floor.
	ptGrossThreshold  = 12000
	ptSalaryFloor     = 15000
	ptAmount          = 200
	tdsSalaryCeiling  = 15000
	tdsCumulativeMin  = 50000
	tdsRate           = "0.10"
	tdsExemptFragment = "CLEAN"

	// A day only earns overtime when it exceeds its shift by more than
	// one full hour.
	overtimeMinExcessHours = 1.0
)

// calculationInput is everything computeBreakdown needs, already fetched.
type calculationInput struct {
	att             attendance.MonthlyAttendance
	baseSalary      decimal.Decimal
	joinDate        paycycle.LocalDate
	department      string
	designation     string
	overtimeEnabled bool
	adjustments     []salary.Adjustment
	entitlement     *leave.Entitlement
	totalLeavesUsed float64
}

// computeBreakdown derives every monetary component for one
// (employee, month). Intermediate division keeps full precision; gross
// rounds to paise and net rounds to the rupee at the very end.
func computeBreakdown(in calculationInput) (salary.Breakdown, error) {
	fullCycleDays, err := paycycle.DaysInCycle(in.att.Month)
	if err != nil {
		return salary.Breakdown{}, err
	}

	cycleDaysDec := decimal.NewFromInt(int64(fullCycleDays))
	perDayRate := in.baseSalary.Div(cycleDaysDec)
	shiftHours := in.att.ShiftWorkHours()
	hourlyRate := in.baseSalary.Div(cycleDaysDec.Mul(decimal.NewFromFloat(shiftHours)))

	var payableSundays float64
	for _, d := range in.att.Days {
		if d.Status == attendance.StatusWeekoff && d.WeekoffType == attendance.WeekoffPaid {
			payableSundays++
		}
	}

	var leaveCredit float64
	for _, d := range in.att.Days {
		if d.Status == attendance.StatusPaidLeave || d.Status == attendance.StatusCasualLeave {
			leaveCredit += d.LeaveValue
		}
	}

	var lopDays float64
	if in.entitlement != nil && in.totalLeavesUsed > in.entitlement.AllowedLeaves {
		lopDays = in.totalLeavesUsed - in.entitlement.AllowedLeaves
	}

	payableDays := float64(in.att.FullDays) + 0.5*float64(in.att.HalfDays) + payableSundays + leaveCredit
	attendancePay := perDayRate.Mul(decimal.NewFromFloat(payableDays)).
		Sub(perDayRate.Mul(decimal.NewFromFloat(lopDays)))

	overtimeHours := 0
	overtimeAmount := decimal.Zero
	if in.overtimeEnabled {
		var excess float64
		for _, d := range in.att.Days {
			if d.TotalHours <= 0 ||
				d.Status == attendance.StatusAbsent ||
				d.Status == attendance.StatusNotActive {
				continue
			}
			if over := d.TotalHours - d.ExpectedHours; over > overtimeMinExcessHours {
				excess += over
			}
		}
		overtimeHours = int(math.Floor(excess))
		overtimeAmount = hourlyRate.Mul(decimal.NewFromInt(int64(overtimeHours)))
	}

	incentive := decimal.Zero
	otherAdditions := decimal.Zero
	deductions := decimal.Zero
	for _, adj := range in.adjustments {
		switch adj.Type {
		case salary.AdjustmentAddition:
			if strings.EqualFold(adj.Category, salary.CategoryIncentive) {
				incentive = incentive.Add(adj.Amount)
			} else {
				otherAdditions = otherAdditions.Add(adj.Amount)
			}
		case salary.AdjustmentDeduction:
			deductions = deductions.Add(adj.Amount)
		}
	}

	gross := attendancePay.Add(overtimeAmount).Add(incentive)

	pt := decimal.Zero
	if gross.GreaterThan(decimal.NewFromInt(ptGrossThreshold)) &&
		in.baseSalary.GreaterThanOrEqual(decimal.NewFromInt(ptSalaryFloor)) {
		pt = decimal.NewFromInt(ptAmount)
	}

	tds := decimal.Zero
	if in.baseSalary.LessThan(decimal.NewFromInt(tdsSalaryCeiling)) &&
		cumulativeSalarySinceJoining(in.baseSalary, in.joinDate, in.att.Month).
			GreaterThanOrEqual(decimal.NewFromInt(tdsCumulativeMin)) &&
		!tdsExempt(in.department, in.designation) {
		tds = gross.Mul(decimal.RequireFromString(tdsRate)).Round(2)
	}

	net := gross.Sub(tds).Sub(pt).Sub(deductions).Add(otherAdditions).Round(0)

	b := salary.Breakdown{
		Attendance:    in.att,
		BaseSalary:    in.baseSalary,
		FullCycleDays: fullCycleDays,
		PerDayRate:    perDayRate.Round(2),
		HourlyRate:    hourlyRate.Round(2),

		PayableSundays:      payableSundays,
		ApprovedLeaveCredit: leaveCredit,
		LOPDays:             lopDays,
		PayableDays:         payableDays,

		AttendancePay: attendancePay.Round(2),

		OvertimeEnabled: in.overtimeEnabled,
		OvertimeHours:   overtimeHours,
		OvertimeAmount:  overtimeAmount.Round(2),

		Adjustments:          in.adjustments,
		IncentiveAmount:      incentive,
		OtherAdditions:       otherAdditions,
		AdjustmentDeductions: deductions,

		GrossSalary:     gross.Round(2),
		ProfessionalTax: pt,
		TDSDeduction:    tds,
		NetSalary:       net,
	}
	if b.Adjustments == nil {
		b.Adjustments = []salary.Adjustment{}
	}
	return b, nil
}

// cumulativeSalarySinceJoining estimates total earnings as base salary
// times whole payroll cycles from the joining cycle through the given
// month, both inclusive.
func cumulativeSalarySinceJoining(baseSalary decimal.Decimal, joinDate paycycle.LocalDate, month string) decimal.Decimal {
	cycles := cumulativeCyclesSinceJoining(joinDate, month)
	if cycles <= 0 {
		return decimal.Zero
	}
	return baseSalary.Mul(decimal.NewFromInt(int64(cycles)))
}

func cumulativeCyclesSinceJoining(joinDate paycycle.LocalDate, month string) int {
	if joinDate.IsZero() {
		return 0
	}
	year, m, err := paycycle.ParseMonth(month)
	if err != nil {
		return 0
	}
	joinYear, joinMonth, err := paycycle.ParseMonth(paycycle.CycleForDate(joinDate))
	if err != nil {
		return 0
	}
	return (year-joinYear)*12 + int(m) - int(joinMonth) + 1
}

func tdsExempt(department, designation string) bool {
	return strings.Contains(strings.ToUpper(department), tdsExemptFragment) ||
		strings.Contains(strings.ToUpper(designation), tdsExemptFragment)
}
