package salary

import (
	"testing"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) paycycle.LocalDate {
	t.Helper()
	d, err := paycycle.ParseLocalDate(s)
	require.NoError(t, err)
	return d
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// attFor builds a monthly breakdown with the given credited counters.
// Every day expects 9 hours.
func attFor(month string, fullDays, halfDays, paidSundays int) attendance.MonthlyAttendance {
	m := attendance.MonthlyAttendance{
		Month:    month,
		FullDays: fullDays,
		HalfDays: halfDays,
	}
	for i := 0; i < fullDays; i++ {
		m.Days = append(m.Days, attendance.DayRecord{
			ExpectedHours: 9,
			DayHours:      attendance.DayHours{Status: attendance.StatusFullDay, TotalHours: 9},
		})
	}
	for i := 0; i < halfDays; i++ {
		m.Days = append(m.Days, attendance.DayRecord{
			ExpectedHours: 9,
			DayHours:      attendance.DayHours{Status: attendance.StatusHalfDay, TotalHours: 5},
		})
	}
	for i := 0; i < paidSundays; i++ {
		m.Days = append(m.Days, attendance.DayRecord{
			IsSunday:      true,
			ExpectedHours: 9,
			DayHours:      attendance.DayHours{Status: attendance.StatusWeekoff},
			WeekoffType:   attendance.WeekoffPaid,
		})
	}
	return m
}

func TestComputeBreakdownFullAttendance(t *testing.T) {
	b, err := computeBreakdown(calculationInput{
		att:        attFor("2025-01", 22, 0, 4),
		baseSalary: dec("30000"),
		joinDate:   mustDate(t, "2023-06-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, 31, b.FullCycleDays)
	assert.True(t, b.PerDayRate.Equal(dec("967.74")), "per day rate %s", b.PerDayRate)
	assert.Equal(t, 26.0, b.PayableDays)
	assert.True(t, b.GrossSalary.Equal(dec("25161.29")), "gross %s", b.GrossSalary)

	// Above both PT thresholds; well above the TDS ceiling.
	assert.True(t, b.ProfessionalTax.Equal(dec("200")))
	assert.True(t, b.TDSDeduction.IsZero())
	assert.True(t, b.NetSalary.Equal(dec("24961")), "net %s", b.NetSalary)
}

func TestComputeBreakdownHalfDays(t *testing.T) {
	b, err := computeBreakdown(calculationInput{
		att:        attFor("2025-01", 20, 4, 4),
		baseSalary: dec("31000"),
		joinDate:   mustDate(t, "2023-06-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, 26.0, b.PayableDays) // 20 + 4*0.5 + 4
	assert.True(t, b.AttendancePay.Equal(dec("26000")), "attendance pay %s", b.AttendancePay)
}

func TestComputeBreakdownLeaveCredit(t *testing.T) {
	att := attFor("2025-01", 20, 0, 4)
	att.Days = append(att.Days,
		attendance.DayRecord{
			ExpectedHours: 9,
			DayHours:      attendance.DayHours{Status: attendance.StatusPaidLeave},
			LeaveValue:    1.0,
		},
		attendance.DayRecord{
			ExpectedHours: 9,
			DayHours:      attendance.DayHours{Status: attendance.StatusCasualLeave},
			LeaveValue:    0.5,
		},
	)

	b, err := computeBreakdown(calculationInput{
		att:        att,
		baseSalary: dec("31000"),
		joinDate:   mustDate(t, "2023-06-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1.5, b.ApprovedLeaveCredit)
	assert.Equal(t, 25.5, b.PayableDays)
}

func TestComputeBreakdownEntitlementLOP(t *testing.T) {
	b, err := computeBreakdown(calculationInput{
		att:             attFor("2025-01", 22, 0, 4),
		baseSalary:      dec("31000"),
		joinDate:        mustDate(t, "2023-06-01"),
		entitlement:     &leave.Entitlement{AllowedLeaves: 12},
		totalLeavesUsed: 14,
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, b.LOPDays)
	// 26 payable minus 2 loss-of-pay days at 1000/day.
	assert.True(t, b.AttendancePay.Equal(dec("24000")), "attendance pay %s", b.AttendancePay)
}

func TestComputeBreakdownOvertime(t *testing.T) {
	att := attFor("2025-01", 20, 0, 4)
	// 2.5 hours of countable excess plus one day under the one-hour bar.
	att.Days[0].TotalHours = 11.5
	att.Days[1].TotalHours = 9.8
	// Absent days never earn overtime.
	att.Days = append(att.Days, attendance.DayRecord{
		ExpectedHours: 9,
		DayHours:      attendance.DayHours{Status: attendance.StatusAbsent, TotalHours: 12},
	})

	in := calculationInput{
		att:             att,
		baseSalary:      dec("27900"), // hourly rate exactly 100
		joinDate:        mustDate(t, "2023-06-01"),
		overtimeEnabled: true,
	}

	b, err := computeBreakdown(in)
	require.NoError(t, err)
	assert.Equal(t, 2, b.OvertimeHours)
	assert.True(t, b.OvertimeAmount.Equal(dec("200")), "overtime %s", b.OvertimeAmount)

	in.overtimeEnabled = false
	b, err = computeBreakdown(in)
	require.NoError(t, err)
	assert.Zero(t, b.OvertimeHours)
	assert.True(t, b.OvertimeAmount.IsZero())
}

func TestComputeBreakdownAdjustments(t *testing.T) {
	b, err := computeBreakdown(calculationInput{
		att:        attFor("2025-01", 22, 0, 4),
		baseSalary: dec("30000"),
		joinDate:   mustDate(t, "2023-06-01"),
		adjustments: []salary.Adjustment{
			{Type: salary.AdjustmentAddition, Category: "INCENTIVE", Amount: dec("1000")},
			{Type: salary.AdjustmentAddition, Category: "REIMBURSEMENT", Amount: dec("500")},
			{Type: salary.AdjustmentDeduction, Category: "ADVANCE", Amount: dec("300")},
		},
	})
	require.NoError(t, err)

	// Incentive routes into gross; the other addition and the deduction
	// only move net.
	assert.True(t, b.IncentiveAmount.Equal(dec("1000")))
	assert.True(t, b.OtherAdditions.Equal(dec("500")))
	assert.True(t, b.AdjustmentDeductions.Equal(dec("300")))
	assert.True(t, b.GrossSalary.Equal(dec("26161.29")), "gross %s", b.GrossSalary)
	assert.True(t, b.NetSalary.Equal(dec("26161")), "net %s", b.NetSalary)
}

func TestComputeBreakdownTDS(t *testing.T) {
	base := calculationInput{
		att:         attFor("2025-01", 22, 0, 4),
		baseSalary:  dec("12000"),
		joinDate:    mustDate(t, "2024-01-10"),
		department:  "SALES",
		designation: "EXECUTIVE",
	}

	b, err := computeBreakdown(base)
	require.NoError(t, err)
	assert.True(t, b.TDSDeduction.Equal(dec("1006.45")), "tds %s", b.TDSDeduction)
	assert.True(t, b.ProfessionalTax.IsZero())
	assert.True(t, b.NetSalary.Equal(dec("9058")), "net %s", b.NetSalary)

	t.Run("exempt department", func(t *testing.T) {
		in := base
		in.department = "CLEANING SERVICES"
		b, err := computeBreakdown(in)
		require.NoError(t, err)
		assert.True(t, b.TDSDeduction.IsZero())
	})

	t.Run("exempt designation", func(t *testing.T) {
		in := base
		in.designation = "cleaner"
		b, err := computeBreakdown(in)
		require.NoError(t, err)
		assert.True(t, b.TDSDeduction.IsZero())
	})

	t.Run("below cumulative threshold", func(t *testing.T) {
		in := base
		in.joinDate = mustDate(t, "2024-09-30") // 4 cycles at 12000 is 48000
		b, err := computeBreakdown(in)
		require.NoError(t, err)
		assert.True(t, b.TDSDeduction.IsZero())
	})

	t.Run("at or above the salary ceiling", func(t *testing.T) {
		in := base
		in.baseSalary = dec("15000")
		b, err := computeBreakdown(in)
		require.NoError(t, err)
		assert.True(t, b.TDSDeduction.IsZero())
	})
}

func TestCumulativeCyclesSinceJoining(t *testing.T) {
	// Joining on the 26th starts the next month's cycle.
	assert.Equal(t, 1, cumulativeCyclesSinceJoining(mustDate(t, "2025-01-26"), "2025-02"))
	assert.Equal(t, 3, cumulativeCyclesSinceJoining(mustDate(t, "2024-12-31"), "2025-03"))
	assert.Equal(t, 13, cumulativeCyclesSinceJoining(mustDate(t, "2024-01-10"), "2025-01"))
	assert.Equal(t, 0, cumulativeCyclesSinceJoining(paycycle.LocalDate{}, "2025-01"))
}

func TestShiftWorkHoursFallback(t *testing.T) {
	var m attendance.MonthlyAttendance
	assert.Equal(t, 9.0, m.ShiftWorkHours())
}
