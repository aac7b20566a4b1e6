package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeaveDatesJSON(t *testing.T) {
	dates, err := ParseLeaveDates(`[{"date":"2025-02-05","value":1},{"date":"2025-02-07","value":0.5}]`, DefaultPaidValue)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "2025-02-05", dates[0].Date.String())
	assert.Equal(t, 1.0, dates[0].Value)
	assert.Equal(t, 0.5, dates[1].Value)
}

func TestParseLeaveDatesLegacyCSV(t *testing.T) {
	dates, err := ParseLeaveDates("2025-02-05, 2025-02-07", DefaultCasualValue)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, DefaultCasualValue, dates[0].Value)
	assert.Equal(t, "2025-02-07", dates[1].Date.String())
}

func TestParseLeaveDatesEmpty(t *testing.T) {
	for _, raw := range []string{"", "  ", "null"} {
		dates, err := ParseLeaveDates(raw, DefaultPaidValue)
		require.NoError(t, err)
		assert.Empty(t, dates)
	}
}

func TestParseLeaveDatesInvalid(t *testing.T) {
	_, err := ParseLeaveDates("[{bad json", DefaultPaidValue)
	assert.Error(t, err)

	_, err = ParseLeaveDates("05-02-2025", DefaultPaidValue)
	assert.Error(t, err)
}

func TestMonthlyUsageTotalDays(t *testing.T) {
	u := MonthlyUsage{
		PaidLeaveDates:   []LeaveDate{{Value: 1}, {Value: 0.5}},
		CasualLeaveDates: []LeaveDate{{Value: 0.5}},
	}
	assert.Equal(t, 2.0, u.TotalDays())
}
