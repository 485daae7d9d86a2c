package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekdays(t *testing.T) {
	// 2025-07-04 is a Friday
	days := Weekdays(date(2025, 7, 4), date(2025, 7, 8))
	require.Len(t, days, 3)
	assert.Equal(t, date(2025, 7, 4), days[0])
	assert.Equal(t, date(2025, 7, 7), days[1])
	assert.Equal(t, date(2025, 7, 8), days[2])

	assert.Empty(t, Weekdays(date(2025, 7, 5), date(2025, 7, 6)), "weekend only")
	assert.Empty(t, Weekdays(date(2025, 7, 8), date(2025, 7, 7)), "inverted range")
	assert.Len(t, Weekdays(date(2025, 7, 7), date(2025, 7, 7)), 1)
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, IsWeekday(date(2025, 7, 7)))  // Monday
	assert.True(t, IsWeekday(date(2025, 7, 11))) // Friday
	assert.False(t, IsWeekday(date(2025, 7, 12)))
	assert.False(t, IsWeekday(date(2025, 7, 13)))
}

func TestCountByYear(t *testing.T) {
	days := Weekdays(date(2025, 12, 29), date(2026, 1, 2))
	assert.Equal(t, map[int]int{2025: 3, 2026: 2}, CountByYear(days))
}

func TestRemainingBalance(t *testing.T) {
	assert.Equal(t, 9, RemainingBalance(12, 3))
	assert.Equal(t, 0, RemainingBalance(0, 0))
	assert.Equal(t, -2, RemainingBalance(1, 3))

	b := NewBalance(2025, 12, 3)
	assert.Equal(t, Balance{Year: 2025, Quota: 12, Used: 3, Remaining: 9}, b)
}

func TestRemarkFor(t *testing.T) {
	assert.Equal(t, "Cuti Tahunan - Umroh", RemarkFor(AnnualLeave, "Umroh"))
	assert.Equal(t, "Cuti Sakit", RemarkFor(SickLeave, "  "))
}

func TestIsLeaveRemark(t *testing.T) {
	assert.True(t, IsLeaveRemark("Cuti Tahunan - Umroh"))
	assert.True(t, IsLeaveRemark("Cuti Besar"))
	assert.False(t, IsLeaveRemark("cuti kecil"))
	assert.False(t, IsLeaveRemark("Dinas luar"))
}

func TestLeaveType_ConsumesQuota(t *testing.T) {
	assert.True(t, ParseLeaveType(" Cuti Tahunan ").ConsumesQuota())
	assert.False(t, SickLeave.ConsumesQuota())
	assert.False(t, LeaveType("Cuti Khusus").ConsumesQuota())
}

func TestApplyLeaveRequest_Validate(t *testing.T) {
	valid := ApplyLeaveRequest{
		NIP:        "198001012005011001",
		LetterDate: "2025-07-01",
		StartDate:  "2025-07-07",
		EndDate:    "2025-07-11",
		Type:       "Cuti Tahunan",
	}
	require.NoError(t, valid.Validate())
	_, start, end := valid.Dates()
	assert.Equal(t, date(2025, 7, 7), start)
	assert.Equal(t, date(2025, 7, 11), end)

	inverted := valid
	inverted.EndDate = "2025-07-01"
	assert.Error(t, inverted.Validate())

	missing := ApplyLeaveRequest{StartDate: "07-07-2025"}
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nip")
	assert.Contains(t, err.Error(), "start_date")
}
