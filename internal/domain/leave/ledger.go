package leave

import (
	"strings"
	"time"
)

// LeaveMarker is the remark substring that marks an approved day as leave.
// Every leave subtype draws from the same annual pool.
const LeaveMarker = "Cuti"

// IsWeekday reports whether t is Monday through Friday.
func IsWeekday(t time.Time) bool {
	// Monday=0 .. Sunday=6
	return (int(t.Weekday())+6)%7 < 5
}

// Weekdays returns the dates in [start, end] that fall Monday through Friday.
func Weekdays(start, end time.Time) []time.Time {
	start = truncateDay(start)
	end = truncateDay(end)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekday(d) {
			days = append(days, d)
		}
	}
	return days
}

// CountByYear groups days per calendar year.
func CountByYear(days []time.Time) map[int]int {
	counts := make(map[int]int)
	for _, d := range days {
		counts[d.Year()]++
	}
	return counts
}

// RemainingBalance is quota minus consumed. It goes negative when more days were approved than assigned.
func RemainingBalance(quota, consumed int) int {
	return quota - consumed
}

func NewBalance(year, quota, consumed int) Balance {
	return Balance{
		Year:      year,
		Quota:     quota,
		Used:      consumed,
		Remaining: RemainingBalance(quota, consumed),
	}
}

// RemarkFor is the attendance remark written on each leave day.
func RemarkFor(t LeaveType, reason string) string {
	if reason = strings.TrimSpace(reason); reason != "" {
		return string(t) + " - " + reason
	}
	return string(t)
}

func IsLeaveRemark(remark string) bool {
	return strings.Contains(remark, LeaveMarker)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
