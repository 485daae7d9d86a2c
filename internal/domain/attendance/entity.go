package attendance

import (
	"fmt"
	"strings"
	"time"
)

// Record is one lecturer's attendance row for a single calendar day.
// Check-in and check-out are stored as time-of-day text ("08:00:00.000000").
type Record struct {
	ID         int64
	NIP        string
	FullName   string
	Department string
	Date       time.Time
	CheckIn    *string
	CheckOut   *string
	Status     RawStatus
	Remark     string
}

// MinimumPresence is the shortest check-in to check-out interval that counts as fulfilled attendance.
const MinimumPresence = 4 * time.Hour

const timeOfDayLayout = "15:04:05"

// ParseTimeOfDay parses "HH:MM:SS" with optional fractional seconds and returns the offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse(timeOfDayLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: time of day %q", ErrDataFormat, s)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond()), nil
}

// HasCheckIn reports whether a non-blank check-in value is recorded.
func (r Record) HasCheckIn() bool {
	return present(r.CheckIn)
}

// HasCheckOut reports whether a non-blank check-out value is recorded.
func (r Record) HasCheckOut() bool {
	return present(r.CheckOut)
}

// Duration returns check-out minus check-in. ok is false when either time is missing.
// A check-out earlier than the check-in is an invalid interval and yields ErrInvertedInterval;
// both values are times of day on the same date and never wrap past midnight.
func (r Record) Duration() (d time.Duration, ok bool, err error) {
	if !r.HasCheckIn() || !r.HasCheckOut() {
		return 0, false, nil
	}

	in, err := ParseTimeOfDay(*r.CheckIn)
	if err != nil {
		return 0, true, fmt.Errorf("check-in: %w", err)
	}
	out, err := ParseTimeOfDay(*r.CheckOut)
	if err != nil {
		return 0, true, fmt.Errorf("check-out: %w", err)
	}
	if out < in {
		return 0, true, fmt.Errorf("%w: check-out %s before check-in %s", ErrInvertedInterval, *r.CheckOut, *r.CheckIn)
	}
	return out - in, true, nil
}

// FormatClock renders a stored time of day as "15:04", or " - " when absent or unreadable.
func FormatClock(v *string) string {
	if !present(v) {
		return " - "
	}
	d, err := ParseTimeOfDay(*v)
	if err != nil {
		return " - "
	}
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

func present(v *string) bool {
	return v != nil && strings.TrimSpace(*v) != ""
}

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("%w: month %q, expected YYYY-MM", ErrDataFormat, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start returns midnight UTC of the first day.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns midnight UTC of the first day of the following month.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

func (m Month) Days() int {
	return m.End().AddDate(0, 0, -1).Day()
}

// Contains reports whether t falls on a date inside m.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}
