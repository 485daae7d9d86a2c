package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrNoWeekdays           = errors.New("date range contains no weekdays")
	ErrAttendanceMissing    = errors.New("no attendance record for leave date")
	ErrDayOccupied          = errors.New("attendance already recorded for leave date")
	ErrInsufficientBalance  = errors.New("insufficient annual leave balance")
)
