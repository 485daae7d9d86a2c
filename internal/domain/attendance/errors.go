package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDataFormat         = errors.New("invalid attendance data format")
	ErrNotClarifiable     = errors.New("attendance record cannot be clarified in its current state")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)

// ErrInvertedInterval is a DataFormat error for a check-out earlier than the check-in.
var ErrInvertedInterval = fmt.Errorf("%w: check-out before check-in", ErrDataFormat)
