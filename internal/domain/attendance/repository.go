package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// ListByNIP returns every record of one lecturer, newest first
	ListByNIP(ctx context.Context, nip string) ([]Record, error)

	// ListByNIPAndMonth returns one lecturer's records in m, newest first
	ListByNIPAndMonth(ctx context.Context, nip string, m Month) ([]Record, error)

	// ListByMonth returns all records in m joined with the owning lecturer
	ListByMonth(ctx context.Context, m Month) ([]Record, error)

	GetByID(ctx context.Context, id int64) (Record, error)
	GetByNIPAndDate(ctx context.Context, nip string, date time.Time) (Record, error)

	// LatestMonth returns the month of the lecturer's newest record; ok is false when none exist
	LatestMonth(ctx context.Context, nip string) (m Month, ok bool, err error)

	// CountApprovedLeave counts approved records in year whose remark contains marker
	CountApprovedLeave(ctx context.Context, nip string, year int, marker string) (int, error)

	UpdateStatus(ctx context.Context, id int64, status RawStatus, remark string) error

	// UpdateStatusByDate sets the status of the record on date; a nil remark leaves it unchanged
	UpdateStatusByDate(ctx context.Context, nip string, date time.Time, status RawStatus, remark *string) error

	// Insert adds r unless a record already exists for (nip, date) and reports whether it was added
	Insert(ctx context.Context, r Record) (bool, error)
}
