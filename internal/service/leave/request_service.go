package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/leave"
)

// RequestService checks that each requested day can be turned into leave.
type RequestService struct {
	attendance.AttendanceRepository
}

func NewRequestService(attendanceRepository attendance.AttendanceRepository) *RequestService {
	return &RequestService{AttendanceRepository: attendanceRepository}
}

// CollectLeaveDays returns the attendance row of every day. A day qualifies only when its
// row exists, has no check-in or check-out and is not already recorded as leave.
func (r *RequestService) CollectLeaveDays(ctx context.Context, nip string, days []time.Time) ([]attendance.Record, error) {
	records := make([]attendance.Record, 0, len(days))
	for _, day := range days {
		date := day.Format("2006-01-02")

		rec, err := r.AttendanceRepository.GetByNIPAndDate(ctx, nip, day)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return nil, fmt.Errorf("%w: %s", leave.ErrAttendanceMissing, date)
			}
			return nil, fmt.Errorf("failed to get attendance for %s: %w", date, err)
		}

		if rec.HasCheckIn() || rec.HasCheckOut() {
			return nil, fmt.Errorf("%w: %s", leave.ErrDayOccupied, date)
		}
		if rec.Status.Kind == attendance.StatusApproved && leave.IsLeaveRemark(rec.Remark) {
			return nil, fmt.Errorf("%w: %s is already %q", leave.ErrDayOccupied, date, rec.Remark)
		}

		records = append(records, rec)
	}
	return records, nil
}
