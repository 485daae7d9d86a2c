package leave

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/leave"
)

// QuotaService derives annual leave balances from approved attendance rows.
type QuotaService struct {
	attendance.AttendanceRepository
}

func NewQuotaService(attendanceRepository attendance.AttendanceRepository) *QuotaService {
	return &QuotaService{AttendanceRepository: attendanceRepository}
}

// Balance is recomputed from storage on every call and never cached.
func (q *QuotaService) Balance(ctx context.Context, l lecturer.Lecturer, year int) (leave.Balance, error) {
	used, err := q.AttendanceRepository.CountApprovedLeave(ctx, l.NIP, year, leave.LeaveMarker)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to count used leave: %w", err)
	}
	return leave.NewBalance(year, l.Quota(), used), nil
}

// EnsureAvailable checks every calendar year touched by days against that year's balance.
func (q *QuotaService) EnsureAvailable(ctx context.Context, l lecturer.Lecturer, days []time.Time) error {
	perYear := leave.CountByYear(days)

	years := make([]int, 0, len(perYear))
	for y := range perYear {
		years = append(years, y)
	}
	slices.Sort(years)

	for _, year := range years {
		balance, err := q.Balance(ctx, l, year)
		if err != nil {
			return err
		}
		if requested := perYear[year]; requested > balance.Remaining {
			return fmt.Errorf("%w: %d day(s) left in %d, %d requested",
				leave.ErrInsufficientBalance, balance.Remaining, year, requested)
		}
	}
	return nil
}
