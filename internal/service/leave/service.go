package leave

import (
	"context"
	"fmt"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/leave"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	tx             database.Transactor
	lecturerRepo   lecturer.LecturerRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	quotaService   *QuotaService
	requestService *RequestService
}

func NewLeaveService(
	tx database.Transactor,
	lecturerRepo lecturer.LecturerRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:             tx,
		lecturerRepo:   lecturerRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		quotaService:   NewQuotaService(attendanceRepo),
		requestService: NewRequestService(attendanceRepo),
	}
}

// RemainingBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) RemainingBalance(ctx context.Context, nip string, year int) (leave.Balance, error) {
	l, err := s.lecturerRepo.GetByNIP(ctx, nip)
	if err != nil {
		return leave.Balance{}, err
	}
	return s.quotaService.Balance(ctx, l, year)
}

// ApplyLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.ApplyLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	letterDate, startDate, endDate := req.Dates()
	leaveType := leave.ParseLeaveType(req.Type)
	days := leave.Weekdays(startDate, endDate)
	if len(days) == 0 {
		return leave.ApplyLeaveResponse{}, fmt.Errorf("%w: %s to %s", leave.ErrNoWeekdays, req.StartDate, req.EndDate)
	}
	remark := leave.RemarkFor(leaveType, req.Reason)

	var created leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		// Validasi dulu, belum ada perubahan data
		l, err := s.lecturerRepo.GetByNIP(ctx, req.NIP)
		if err != nil {
			return err
		}

		records, err := s.requestService.CollectLeaveDays(ctx, l.NIP, days)
		if err != nil {
			return err
		}

		if leaveType.ConsumesQuota() {
			if err := s.quotaService.EnsureAvailable(ctx, l, days); err != nil {
				return err
			}
		}

		fullName := req.FullName
		if fullName == "" {
			fullName = l.FullName
		}
		created, err = s.leaveRepo.Create(ctx, leave.LeaveRequest{
			NIP:          l.NIP,
			FullName:     fullName,
			LetterDate:   letterDate,
			StartDate:    startDate,
			EndDate:      endDate,
			Type:         leaveType,
			Reason:       req.Reason,
			EvidencePath: req.EvidencePath,
			RecordedBy:   req.RecordedBy,
		})
		if err != nil {
			return fmt.Errorf("%w: record leave request: %w", database.ErrTransaction, err)
		}

		for _, rec := range records {
			if err := s.attendanceRepo.UpdateStatus(ctx, rec.ID, attendance.Approved, remark); err != nil {
				return fmt.Errorf("%w: mark %s as leave: %w", database.ErrTransaction, rec.Date.Format("2006-01-02"), err)
			}
		}
		return nil
	})
	if err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	applied := make([]string, len(days))
	for i, d := range days {
		applied[i] = d.Format("2006-01-02")
	}

	return leave.ApplyLeaveResponse{
		LeaveID:     created.ID,
		NIP:         created.NIP,
		LeaveType:   string(leaveType),
		Remark:      remark,
		AppliedDays: applied,
		DaysCount:   len(applied),
	}, nil
}

// History implements leave.LeaveService.
func (s *LeaveServiceImpl) History(ctx context.Context, nip string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.ListByNIP(ctx, nip)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	out := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, leave.NewLeaveRequestResponse(r))
	}
	return out
}
