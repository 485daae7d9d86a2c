package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/leave"
)

// UnknownLecturerName is shown when a summary is requested for a NIP without an account.
const UnknownLecturerName = "Tidak Ditemukan"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	lecturer.LecturerRepository
	leaveService         leave.LeaveService
	clarificationService clarification.ClarificationService
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	lecturerRepository lecturer.LecturerRepository,
	leaveService leave.LeaveService,
	clarificationService clarification.ClarificationService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		LecturerRepository:   lecturerRepository,
		leaveService:         leaveService,
		clarificationService: clarificationService,
	}
}

// LecturerDashboard implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) LecturerDashboard(ctx context.Context, nip string, now time.Time) (attendance.DashboardResponse, error) {
	l, err := a.LecturerRepository.GetByNIP(ctx, nip)
	if err != nil {
		return attendance.DashboardResponse{}, err
	}

	records, err := a.AttendanceRepository.ListByNIP(ctx, nip)
	if err != nil {
		return attendance.DashboardResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	balance, err := a.leaveService.RemainingBalance(ctx, nip, now.Year())
	if err != nil {
		return attendance.DashboardResponse{}, err
	}

	usage, err := a.clarificationService.MonthlyUsage(ctx, nip, attendance.MonthOf(now))
	if err != nil {
		return attendance.DashboardResponse{}, err
	}

	return attendance.DashboardResponse{
		NIP:      l.NIP,
		FullName: l.FullName,
		Records:  toRecordResponses(records),
		Leave:    toLeaveSummary(balance),
		ForgotUsage: attendance.ForgotUsage{
			Month:          usage.Month,
			ForgotCheckIn:  usage.ForgotCheckIn,
			ForgotCheckOut: usage.ForgotCheckOut,
			Limit:          usage.Limit,
		},
		GeneratedAt: now,
	}, nil
}

// AbsensiSummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AbsensiSummary(ctx context.Context, nip string, now time.Time) (attendance.SummaryResponse, error) {
	resp := attendance.SummaryResponse{NIP: nip, FullName: UnknownLecturerName, Records: []attendance.RecordResponse{}}

	// Attendance rows may exist for a NIP without an account
	var quota int
	l, err := a.LecturerRepository.GetByNIP(ctx, nip)
	switch {
	case err == nil:
		resp.FullName = l.FullName
		quota = l.Quota()
	case !errors.Is(err, lecturer.ErrLecturerNotFound):
		return attendance.SummaryResponse{}, err
	}

	used, err := a.AttendanceRepository.CountApprovedLeave(ctx, nip, now.Year(), leave.LeaveMarker)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to count used leave: %w", err)
	}
	resp.Leave = toLeaveSummary(leave.NewBalance(now.Year(), quota, used))

	month, ok, err := a.AttendanceRepository.LatestMonth(ctx, nip)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to find latest month: %w", err)
	}
	if !ok {
		return resp, nil
	}

	records, err := a.AttendanceRepository.ListByNIPAndMonth(ctx, nip, month)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	resp.Month = month.String()
	resp.Records = toRecordResponses(records)
	return resp, nil
}

// ListLecturersInDepartment implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListLecturersInDepartment(ctx context.Context, department string) ([]attendance.LecturerResponse, error) {
	lecturers, err := a.LecturerRepository.ListByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}

	out := make([]attendance.LecturerResponse, 0, len(lecturers))
	for _, l := range lecturers {
		out = append(out, attendance.LecturerResponse{
			NIP:              l.NIP,
			FullName:         l.FullName,
			Department:       l.Department,
			DepartmentDetail: l.DepartmentDetail,
		})
	}
	return out, nil
}

func toRecordResponses(records []attendance.Record) []attendance.RecordResponse {
	out := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, attendance.NewRecordResponse(r))
	}
	return out
}

func toLeaveSummary(b leave.Balance) attendance.LeaveSummary {
	return attendance.LeaveSummary{
		Year:      b.Year,
		Quota:     b.Quota,
		Used:      b.Used,
		Remaining: b.Remaining,
	}
}
