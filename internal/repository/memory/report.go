package memory

import (
	"context"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/report"
)

type reportRepo struct{ s *Store }

func (s *Store) Reports() report.ReportRepository { return reportRepo{s} }

func (r reportRepo) ListLecturers(ctx context.Context) ([]lecturer.Lecturer, error) {
	return lecturerRepo(r).ListLecturers(ctx)
}

func (r reportRepo) ListAttendance(ctx context.Context, m attendance.Month) ([]attendance.Record, error) {
	return attendanceRepo(r).ListByMonth(ctx, m)
}

func (r reportRepo) ListApprovedClarifications(ctx context.Context, m attendance.Month) ([]clarification.Clarification, error) {
	return clarificationRepo(r).ListApprovedInMonth(ctx, m)
}
