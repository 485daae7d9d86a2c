package report

import (
	"context"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
)

// ReportRepository reads the monthly snapshot the aggregator works on
type ReportRepository interface {
	// ListLecturers returns every Dosen ordered by department, then name
	ListLecturers(ctx context.Context) ([]lecturer.Lecturer, error)

	// ListAttendance returns every attendance row dated in m
	ListAttendance(ctx context.Context, m attendance.Month) ([]attendance.Record, error)

	// ListApprovedClarifications returns approved clarifications whose clarified date is in m, oldest first
	ListApprovedClarifications(ctx context.Context, m attendance.Month) ([]clarification.Clarification, error)
}
