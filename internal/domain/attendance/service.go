package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// LecturerDashboard lists the lecturer's records with display status, the leave balance
	// for now's year and this month's forgot-attendance usage
	LecturerDashboard(ctx context.Context, nip string, now time.Time) (DashboardResponse, error)

	// AbsensiSummary returns the lecturer's latest month of records and leave balance
	AbsensiSummary(ctx context.Context, nip string, now time.Time) (SummaryResponse, error)

	ListLecturersInDepartment(ctx context.Context, department string) ([]LecturerResponse, error)
}
