package report

import (
	"context"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// BuildReport aggregates m without side effects
	BuildReport(ctx context.Context, m attendance.Month) (MonthlyReport, error)

	// Generate builds the report and keeps it as the download artifact of sessionKey,
	// replacing any earlier one
	Generate(ctx context.Context, sessionKey string, m attendance.Month) (MonthlyReport, error)

	// Download renders the last generated report of sessionKey as a spreadsheet
	Download(ctx context.Context, sessionKey string) (ExportFile, error)
}
