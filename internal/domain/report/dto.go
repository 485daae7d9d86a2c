package report

import (
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type MonthlyReportRequest struct {
	Month string `json:"month" validate:"required"`

	month attendance.Month
}

func (r *MonthlyReportRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Month != "" {
		if t, ok := validator.IsValidYearMonth(r.Month); ok {
			r.month = attendance.MonthOf(t)
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the parsed month. Valid after Validate succeeds.
func (r *MonthlyReportRequest) Period() attendance.Month {
	return r.month
}

// ExportFile is a rendered report ready to be sent as an attachment.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
