package leave

import (
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	NIP        string `json:"nip" validate:"required,numeric"`
	FullName   string `json:"full_name" validate:"max=255"`
	LetterDate string `json:"letter_date" validate:"required"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Type       string `json:"leave_type" validate:"required,max=100"`
	Reason     string `json:"reason" validate:"max=500"`

	// Set by the handler
	EvidencePath *string `json:"-"`
	RecordedBy   string  `json:"-"`

	letterDate time.Time
	startDate  time.Time
	endDate    time.Time
}

func (r *ApplyLeaveRequest) Validate() error {
	errs := validator.Struct(r)

	var ok bool
	if r.LetterDate != "" {
		if r.letterDate, ok = validator.IsValidDate(r.LetterDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "letter_date",
				Message: "letter_date must be in YYYY-MM-DD format",
			})
		}
	}

	startOK, endOK := false, false
	if r.StartDate != "" {
		if r.startDate, startOK = validator.IsValidDate(r.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != "" {
		if r.endDate, endOK = validator.IsValidDate(r.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if startOK && endOK && r.endDate.Before(r.startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed letter, start and end dates. Valid after Validate succeeds.
func (r *ApplyLeaveRequest) Dates() (letter, start, end time.Time) {
	return r.letterDate, r.startDate, r.endDate
}

type ApplyLeaveResponse struct {
	LeaveID     int64    `json:"leave_id"`
	NIP         string   `json:"nip"`
	LeaveType   string   `json:"leave_type"`
	Remark      string   `json:"remark"`
	AppliedDays []string `json:"applied_days"`
	DaysCount   int      `json:"days_count"`
}

type LeaveRequestResponse struct {
	ID           int64   `json:"id"`
	NIP          string  `json:"nip"`
	FullName     string  `json:"full_name"`
	LetterDate   string  `json:"letter_date"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	LeaveType    string  `json:"leave_type"`
	Reason       string  `json:"reason"`
	EvidencePath *string `json:"evidence_path,omitempty"`
	RecordedBy   string  `json:"recorded_by"`
	RecordedAt   string  `json:"recorded_at"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           l.ID,
		NIP:          l.NIP,
		FullName:     l.FullName,
		LetterDate:   l.LetterDate.Format("2006-01-02"),
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		LeaveType:    string(l.Type),
		Reason:       l.Reason,
		EvidencePath: l.EvidencePath,
		RecordedBy:   l.RecordedBy,
		RecordedAt:   l.RecordedAt.Format(time.RFC3339),
	}
}
