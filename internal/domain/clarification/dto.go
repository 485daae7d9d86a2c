package clarification

import (
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/validator"
)

// Actor is the authenticated user performing an operation.
type Actor struct {
	NIP        string
	FullName   string
	Role       lecturer.Role
	Department string
}

type SubmitRequest struct {
	RecordIDs []int64 `json:"record_ids"`
	Category  string  `json:"category" validate:"required,max=255"`
	Type      string  `json:"request_type" validate:"required,max=255"`

	// Set by the handler
	EvidencePath *string `json:"-"`
	Actor        Actor   `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	errs := validator.Struct(r)

	if len(r.RecordIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "record_ids",
			Message: ErrNoRecordsSelected.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitResponse struct {
	Submitted []ClarificationResponse `json:"submitted"`
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (r *RejectRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

// Usage is the forgot-attendance submission count for one lecturer and month.
type Usage struct {
	Month          string `json:"month"`
	ForgotCheckIn  int    `json:"forgot_check_in"`
	ForgotCheckOut int    `json:"forgot_check_out"`
	Limit          int    `json:"limit"`
}

type ClarificationResponse struct {
	ID              int64   `json:"id"`
	NIP             string  `json:"nip"`
	FullName        string  `json:"full_name"`
	Department      string  `json:"department"`
	Date            string  `json:"date"`
	Category        string  `json:"category"`
	Type            string  `json:"request_type"`
	EvidencePath    *string `json:"evidence_path,omitempty"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
	ProcessedAt     *string `json:"processed_at,omitempty"`
}

func NewClarificationResponse(c Clarification) ClarificationResponse {
	resp := ClarificationResponse{
		ID:              c.ID,
		NIP:             c.NIP,
		FullName:        c.FullName,
		Department:      c.Department,
		Date:            c.Date.Format("2006-01-02"),
		Category:        c.Category,
		Type:            string(c.Type),
		EvidencePath:    c.EvidencePath,
		Status:          string(c.Status),
		RejectionReason: c.RejectionReason,
		SubmittedAt:     c.SubmittedAt.Format(time.RFC3339),
	}
	if c.ProcessedAt != nil {
		processed := c.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &processed
	}
	return resp
}
