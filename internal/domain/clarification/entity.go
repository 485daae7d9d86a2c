package clarification

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "Menunggu Kajur"
	StatusApproved Status = "Disetujui"
	StatusRejected Status = "Ditolak"
)

func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// ExcuseKind is the excuse class derived from a clarification category.
type ExcuseKind uint8

const (
	ExcuseGeneral ExcuseKind = iota
	ExcuseFlexible
	ExcuseNonFlexible
)

// ParseExcuseKind classifies a free-text category. "Non Fleksibel" contains
// "Fleksibel", so the non-flexible check runs first.
func ParseExcuseKind(category string) ExcuseKind {
	switch {
	case strings.Contains(category, "Non Fleksibel"):
		return ExcuseNonFlexible
	case strings.Contains(category, "Fleksibel"):
		return ExcuseFlexible
	default:
		return ExcuseGeneral
	}
}

func (k ExcuseKind) String() string {
	switch k {
	case ExcuseNonFlexible:
		return "non_flexible"
	case ExcuseFlexible:
		return "flexible"
	default:
		return "general"
	}
}

// RequestType is the letter type (jenis surat) of a clarification.
type RequestType string

const (
	ForgotCheckIn  RequestType = "Lupa Absen Masuk"
	ForgotCheckOut RequestType = "Lupa Absen Pulang"
)

func ParseRequestType(s string) RequestType {
	return RequestType(strings.TrimSpace(s))
}

// QuotaLimited reports whether submissions of t are capped per calendar month.
func (t RequestType) QuotaLimited() bool {
	return t == ForgotCheckIn || t == ForgotCheckOut
}

type Clarification struct {
	ID              int64
	NIP             string
	FullName        string
	Department      string
	Date            time.Time
	Category        string
	Type            RequestType
	EvidencePath    *string
	Status          Status
	RejectionReason *string
	SubmittedAt     time.Time
	ProcessedAt     *time.Time
}

func (c Clarification) Excuse() ExcuseKind {
	return ParseExcuseKind(c.Category)
}

// Approve moves a pending clarification to approved.
func (c *Clarification) Approve(at time.Time) error {
	if c.Status != StatusPending {
		return fmt.Errorf("%w: clarification %d is %s", ErrAlreadyProcessed, c.ID, c.Status)
	}
	c.Status = StatusApproved
	c.ProcessedAt = &at
	return nil
}

// Reject moves a pending clarification to rejected with the given reason.
func (c *Clarification) Reject(reason string, at time.Time) error {
	if c.Status != StatusPending {
		return fmt.Errorf("%w: clarification %d is %s", ErrAlreadyProcessed, c.ID, c.Status)
	}
	c.Status = StatusRejected
	c.RejectionReason = &reason
	c.ProcessedAt = &at
	return nil
}
