package leave

import (
	"strings"
	"time"
)

// LeaveType is the kind of leave recorded on a request. Values outside the
// known set are kept as entered.
type LeaveType string

const (
	AnnualLeave          LeaveType = "Cuti Tahunan"
	SickLeave            LeaveType = "Cuti Sakit"
	MaternityLeave       LeaveType = "Cuti Melahirkan"
	ImportantReasonLeave LeaveType = "Cuti Alasan Penting"
	LongServiceLeave     LeaveType = "Cuti Besar"
)

func ParseLeaveType(s string) LeaveType {
	return LeaveType(strings.TrimSpace(s))
}

// ConsumesQuota reports whether days of this type are checked against the annual quota.
func (t LeaveType) ConsumesQuota() bool {
	return t == AnnualLeave
}

func (t LeaveType) String() string {
	return string(t)
}

// LeaveRequest is a recorded leave letter (cuti_dosen).
type LeaveRequest struct {
	ID           int64
	NIP          string
	FullName     string
	LetterDate   time.Time
	StartDate    time.Time
	EndDate      time.Time
	Type         LeaveType
	Reason       string
	EvidencePath *string
	RecordedBy   string
	RecordedAt   time.Time
}

// Balance is the derived annual leave position of one lecturer.
type Balance struct {
	Year      int `json:"year"`
	Quota     int `json:"quota"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}
