package attendance

import "strings"

type StatusKind uint8

const (
	StatusUnset StatusKind = iota
	StatusPresent
	StatusPending
	StatusApproved
	StatusRejected
	StatusUnknown
)

// Stored values of the attendance status column.
const (
	statusPresentText  = "Hadir"
	statusPendingText  = "Menunggu Persetujuan Kajur"
	statusApprovedText = "Disetujui Kajur"
	statusRejectedText = "Ditolak Kajur"
)

// RawStatus is the workflow state stored on an attendance row.
// Text is only meaningful for StatusUnknown and keeps the stored value verbatim.
type RawStatus struct {
	Kind StatusKind
	Text string
}

var (
	Unset    = RawStatus{Kind: StatusUnset}
	Present  = RawStatus{Kind: StatusPresent}
	Pending  = RawStatus{Kind: StatusPending}
	Approved = RawStatus{Kind: StatusApproved}
	Rejected = RawStatus{Kind: StatusRejected}
)

func ParseRawStatus(s string) RawStatus {
	switch v := strings.TrimSpace(s); v {
	case "":
		return Unset
	case statusPresentText:
		return Present
	case statusPendingText:
		return Pending
	case statusApprovedText:
		return Approved
	case statusRejectedText:
		return Rejected
	default:
		return RawStatus{Kind: StatusUnknown, Text: v}
	}
}

// Value returns the text persisted for s.
func (s RawStatus) Value() string {
	switch s.Kind {
	case StatusPresent:
		return statusPresentText
	case StatusPending:
		return statusPendingText
	case StatusApproved:
		return statusApprovedText
	case StatusRejected:
		return statusRejectedText
	case StatusUnknown:
		return s.Text
	default:
		return ""
	}
}

func (s RawStatus) String() string {
	return s.Value()
}

// InWorkflow reports whether the row is owned by an approval workflow.
func (s RawStatus) InWorkflow() bool {
	switch s.Kind {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}
