package attendance

type Color string

const (
	ColorWarning Color = "warning"
	ColorSuccess Color = "success"
	ColorDanger  Color = "danger"
)

// Labels shown to lecturers.
const (
	LabelPending       = "Menunggu Persetujuan Kajur"
	LabelApproved      = "Disetujui Kajur"
	LabelRejected      = "Ditolak: "
	LabelFulfilled     = "Kehadiran Terpenuhi"
	LabelUnderMinimum  = "Kehadiran Kurang Dari 4 Jam"
	LabelNeedsApproval = "Perlu Klarifikasi"
)

// DisplayStatus is the derived, user-facing state of one record.
type DisplayStatus struct {
	Text        string `json:"status_text"`
	Color       Color  `json:"status_color"`
	Clarifiable bool   `json:"clarifiable"`
}

// Classify derives the display status of r. The first matching rule wins:
// pending, approved, rejected, then the check-in/check-out interval, then missing times.
// Unreadable or inverted times are treated as absent.
func Classify(r Record) DisplayStatus {
	switch r.Status.Kind {
	case StatusPending:
		return DisplayStatus{Text: LabelPending, Color: ColorWarning}
	case StatusApproved:
		text := LabelApproved
		if r.Remark != "" {
			text = r.Remark
		}
		return DisplayStatus{Text: text, Color: ColorSuccess}
	case StatusRejected:
		return DisplayStatus{Text: LabelRejected + r.Remark, Color: ColorDanger, Clarifiable: true}
	}

	if d, ok, err := r.Duration(); ok && err == nil {
		if d >= MinimumPresence {
			return DisplayStatus{Text: LabelFulfilled, Color: ColorSuccess}
		}
		return DisplayStatus{Text: LabelUnderMinimum, Color: ColorDanger}
	}

	return DisplayStatus{Text: LabelNeedsApproval, Color: ColorDanger, Clarifiable: true}
}
