package attendance

import "time"

// RecordResponse is one record rendered for a dashboard.
type RecordResponse struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	DateText string `json:"date_formatted"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Remark   string `json:"remark"`
	DisplayStatus
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:            r.ID,
		Date:          r.Date.Format("2006-01-02"),
		DateText:      r.Date.Format("02/01/2006"),
		CheckIn:       FormatClock(r.CheckIn),
		CheckOut:      FormatClock(r.CheckOut),
		Remark:        r.Remark,
		DisplayStatus: Classify(r),
	}
}

// LeaveSummary is the annual leave position shown next to the records.
type LeaveSummary struct {
	Year      int `json:"year"`
	Quota     int `json:"quota"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// ForgotUsage counts forgot-attendance clarifications submitted in one month.
type ForgotUsage struct {
	Month          string `json:"month"`
	ForgotCheckIn  int    `json:"forgot_check_in"`
	ForgotCheckOut int    `json:"forgot_check_out"`
	Limit          int    `json:"limit"`
}

type DashboardResponse struct {
	NIP         string           `json:"nip"`
	FullName    string           `json:"full_name"`
	Records     []RecordResponse `json:"records"`
	Leave       LeaveSummary     `json:"leave"`
	ForgotUsage ForgotUsage      `json:"forgot_usage"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// SummaryResponse is the per-lecturer drill-down for Kajur and Admin.
type SummaryResponse struct {
	NIP      string           `json:"nip"`
	FullName string           `json:"full_name"`
	Month    string           `json:"month,omitempty"`
	Records  []RecordResponse `json:"records"`
	Leave    LeaveSummary     `json:"leave"`
}

type LecturerResponse struct {
	NIP              string `json:"nip"`
	FullName         string `json:"full_name"`
	Department       string `json:"department"`
	DepartmentDetail string `json:"department_detail"`
}
