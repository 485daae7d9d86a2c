package http

import (
	"net/http"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/middleware"
	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/response"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	// Dosen
	Dashboard(w http.ResponseWriter, r *http.Request)

	// Kajur
	KajurDashboard(w http.ResponseWriter, r *http.Request)

	// Kajur, Admin
	LecturerSummary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService    attendance.AttendanceService
	clarificationService clarification.ClarificationService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, clarificationService clarification.ClarificationService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService:    attendanceService,
		clarificationService: clarificationService,
	}
}

// KajurDashboardResponse lists the department and its pending clarifications.
type KajurDashboardResponse struct {
	Department string                                `json:"department"`
	Lecturers  []attendance.LecturerResponse         `json:"lecturers"`
	Pending    []clarification.ClarificationResponse `json:"pending_clarifications"`
}

// Dashboard implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	dashboard, err := h.attendanceService.LecturerDashboard(r.Context(), claims.NIP, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}

// KajurDashboard implements AttendanceHandler.
func (h *AttendanceHandlerImpl) KajurDashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	lecturers, err := h.attendanceService.ListLecturersInDepartment(r.Context(), claims.Department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	pending, err := h.clarificationService.ListPendingForDepartment(r.Context(), claims.Department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, KajurDashboardResponse{
		Department: claims.Department,
		Lecturers:  lecturers,
		Pending:    pending,
	})
}

// LecturerSummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) LecturerSummary(w http.ResponseWriter, r *http.Request) {
	nip := chi.URLParam(r, "nip")
	if !validator.IsValidNIP(nip) {
		response.BadRequest(w, "Invalid NIP", nil)
		return
	}

	summary, err := h.attendanceService.AbsensiSummary(r.Context(), nip, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
