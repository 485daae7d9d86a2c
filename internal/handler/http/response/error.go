package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/leave"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/report"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/storage"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/validator"
	"github.com/absensi-dosen/absensi-backend-go/internal/service/file"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Lecturer domain errors
	case errors.Is(err, lecturer.ErrLecturerNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, lecturer.ErrNIPAlreadyExists):
		Conflict(w, "NIP already registered")
	case errors.Is(err, lecturer.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrNotClarifiable):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrDataFormat):
		BadRequest(w, err.Error(), nil)

	// Clarification domain errors
	case errors.Is(err, clarification.ErrClarificationNotFound):
		NotFound(w, "Clarification not found")
	case errors.Is(err, clarification.ErrAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, clarification.ErrForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, clarification.ErrMonthlyQuotaExceeded),
		errors.Is(err, clarification.ErrNoRecordsSelected):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrAttendanceMissing),
		errors.Is(err, leave.ErrDayOccupied),
		errors.Is(err, leave.ErrNoWeekdays),
		errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrNoReportGenerated):
		NotFound(w, err.Error())
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)

	// Files
	case errors.Is(err, file.ErrInvalidFileType),
		errors.Is(err, file.ErrFileTooLarge):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, storage.ErrFileNotFound):
		NotFound(w, "File not found")
	case errors.Is(err, storage.ErrInvalidPath):
		BadRequest(w, "Invalid file path", nil)

	case errors.Is(err, database.ErrTransaction):
		slog.Error("transaction failed", "error", err)
		InternalServerError(w, "The change could not be saved, nothing was modified")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
