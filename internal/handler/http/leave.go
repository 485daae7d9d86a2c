package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/leave"
	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/middleware"
	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/response"
	"github.com/absensi-dosen/absensi-backend-go/internal/service/file"
)

type LeaveHandler interface {
	// Admin
	Apply(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)

	// Dosen
	MyHistory(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
	fileService  file.FileService
}

func NewLeaveHandler(leaveService leave.LeaveService, fileService file.FileService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
		fileService:  fileService,
	}
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(file.MaxUploadSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.RecordedBy = claims.NIP

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	letter, header, err := r.FormFile("letter")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if letter != nil {
		defer letter.Close()

		path, err := l.fileService.UploadLeaveLetter(r.Context(), req.NIP, letter, header.Filename)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		req.EvidencePath = &path
	}

	result, err := l.leaveService.ApplyLeave(r.Context(), req)
	if err != nil {
		if req.EvidencePath != nil {
			if delErr := l.fileService.DeleteFile(r.Context(), *req.EvidencePath); delErr != nil {
				slog.Error("Failed to delete orphaned leave letter", "path", *req.EvidencePath, "error", delErr)
			}
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave recorded successfully", result)
}

// ListAll implements LeaveHandler.
func (l *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	leaves, err := l.leaveService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// MyHistory implements LeaveHandler.
func (l *LeaveHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	leaves, err := l.leaveService.History(r.Context(), claims.NIP)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}
