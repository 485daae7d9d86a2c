package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/middleware"
	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/response"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/jwt"
	"github.com/absensi-dosen/absensi-backend-go/internal/service/file"
	"github.com/go-chi/chi/v5"
)

type ClarificationHandler interface {
	// Dosen
	Submit(w http.ResponseWriter, r *http.Request)

	// Kajur
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)

	History(w http.ResponseWriter, r *http.Request)
}

type ClarificationHandlerImpl struct {
	clarificationService clarification.ClarificationService
	fileService          file.FileService
}

func NewClarificationHandler(clarificationService clarification.ClarificationService, fileService file.FileService) ClarificationHandler {
	return &ClarificationHandlerImpl{
		clarificationService: clarificationService,
		fileService:          fileService,
	}
}

func actorFromClaims(c jwt.Claims) clarification.Actor {
	return clarification.Actor{
		NIP:        c.NIP,
		FullName:   c.FullName,
		Role:       c.Role,
		Department: c.Department,
	}
}

// Submit implements ClarificationHandler.
func (h *ClarificationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req clarification.SubmitRequest

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

	// Identity always comes from the token
	req.Actor = actorFromClaims(claims)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	evidence, header, err := r.FormFile("evidence")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if evidence != nil {
		defer evidence.Close()

		path, err := h.fileService.UploadClarificationEvidence(r.Context(), claims.NIP, evidence, header.Filename)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		req.EvidencePath = &path
	}

	result, err := h.clarificationService.Submit(r.Context(), req)
	if err != nil {
		if req.EvidencePath != nil {
			if delErr := h.fileService.DeleteFile(r.Context(), *req.EvidencePath); delErr != nil {
				slog.Error("Failed to delete orphaned evidence", "path", *req.EvidencePath, "error", delErr)
			}
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clarification submitted successfully", result)
}

// Approve implements ClarificationHandler.
func (h *ClarificationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid clarification ID", nil)
		return
	}

	if err := h.clarificationService.Approve(r.Context(), id, actorFromClaims(claims)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clarification approved successfully", nil)
}

// Reject implements ClarificationHandler.
func (h *ClarificationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req clarification.RejectRequest

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid clarification ID", nil)
		return
	}

	// Reason is optional, an empty body is accepted
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.clarificationService.Reject(r.Context(), id, actorFromClaims(claims), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clarification rejected successfully", nil)
}

// History implements ClarificationHandler.
func (h *ClarificationHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	history, err := h.clarificationService.History(r.Context(), actorFromClaims(claims))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}
