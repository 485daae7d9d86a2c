package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateLeaveQuota(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	authService auth.AuthService
}

func NewUserHandler(authService auth.AuthService) UserHandler {
	return &UserHandlerImpl{
		authService: authService,
	}
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req auth.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	user, err := h.authService.CreateUser(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", user)
}

// UpdateLeaveQuota implements UserHandler.
func (h *UserHandlerImpl) UpdateLeaveQuota(w http.ResponseWriter, r *http.Request) {
	var req auth.UpdateLeaveQuotaRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLeaveQuota decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.NIP = chi.URLParam(r, "nip")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.authService.UpdateLeaveQuota(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave quota updated successfully", nil)
}

// UpdateDepartment implements UserHandler.
func (h *UserHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req auth.UpdateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.NIP = chi.URLParam(r, "nip")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.authService.UpdateDepartment(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", nil)
}
