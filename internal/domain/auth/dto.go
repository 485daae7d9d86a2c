package auth

import (
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	NIP      string `json:"nip"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	// NIP
	if validator.IsEmpty(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip",
			Message: "nip is required",
		})
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateUserRequest struct {
	NIP              string `json:"nip" validate:"required,numeric,min=8,max=18"`
	Password         string `json:"password" validate:"required,min=6,max=72"`
	FullName         string `json:"full_name" validate:"required,max=255"`
	Department       string `json:"department" validate:"required,max=100"`
	DepartmentDetail string `json:"department_detail" validate:"max=255"`
	Role             string `json:"role" validate:"required,oneof=Dosen Kajur Admin"`
	AnnualLeaveQuota *int   `json:"annual_leave_quota" validate:"omitempty,gte=0"`
}

func (r *CreateUserRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveQuotaRequest struct {
	NIP   string `json:"-"`
	Quota *int   `json:"annual_leave_quota" validate:"required,gte=0,max=365"`
}

func (r *UpdateLeaveQuotaRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	NIP              string `json:"-"`
	Department       string `json:"department" validate:"required,max=100"`
	DepartmentDetail string `json:"department_detail" validate:"max=255"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
	Role                 string `json:"role"`
	FullName             string `json:"full_name"`
}

type UserResponse struct {
	NIP              string `json:"nip"`
	FullName         string `json:"full_name"`
	Department       string `json:"department"`
	DepartmentDetail string `json:"department_detail"`
	Role             string `json:"role"`
	AnnualLeaveQuota *int   `json:"annual_leave_quota"`
}

func NewUserResponse(l lecturer.Lecturer) UserResponse {
	return UserResponse{
		NIP:              l.NIP,
		FullName:         l.FullName,
		Department:       l.Department,
		DepartmentDetail: l.DepartmentDetail,
		Role:             string(l.Role),
		AnnualLeaveQuota: l.AnnualLeaveQuota,
	}
}
