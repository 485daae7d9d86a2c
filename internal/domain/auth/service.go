package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string) error

	// Account administration
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateLeaveQuota(ctx context.Context, req UpdateLeaveQuotaRequest) error
	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) error
}
