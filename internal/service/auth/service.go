package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	lecturer.LecturerRepository
	jwt.Service
}

func NewAuthService(lecturerRepository lecturer.LecturerRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		LecturerRepository: lecturerRepository,
		Service:            jwtService,
	}
}

// HashPassword is shared with the importer, which seeds accounts with bcrypt(nip).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	// Langsung ambil user, error jika tidak ada
	user, err := a.LecturerRepository.GetByNIP(ctx, req.NIP)
	if err != nil {
		if errors.Is(err, lecturer.ErrLecturerNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by nip: %w", err)
	}

	// Cek password
	if user.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(jwt.Claims{
		NIP:        user.NIP,
		FullName:   user.FullName,
		Role:       user.Role,
		Department: user.Department,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		Role:                 string(user.Role),
		FullName:             user.FullName,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token)
	return nil
}

// CreateUser implements auth.AuthService.
func (a *AuthServiceImpl) CreateUser(ctx context.Context, req auth.CreateUserRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	role, err := lecturer.ParseRole(req.Role)
	if err != nil {
		return auth.UserResponse{}, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := lecturer.Lecturer{
		NIP:              req.NIP,
		FullName:         req.FullName,
		Department:       req.Department,
		DepartmentDetail: req.DepartmentDetail,
		Role:             role,
		AnnualLeaveQuota: req.AnnualLeaveQuota,
		PasswordHash:     hashed,
	}
	if err := a.LecturerRepository.Create(ctx, newUser); err != nil {
		return auth.UserResponse{}, err
	}

	slog.Info("user created", "nip", newUser.NIP, "role", newUser.Role)
	return auth.NewUserResponse(newUser), nil
}

// ListUsers implements auth.AuthService.
func (a *AuthServiceImpl) ListUsers(ctx context.Context) ([]auth.UserResponse, error) {
	users, err := a.LecturerRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]auth.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.NewUserResponse(u))
	}
	return out, nil
}

// UpdateLeaveQuota implements auth.AuthService.
func (a *AuthServiceImpl) UpdateLeaveQuota(ctx context.Context, req auth.UpdateLeaveQuotaRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return a.LecturerRepository.UpdateLeaveQuota(ctx, req.NIP, *req.Quota)
}

// UpdateDepartment implements auth.AuthService.
func (a *AuthServiceImpl) UpdateDepartment(ctx context.Context, req auth.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return a.LecturerRepository.UpdateDepartment(ctx, req.NIP, req.Department, req.DepartmentDetail)
}
