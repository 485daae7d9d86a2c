package lecturer

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleDosen Role = "Dosen" // Lecturer
	RoleKajur Role = "Kajur" // Head of department, approves clarifications
	RoleAdmin Role = "Admin" // Records leave, manages users and reports
)

// ParseRole maps the stored role column onto a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleDosen:
		return RoleDosen, nil
	case RoleKajur:
		return RoleKajur, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

type Lecturer struct {
	NIP              string
	FullName         string
	Department       string
	DepartmentDetail string
	Role             Role
	AnnualLeaveQuota *int
	PasswordHash     string
}

// Quota returns the annual leave quota, 0 when none was assigned.
func (l Lecturer) Quota() int {
	if l.AnnualLeaveQuota == nil {
		return 0
	}
	return *l.AnnualLeaveQuota
}

// IsKajurOf reports whether l heads the given department.
func (l Lecturer) IsKajurOf(department string) bool {
	return l.Role == RoleKajur && l.Department == department
}
