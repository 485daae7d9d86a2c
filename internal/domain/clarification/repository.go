package clarification

import (
	"context"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
)

type ClarificationRepository interface {
	Create(ctx context.Context, c Clarification) (Clarification, error)
	GetByID(ctx context.Context, id int64) (Clarification, error)

	// Update persists status, rejection reason and processed time
	Update(ctx context.Context, c Clarification) error

	ListPendingByDepartment(ctx context.Context, department string) ([]Clarification, error)

	// History listings, newest submission first
	ListByNIP(ctx context.Context, nip string) ([]Clarification, error)
	ListByDepartment(ctx context.Context, department string) ([]Clarification, error)
	ListAll(ctx context.Context) ([]Clarification, error)

	// CountByTypeInMonth counts submissions of t made during m
	CountByTypeInMonth(ctx context.Context, nip string, t RequestType, m attendance.Month) (int, error)

	// ListApprovedInMonth returns approved clarifications whose clarified date lies in m
	ListApprovedInMonth(ctx context.Context, m attendance.Month) ([]Clarification, error)
}
