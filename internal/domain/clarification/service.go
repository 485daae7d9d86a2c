package clarification

import (
	"context"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
)

type ClarificationService interface {
	// Submit clarifies the selected attendance records and marks them pending in one transaction
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)

	// Approve and Reject update the clarification and its attendance record in one transaction
	Approve(ctx context.Context, id int64, actor Actor) error
	Reject(ctx context.Context, id int64, actor Actor, req RejectRequest) error

	ListPendingForDepartment(ctx context.Context, department string) ([]ClarificationResponse, error)

	// History is scoped by the actor's role: own, department or everything
	History(ctx context.Context, actor Actor) ([]ClarificationResponse, error)

	MonthlyUsage(ctx context.Context, nip string, m attendance.Month) (Usage, error)
}
