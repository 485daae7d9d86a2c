package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	// ListByNIP returns the lecturer's requests, latest start date first
	ListByNIP(ctx context.Context, nip string) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
}
