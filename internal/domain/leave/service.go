package leave

import "context"

type LeaveService interface {
	RemainingBalance(ctx context.Context, nip string, year int) (Balance, error)
	// ApplyLeave validates every weekday of the range and records the leave in one transaction
	ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (ApplyLeaveResponse, error)
	History(ctx context.Context, nip string) ([]LeaveRequestResponse, error)
	ListAll(ctx context.Context) ([]LeaveRequestResponse, error)
}
