package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/leave"
)

type leaveRepo struct{ s *Store }

func (r leaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextLeave++
	req.ID = r.s.nextLeave
	if req.RecordedAt.IsZero() {
		req.RecordedAt = time.Now()
	}
	r.s.leaves = append(r.s.leaves, req)
	return req, nil
}

func (r leaveRepo) list(keep func(leave.LeaveRequest) bool, less func(a, b leave.LeaveRequest) int) []leave.LeaveRequest {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []leave.LeaveRequest
	for _, l := range r.s.leaves {
		if keep(l) {
			out = append(out, l)
		}
	}
	slices.SortFunc(out, less)
	return out
}

func (r leaveRepo) ListByNIP(_ context.Context, nip string) ([]leave.LeaveRequest, error) {
	return r.list(func(l leave.LeaveRequest) bool { return l.NIP == nip }, func(a, b leave.LeaveRequest) int {
		return -cmp.Or(a.StartDate.Compare(b.StartDate), cmp.Compare(a.ID, b.ID))
	}), nil
}

func (r leaveRepo) ListAll(_ context.Context) ([]leave.LeaveRequest, error) {
	return r.list(func(leave.LeaveRequest) bool { return true }, func(a, b leave.LeaveRequest) int {
		return -cmp.Or(a.RecordedAt.Compare(b.RecordedAt), cmp.Compare(a.ID, b.ID))
	}), nil
}
