package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
)

type clarificationRepo struct{ s *Store }

func (r clarificationRepo) Create(_ context.Context, c clarification.Clarification) (clarification.Clarification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextClar++
	c.ID = r.s.nextClar
	c.Status = clarification.StatusPending
	r.s.clarifications[c.ID] = c
	return c, nil
}

func (r clarificationRepo) GetByID(_ context.Context, id int64) (clarification.Clarification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clarifications[id]
	if !ok {
		return clarification.Clarification{}, fmt.Errorf("clarification %d: %w", id, clarification.ErrClarificationNotFound)
	}
	return c, nil
}

func (r clarificationRepo) Update(_ context.Context, c clarification.Clarification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.clarifications[c.ID]
	if !ok {
		return fmt.Errorf("clarification %d: %w", c.ID, clarification.ErrClarificationNotFound)
	}
	existing.Status, existing.RejectionReason, existing.ProcessedAt = c.Status, c.RejectionReason, c.ProcessedAt
	r.s.clarifications[c.ID] = existing
	return nil
}

func (r clarificationRepo) filter(keep func(clarification.Clarification) bool, newestFirst bool) []clarification.Clarification {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []clarification.Clarification
	for _, c := range r.s.clarifications {
		if keep(c) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b clarification.Clarification) int {
		c := cmp.Or(a.SubmittedAt.Compare(b.SubmittedAt), cmp.Compare(a.ID, b.ID))
		if newestFirst {
			return -c
		}
		return c
	})
	return out
}

func (r clarificationRepo) ListPendingByDepartment(_ context.Context, department string) ([]clarification.Clarification, error) {
	return r.filter(func(c clarification.Clarification) bool {
		return c.Department == department && c.Status == clarification.StatusPending
	}, false), nil
}

func (r clarificationRepo) ListByNIP(_ context.Context, nip string) ([]clarification.Clarification, error) {
	return r.filter(func(c clarification.Clarification) bool { return c.NIP == nip }, true), nil
}

func (r clarificationRepo) ListByDepartment(_ context.Context, department string) ([]clarification.Clarification, error) {
	return r.filter(func(c clarification.Clarification) bool { return c.Department == department }, true), nil
}

func (r clarificationRepo) ListAll(_ context.Context) ([]clarification.Clarification, error) {
	return r.filter(func(clarification.Clarification) bool { return true }, true), nil
}

func (r clarificationRepo) CountByTypeInMonth(_ context.Context, nip string, t clarification.RequestType, m attendance.Month) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, c := range r.s.clarifications {
		if c.NIP == nip && c.Type == t && m.Contains(c.SubmittedAt) {
			n++
		}
	}
	return n, nil
}

func (r clarificationRepo) ListApprovedInMonth(_ context.Context, m attendance.Month) ([]clarification.Clarification, error) {
	out := r.filter(func(c clarification.Clarification) bool {
		return c.Status == clarification.StatusApproved && m.Contains(c.Date)
	}, false)
	slices.SortFunc(out, func(a, b clarification.Clarification) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}
