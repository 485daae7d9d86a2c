package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
)

type attendanceRepo struct{ s *Store }

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// joined fills the lecturer columns the SQL query joins in. Callers hold mu.
func (r attendanceRepo) joined(rec attendance.Record) attendance.Record {
	if l, ok := r.s.lecturers[rec.NIP]; ok {
		rec.FullName, rec.Department = l.FullName, l.Department
	}
	return rec
}

func (r attendanceRepo) filter(keep func(attendance.Record) bool, newestFirst bool) []attendance.Record {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []attendance.Record
	for _, rec := range r.s.records {
		if keep(rec) {
			out = append(out, r.joined(rec))
		}
	}
	slices.SortFunc(out, func(a, b attendance.Record) int {
		c := cmp.Or(a.Date.Compare(b.Date), cmp.Compare(a.ID, b.ID))
		if newestFirst {
			return -c
		}
		return c
	})
	return out
}

func (r attendanceRepo) ListByNIP(_ context.Context, nip string) ([]attendance.Record, error) {
	return r.filter(func(rec attendance.Record) bool { return rec.NIP == nip }, true), nil
}

func (r attendanceRepo) ListByNIPAndMonth(_ context.Context, nip string, m attendance.Month) ([]attendance.Record, error) {
	return r.filter(func(rec attendance.Record) bool { return rec.NIP == nip && m.Contains(rec.Date) }, true), nil
}

func (r attendanceRepo) ListByMonth(_ context.Context, m attendance.Month) ([]attendance.Record, error) {
	return r.filter(func(rec attendance.Record) bool { return m.Contains(rec.Date) }, false), nil
}

func (r attendanceRepo) GetByID(_ context.Context, id int64) (attendance.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.records[id]
	if !ok {
		return attendance.Record{}, fmt.Errorf("record %d: %w", id, attendance.ErrAttendanceNotFound)
	}
	return r.joined(rec), nil
}

func (r attendanceRepo) GetByNIPAndDate(_ context.Context, nip string, date time.Time) (attendance.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.records {
		if rec.NIP == nip && sameDay(rec.Date, date) {
			return r.joined(rec), nil
		}
	}
	return attendance.Record{}, fmt.Errorf("%s on %s: %w", nip, date.Format("2006-01-02"), attendance.ErrAttendanceNotFound)
}

func (r attendanceRepo) LatestMonth(_ context.Context, nip string) (attendance.Month, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var latest time.Time
	found := false
	for _, rec := range r.s.records {
		if rec.NIP == nip && (!found || rec.Date.After(latest)) {
			latest, found = rec.Date, true
		}
	}
	if !found {
		return attendance.Month{}, false, nil
	}
	return attendance.MonthOf(latest), true, nil
}

func (r attendanceRepo) CountApprovedLeave(_ context.Context, nip string, year int, marker string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, rec := range r.s.records {
		if rec.NIP == nip && rec.Date.Year() == year &&
			rec.Status.Kind == attendance.StatusApproved && strings.Contains(rec.Remark, marker) {
			n++
		}
	}
	return n, nil
}

// countUpdate applies failure injection. Callers hold mu.
func (r attendanceRepo) countUpdate() error {
	r.s.attendanceUpdates++
	if r.s.FailAttendanceUpdateAt > 0 && r.s.attendanceUpdates == r.s.FailAttendanceUpdateAt {
		return ErrInjected
	}
	return nil
}

func (r attendanceRepo) UpdateStatus(_ context.Context, id int64, status attendance.RawStatus, remark string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.countUpdate(); err != nil {
		return err
	}
	rec, ok := r.s.records[id]
	if !ok {
		return fmt.Errorf("record %d: %w", id, attendance.ErrAttendanceNotFound)
	}
	rec.Status, rec.Remark = status, remark
	r.s.records[id] = rec
	return nil
}

func (r attendanceRepo) UpdateStatusByDate(_ context.Context, nip string, date time.Time, status attendance.RawStatus, remark *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.countUpdate(); err != nil {
		return err
	}
	for id, rec := range r.s.records {
		if rec.NIP == nip && sameDay(rec.Date, date) {
			rec.Status = status
			if remark != nil {
				rec.Remark = *remark
			}
			r.s.records[id] = rec
			return nil
		}
	}
	return fmt.Errorf("%s on %s: %w", nip, date.Format("2006-01-02"), attendance.ErrAttendanceNotFound)
}

func (r attendanceRepo) Insert(_ context.Context, rec attendance.Record) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.records {
		if existing.NIP == rec.NIP && sameDay(existing.Date, rec.Date) {
			return false, nil
		}
	}
	r.s.nextRecord++
	rec.ID = r.s.nextRecord
	r.s.records[rec.ID] = rec
	return true, nil
}
