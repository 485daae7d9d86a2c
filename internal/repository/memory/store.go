// Package memory implements the repository ports over in-process maps. It backs
// service tests and mirrors the ordering of the PostgreSQL queries.
package memory

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/leave"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
)

// ErrInjected is returned by writes selected with FailAttendanceUpdateAt.
var ErrInjected = errors.New("injected failure")

type state struct {
	lecturers      map[string]lecturer.Lecturer
	records        map[int64]attendance.Record
	clarifications map[int64]clarification.Clarification
	leaves         []leave.LeaveRequest
	nextRecord     int64
	nextClar       int64
	nextLeave      int64
}

func (s state) clone() state {
	c := s
	c.lecturers = maps.Clone(s.lecturers)
	c.records = maps.Clone(s.records)
	c.clarifications = maps.Clone(s.clarifications)
	c.leaves = append([]leave.LeaveRequest(nil), s.leaves...)
	return c
}

type Store struct {
	mu sync.Mutex
	state

	// FailAttendanceUpdateAt makes the n-th attendance status update (1-based) fail. 0 disables.
	FailAttendanceUpdateAt int
	attendanceUpdates      int
}

func NewStore() *Store {
	return &Store{state: state{
		lecturers:      make(map[string]lecturer.Lecturer),
		records:        make(map[int64]attendance.Record),
		clarifications: make(map[int64]clarification.Clarification),
	}}
}

func (s *Store) Lecturers() lecturer.LecturerRepository { return lecturerRepo{s} }
func (s *Store) Attendance() attendance.AttendanceRepository { return attendanceRepo{s} }
func (s *Store) Clarifications() clarification.ClarificationRepository { return clarificationRepo{s} }
func (s *Store) Leaves() leave.LeaveRequestRepository { return leaveRepo{s} }

// Transactor restores the whole store when fn fails.
func (s *Store) Transactor() database.Transactor { return transactor{s} }

type transactor struct{ s *Store }

func (t transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.s.mu.Lock()
	snapshot := t.s.state.clone()
	t.s.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.s.mu.Lock()
		t.s.state = snapshot
		t.s.mu.Unlock()
		return err
	}
	return nil
}

// Seed helpers

func (s *Store) AddLecturer(l lecturer.Lecturer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lecturers[l.NIP] = l
}

// AddRecord stores r with a fresh ID and returns it.
func (s *Store) AddRecord(r attendance.Record) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextRecord++
	r.ID = s.nextRecord
	s.records[r.ID] = r
	return r.ID
}

// AddClarification stores c with a fresh ID and returns it.
func (s *Store) AddClarification(c clarification.Clarification) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextClar++
	c.ID = s.nextClar
	s.clarifications[c.ID] = c
	return c.ID
}

// Inspection helpers

func (s *Store) Record(id int64) (attendance.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	return r, ok
}

func (s *Store) Clarification(id int64) (clarification.Clarification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.clarifications[id]
	return c, ok
}

func (s *Store) LeaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leaves)
}

func (s *Store) ClarificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clarifications)
}
