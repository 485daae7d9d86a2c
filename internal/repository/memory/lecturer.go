package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
)

type lecturerRepo struct{ s *Store }

func (r lecturerRepo) GetByNIP(_ context.Context, nip string) (lecturer.Lecturer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lecturers[nip]
	if !ok {
		return lecturer.Lecturer{}, fmt.Errorf("nip %s: %w", nip, lecturer.ErrLecturerNotFound)
	}
	return l, nil
}

func (r lecturerRepo) filter(keep func(lecturer.Lecturer) bool, less func(a, b lecturer.Lecturer) int) []lecturer.Lecturer {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []lecturer.Lecturer
	for _, l := range r.s.lecturers {
		if keep(l) {
			out = append(out, l)
		}
	}
	slices.SortFunc(out, less)
	return out
}

func byDepartmentThenName(a, b lecturer.Lecturer) int {
	return cmp.Or(cmp.Compare(a.Department, b.Department), cmp.Compare(a.FullName, b.FullName), cmp.Compare(a.NIP, b.NIP))
}

func (r lecturerRepo) ListLecturers(_ context.Context) ([]lecturer.Lecturer, error) {
	return r.filter(func(l lecturer.Lecturer) bool { return l.Role == lecturer.RoleDosen }, byDepartmentThenName), nil
}

func (r lecturerRepo) ListByDepartment(_ context.Context, department string) ([]lecturer.Lecturer, error) {
	return r.filter(func(l lecturer.Lecturer) bool {
		return l.Role == lecturer.RoleDosen && l.Department == department
	}, byDepartmentThenName), nil
}

func (r lecturerRepo) ListAll(_ context.Context) ([]lecturer.Lecturer, error) {
	return r.filter(func(lecturer.Lecturer) bool { return true }, func(a, b lecturer.Lecturer) int {
		return cmp.Or(cmp.Compare(a.Role, b.Role), cmp.Compare(a.FullName, b.FullName))
	}), nil
}

func (r lecturerRepo) Create(_ context.Context, l lecturer.Lecturer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.lecturers[l.NIP]; exists {
		return fmt.Errorf("nip %s: %w", l.NIP, lecturer.ErrNIPAlreadyExists)
	}
	r.s.lecturers[l.NIP] = l
	return nil
}

func (r lecturerRepo) CreateIfAbsent(_ context.Context, l lecturer.Lecturer) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.lecturers[l.NIP]; exists {
		return false, nil
	}
	r.s.lecturers[l.NIP] = l
	return true, nil
}

func (r lecturerRepo) UpdateLeaveQuota(_ context.Context, nip string, quota int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lecturers[nip]
	if !ok {
		return fmt.Errorf("nip %s: %w", nip, lecturer.ErrLecturerNotFound)
	}
	l.AnnualLeaveQuota = &quota
	r.s.lecturers[nip] = l
	return nil
}

func (r lecturerRepo) UpdateDepartment(_ context.Context, nip, department, detail string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lecturers[nip]
	if !ok {
		return fmt.Errorf("nip %s: %w", nip, lecturer.ErrLecturerNotFound)
	}
	l.Department, l.DepartmentDetail = department, detail
	r.s.lecturers[nip] = l
	return nil
}
