package lecturer

import "context"

type LecturerRepository interface {
	GetByNIP(ctx context.Context, nip string) (Lecturer, error)
	// ListLecturers returns every Dosen ordered by department, then name.
	ListLecturers(ctx context.Context) ([]Lecturer, error)
	ListByDepartment(ctx context.Context, department string) ([]Lecturer, error)
	// ListAll returns every account ordered by role, then name.
	ListAll(ctx context.Context) ([]Lecturer, error)
	Create(ctx context.Context, l Lecturer) error
	// CreateIfAbsent inserts l unless the NIP exists and reports whether a row was added.
	CreateIfAbsent(ctx context.Context, l Lecturer) (bool, error)
	UpdateLeaveQuota(ctx context.Context, nip string, quota int) error
	UpdateDepartment(ctx context.Context, nip, department, detail string) error
}
