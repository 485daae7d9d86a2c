package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type lecturerRepositoryImpl struct {
	db *database.DB
}

func NewLecturerRepository(db *database.DB) lecturer.LecturerRepository {
	return &lecturerRepositoryImpl{db: db}
}

const lecturerColumns = `nip, password_hash, nama_lengkap, jurusan, detail_jurusan, role, jatah_cuti_tahunan`

func scanLecturer(row pgx.Row) (lecturer.Lecturer, error) {
	var l lecturer.Lecturer
	var role string
	if err := row.Scan(
		&l.NIP,
		&l.PasswordHash,
		&l.FullName,
		&l.Department,
		&l.DepartmentDetail,
		&role,
		&l.AnnualLeaveQuota,
	); err != nil {
		return lecturer.Lecturer{}, err
	}

	parsed, err := lecturer.ParseRole(role)
	if err != nil {
		return lecturer.Lecturer{}, fmt.Errorf("user %s: %w", l.NIP, err)
	}
	l.Role = parsed
	return l, nil
}

func (r *lecturerRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]lecturer.Lecturer, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var result []lecturer.Lecturer
	for rows.Next() {
		l, err := scanLecturer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return result, nil
}

// GetByNIP implements lecturer.LecturerRepository.
func (r *lecturerRepositoryImpl) GetByNIP(ctx context.Context, nip string) (lecturer.Lecturer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + lecturerColumns + ` FROM users WHERE nip = $1`

	l, err := scanLecturer(q.QueryRow(ctx, query, nip))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return lecturer.Lecturer{}, fmt.Errorf("nip %s: %w", nip, lecturer.ErrLecturerNotFound)
		}
		return lecturer.Lecturer{}, fmt.Errorf("failed to get user by nip: %w", err)
	}
	return l, nil
}

// ListLecturers implements lecturer.LecturerRepository.
func (r *lecturerRepositoryImpl) ListLecturers(ctx context.Context) ([]lecturer.Lecturer, error) {
	query := `
		SELECT ` + lecturerColumns + `
		FROM users
		WHERE role = $1
		ORDER BY jurusan, nama_lengkap
	`
	return r.list(ctx, query, string(lecturer.RoleDosen))
}

// ListByDepartment implements lecturer.LecturerRepository.
func (r *lecturerRepositoryImpl) ListByDepartment(ctx context.Context, department string) ([]lecturer.Lecturer, error) {
	query := `
		SELECT ` + lecturerColumns + `
		FROM users
		WHERE jurusan = $1 AND role = $2
		ORDER BY nama_lengkap
	`
	return r.list(ctx, query, department, string(lecturer.RoleDosen))
}

// ListAll implements lecturer.LecturerRepository.
func (r *lecturerRepositoryImpl) ListAll(ctx context.Context) ([]lecturer.Lecturer, error) {
	query := `SELECT ` + lecturerColumns + ` FROM users ORDER BY role, nama_lengkap`
	return r.list(ctx, query)
}

// Create implements lecturer.LecturerRepository.
func (r *lecturerRepositoryImpl) Create(ctx context.Context, l lecturer.Lecturer) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (` + lecturerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		l.NIP,
		l.PasswordHash,
		l.FullName,
		l.Department,
		l.DepartmentDetail,
		string(l.Role),
		l.AnnualLeaveQuota,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("nip %s: %w", l.NIP, lecturer.ErrNIPAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// CreateIfAbsent implements lecturer.LecturerRepository.
func (r *lecturerRepositoryImpl) CreateIfAbsent(ctx context.Context, l lecturer.Lecturer) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (` + lecturerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (nip) DO NOTHING
	`

	tag, err := q.Exec(ctx, query,
		l.NIP,
		l.PasswordHash,
		l.FullName,
		l.Department,
		l.DepartmentDetail,
		string(l.Role),
		l.AnnualLeaveQuota,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert user: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateLeaveQuota implements lecturer.LecturerRepository.
func (r *lecturerRepositoryImpl) UpdateLeaveQuota(ctx context.Context, nip string, quota int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE users SET jatah_cuti_tahunan = $1, updated_at = NOW() WHERE nip = $2
	`, quota, nip)
	if err != nil {
		return fmt.Errorf("failed to update leave quota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("nip %s: %w", nip, lecturer.ErrLecturerNotFound)
	}
	return nil
}

// UpdateDepartment implements lecturer.LecturerRepository.
func (r *lecturerRepositoryImpl) UpdateDepartment(ctx context.Context, nip, department, detail string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE users SET jurusan = $1, detail_jurusan = $2, updated_at = NOW() WHERE nip = $3
	`, department, detail, nip)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("nip %s: %w", nip, lecturer.ErrLecturerNotFound)
	}
	return nil
}
