package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clarificationRepositoryImpl struct {
	db *database.DB
}

func NewClarificationRepository(db *database.DB) clarification.ClarificationRepository {
	return &clarificationRepositoryImpl{db: db}
}

const clarificationColumns = `
	id, nip, nama_lengkap, jurusan, tanggal_klarifikasi, kategori_surat, jenis_surat,
	file_bukti, status, alasan_penolakan, tanggal_pengajuan, tanggal_proses
`

func scanClarification(row pgx.Row) (clarification.Clarification, error) {
	var c clarification.Clarification
	var status, requestType string
	if err := row.Scan(
		&c.ID, &c.NIP, &c.FullName, &c.Department, &c.Date, &c.Category, &requestType,
		&c.EvidencePath, &status, &c.RejectionReason, &c.SubmittedAt, &c.ProcessedAt,
	); err != nil {
		return clarification.Clarification{}, err
	}

	parsed, err := clarification.ParseStatus(status)
	if err != nil {
		return clarification.Clarification{}, fmt.Errorf("clarification %d: %w", c.ID, err)
	}
	c.Status = parsed
	c.Type = clarification.ParseRequestType(requestType)
	return c, nil
}

func (r *clarificationRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]clarification.Clarification, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clarifications: %w", err)
	}
	defer rows.Close()

	var result []clarification.Clarification
	for rows.Next() {
		c, err := scanClarification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clarification: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clarifications: %w", err)
	}
	return result, nil
}

// Create implements clarification.ClarificationRepository.
func (r *clarificationRepositoryImpl) Create(ctx context.Context, c clarification.Clarification) (clarification.Clarification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clarifications (
			nip, nama_lengkap, jurusan, tanggal_klarifikasi, kategori_surat, jenis_surat, file_bukti, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + clarificationColumns

	created, err := scanClarification(q.QueryRow(ctx, query,
		c.NIP, c.FullName, c.Department, c.Date, c.Category, string(c.Type), c.EvidencePath, string(clarification.StatusPending),
	))
	if err != nil {
		return clarification.Clarification{}, fmt.Errorf("failed to create clarification: %w", err)
	}
	return created, nil
}

// GetByID implements clarification.ClarificationRepository.
func (r *clarificationRepositoryImpl) GetByID(ctx context.Context, id int64) (clarification.Clarification, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanClarification(q.QueryRow(ctx, `SELECT `+clarificationColumns+` FROM clarifications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return clarification.Clarification{}, fmt.Errorf("clarification %d: %w", id, clarification.ErrClarificationNotFound)
		}
		return clarification.Clarification{}, fmt.Errorf("failed to get clarification: %w", err)
	}
	return c, nil
}

// Update implements clarification.ClarificationRepository.
func (r *clarificationRepositoryImpl) Update(ctx context.Context, c clarification.Clarification) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE clarifications
		SET status = $1, alasan_penolakan = $2, tanggal_proses = $3
		WHERE id = $4
	`, string(c.Status), c.RejectionReason, c.ProcessedAt, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update clarification %d: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("clarification %d: %w", c.ID, clarification.ErrClarificationNotFound)
	}
	return nil
}

// ListPendingByDepartment implements clarification.ClarificationRepository.
func (r *clarificationRepositoryImpl) ListPendingByDepartment(ctx context.Context, department string) ([]clarification.Clarification, error) {
	return r.list(ctx, `
		SELECT `+clarificationColumns+`
		FROM clarifications
		WHERE jurusan = $1 AND status = $2
		ORDER BY tanggal_pengajuan, id
	`, department, string(clarification.StatusPending))
}

// ListByNIP implements clarification.ClarificationRepository.
func (r *clarificationRepositoryImpl) ListByNIP(ctx context.Context, nip string) ([]clarification.Clarification, error) {
	return r.list(ctx, `
		SELECT `+clarificationColumns+`
		FROM clarifications
		WHERE nip = $1
		ORDER BY tanggal_pengajuan DESC, id DESC
	`, nip)
}

// ListByDepartment implements clarification.ClarificationRepository.
func (r *clarificationRepositoryImpl) ListByDepartment(ctx context.Context, department string) ([]clarification.Clarification, error) {
	return r.list(ctx, `
		SELECT `+clarificationColumns+`
		FROM clarifications
		WHERE jurusan = $1
		ORDER BY tanggal_pengajuan DESC, id DESC
	`, department)
}

// ListAll implements clarification.ClarificationRepository.
func (r *clarificationRepositoryImpl) ListAll(ctx context.Context) ([]clarification.Clarification, error) {
	return r.list(ctx, `
		SELECT `+clarificationColumns+`
		FROM clarifications
		ORDER BY tanggal_pengajuan DESC, id DESC
	`)
}

// CountByTypeInMonth implements clarification.ClarificationRepository.
func (r *clarificationRepositoryImpl) CountByTypeInMonth(ctx context.Context, nip string, t clarification.RequestType, m attendance.Month) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM clarifications
		WHERE nip = $1 AND jenis_surat = $2
		  AND tanggal_pengajuan >= $3 AND tanggal_pengajuan < $4
	`, nip, string(t), m.Start(), m.End()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clarifications: %w", err)
	}
	return count, nil
}

// ListApprovedInMonth implements clarification.ClarificationRepository.
func (r *clarificationRepositoryImpl) ListApprovedInMonth(ctx context.Context, m attendance.Month) ([]clarification.Clarification, error) {
	return r.list(ctx, `
		SELECT `+clarificationColumns+`
		FROM clarifications
		WHERE status = $1 AND tanggal_klarifikasi >= $2 AND tanggal_klarifikasi < $3
		ORDER BY id
	`, string(clarification.StatusApproved), m.Start(), m.End())
}
