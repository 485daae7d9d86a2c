package postgresql

import (
	"context"
	"fmt"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/leave"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	id, nip, nama_lengkap, tanggal_surat, tanggal_mulai, tanggal_selesai,
	jenis_cuti, alasan_cuti, file_surat_cuti, diinput_oleh, tanggal_input
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	var leaveType string
	err := row.Scan(
		&lr.ID,
		&lr.NIP,
		&lr.FullName,
		&lr.LetterDate,
		&lr.StartDate,
		&lr.EndDate,
		&leaveType,
		&lr.Reason,
		&lr.EvidencePath,
		&lr.RecordedBy,
		&lr.RecordedAt,
	)
	lr.Type = leave.ParseLeaveType(leaveType)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cuti_dosen (
			nip, nama_lengkap, tanggal_surat, tanggal_mulai, tanggal_selesai,
			jenis_cuti, alasan_cuti, file_surat_cuti, diinput_oleh
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		req.NIP,
		req.FullName,
		req.LetterDate,
		req.StartDate,
		req.EndDate,
		string(req.Type),
		req.Reason,
		req.EvidencePath,
		req.RecordedBy,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}

// ListByNIP implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByNIP(ctx context.Context, nip string) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `
		SELECT `+leaveRequestColumns+`
		FROM cuti_dosen
		WHERE nip = $1
		ORDER BY tanggal_mulai DESC, id DESC
	`, nip)
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `
		SELECT `+leaveRequestColumns+`
		FROM cuti_dosen
		ORDER BY tanggal_input DESC, id DESC
	`)
}
