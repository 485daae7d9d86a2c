package postgresql

import (
	"context"
	"fmt"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/report"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
)

// reportRepositoryImpl reads the monthly snapshot with plain queries; the grid itself is built in memory.
type reportRepositoryImpl struct {
	db            *database.DB
	lecturers     lecturer.LecturerRepository
	clarification clarification.ClarificationRepository
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{
		db:            db,
		lecturers:     NewLecturerRepository(db),
		clarification: NewClarificationRepository(db),
	}
}

// ListLecturers implements report.ReportRepository.
func (r *reportRepositoryImpl) ListLecturers(ctx context.Context) ([]lecturer.Lecturer, error) {
	return r.lecturers.ListLecturers(ctx)
}

// ListAttendance implements report.ReportRepository.
func (r *reportRepositoryImpl) ListAttendance(ctx context.Context, m attendance.Month) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	// No join: rows of unknown staff numbers are dropped by the aggregator
	query := `
		SELECT id, nip, '', '', tanggal, jam_masuk, jam_pulang, status, keterangan
		FROM attendance
		WHERE tanggal >= $1 AND tanggal < $2
		ORDER BY tanggal, id
	`

	rows, err := q.Query(ctx, query, m.Start(), m.End())
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly attendance: %w", err)
	}
	return records, nil
}

// ListApprovedClarifications implements report.ReportRepository.
func (r *reportRepositoryImpl) ListApprovedClarifications(ctx context.Context, m attendance.Month) ([]clarification.Clarification, error) {
	return r.clarification.ListApprovedInMonth(ctx, m)
}
