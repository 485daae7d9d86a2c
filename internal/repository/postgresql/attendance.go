package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const recordSelect = `
	SELECT a.id, a.nip, COALESCE(u.nama_lengkap, ''), COALESCE(u.jurusan, ''),
		   a.tanggal, a.jam_masuk, a.jam_pulang, a.status, a.keterangan
	FROM attendance a
	LEFT JOIN users u ON u.nip = a.nip
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var status *string
	if err := row.Scan(
		&rec.ID, &rec.NIP, &rec.FullName, &rec.Department,
		&rec.Date, &rec.CheckIn, &rec.CheckOut, &status, &rec.Remark,
	); err != nil {
		return attendance.Record{}, err
	}
	if status != nil {
		rec.Status = attendance.ParseRawStatus(*status)
	}
	return rec, nil
}

// statusValue stores Unset as NULL.
func statusValue(s attendance.RawStatus) *string {
	v := s.Value()
	if v == "" {
		return nil
	}
	return &v
}

func (a *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

// ListByNIP implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByNIP(ctx context.Context, nip string) ([]attendance.Record, error) {
	return a.list(ctx, recordSelect+`
		WHERE a.nip = $1
		ORDER BY a.tanggal DESC
	`, nip)
}

// ListByNIPAndMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByNIPAndMonth(ctx context.Context, nip string, m attendance.Month) ([]attendance.Record, error) {
	return a.list(ctx, recordSelect+`
		WHERE a.nip = $1 AND a.tanggal >= $2 AND a.tanggal < $3
		ORDER BY a.tanggal DESC
	`, nip, m.Start(), m.End())
}

// ListByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByMonth(ctx context.Context, m attendance.Month) ([]attendance.Record, error) {
	return a.list(ctx, recordSelect+`
		WHERE a.tanggal >= $1 AND a.tanggal < $2
		ORDER BY a.nip, a.tanggal
	`, m.Start(), m.End())
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rec, err := scanRecord(q.QueryRow(ctx, recordSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, fmt.Errorf("record %d: %w", id, attendance.ErrAttendanceNotFound)
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return rec, nil
}

// GetByNIPAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByNIPAndDate(ctx context.Context, nip string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rec, err := scanRecord(q.QueryRow(ctx, recordSelect+` WHERE a.nip = $1 AND a.tanggal = $2`, nip, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, fmt.Errorf("%s on %s: %w", nip, date.Format("2006-01-02"), attendance.ErrAttendanceNotFound)
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	return rec, nil
}

// LatestMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) LatestMonth(ctx context.Context, nip string) (attendance.Month, bool, error) {
	q := GetQuerier(ctx, a.db)

	var latest *time.Time
	if err := q.QueryRow(ctx, `SELECT MAX(tanggal) FROM attendance WHERE nip = $1`, nip).Scan(&latest); err != nil {
		return attendance.Month{}, false, fmt.Errorf("failed to get latest attendance month: %w", err)
	}
	if latest == nil {
		return attendance.Month{}, false, nil
	}
	return attendance.MonthOf(*latest), true, nil
}

// CountApprovedLeave implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountApprovedLeave(ctx context.Context, nip string, year int, marker string) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM attendance
		WHERE nip = $1
		  AND status = $2
		  AND strpos(keterangan, $3) > 0
		  AND tanggal >= $4 AND tanggal < $5
	`

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	var count int
	err := q.QueryRow(ctx, query, nip, attendance.Approved.Value(), marker, start, start.AddDate(1, 0, 0)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count approved leave: %w", err)
	}
	return count, nil
}

// UpdateStatus implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateStatus(ctx context.Context, id int64, status attendance.RawStatus, remark string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance SET status = $1, keterangan = $2 WHERE id = $3
	`, statusValue(status), remark, id)
	if err != nil {
		return fmt.Errorf("failed to update attendance %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %d: %w", id, attendance.ErrAttendanceNotFound)
	}
	return nil
}

// UpdateStatusByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateStatusByDate(ctx context.Context, nip string, date time.Time, status attendance.RawStatus, remark *string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance
		SET status = $1, keterangan = COALESCE($2, keterangan)
		WHERE nip = $3 AND tanggal = $4
	`, statusValue(status), remark, nip, date)
	if err != nil {
		return fmt.Errorf("failed to update attendance of %s on %s: %w", nip, date.Format("2006-01-02"), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s on %s: %w", nip, date.Format("2006-01-02"), attendance.ErrAttendanceNotFound)
	}
	return nil
}

// Insert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Insert(ctx context.Context, rec attendance.Record) (bool, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `
		INSERT INTO attendance (nip, tanggal, jam_masuk, jam_pulang, status, keterangan)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (nip, tanggal) DO NOTHING
	`, rec.NIP, rec.Date, rec.CheckIn, rec.CheckOut, statusValue(rec.Status), rec.Remark)
	if err != nil {
		return false, fmt.Errorf("failed to insert attendance: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
