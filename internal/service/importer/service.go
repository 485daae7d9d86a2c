// Package importer loads lecturer accounts and attendance rows from the monthly
// attendance workbook.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-dosen/absensi-backend-go/internal/service/auth"
)

const DefaultUsersSheet = "data_akses"

var DefaultAttendanceSheets = []string{"BP", "BT", "PKH", "RPK", "THP"}

// Column names, compared lower-cased.
const (
	colNIP            = "nip"
	colFullName       = "nama_lengkap"
	colDepartment     = "jurusan"
	colDepartmentInfo = "detail jurusan"
	colRole           = "role"
	colDate           = "tanggal"
	colCheckIn        = "jam masuk"
	colCheckOut       = "jam pulang"
)

// Source reads the rows of one sheet keyed by lower-cased header.
type Source interface {
	Records(sheet string, required ...string) ([]map[string]string, error)
}

type Options struct {
	UsersSheet        string
	AttendanceSheets  []string
	DefaultLeaveQuota int
}

type Result struct {
	UsersAdded        int
	UsersSkipped      int
	AttendanceAdded   int
	AttendanceSkipped int
}

type Importer struct {
	tx             database.Transactor
	lecturerRepo   lecturer.LecturerRepository
	attendanceRepo attendance.AttendanceRepository
	opts           Options
	hashPassword   func(string) (string, error)
}

func NewImporter(
	tx database.Transactor,
	lecturerRepo lecturer.LecturerRepository,
	attendanceRepo attendance.AttendanceRepository,
	opts Options,
) *Importer {
	if opts.UsersSheet == "" {
		opts.UsersSheet = DefaultUsersSheet
	}
	if len(opts.AttendanceSheets) == 0 {
		opts.AttendanceSheets = DefaultAttendanceSheets
	}
	return &Importer{
		tx:             tx,
		lecturerRepo:   lecturerRepo,
		attendanceRepo: attendanceRepo,
		opts:           opts,
		hashPassword:   auth.HashPassword,
	}
}

// Run reads every sheet, then adds users and attendance rows in one transaction.
// Existing users are never modified and existing (nip, date) rows are skipped,
// so importing the same workbook twice adds nothing.
func (i *Importer) Run(ctx context.Context, src Source) (Result, error) {
	users, err := i.readUsers(src)
	if err != nil {
		return Result{}, err
	}
	records, err := i.readAttendance(src)
	if err != nil {
		return Result{}, err
	}

	var res Result
	err = i.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, u := range users {
			if _, err := i.lecturerRepo.GetByNIP(ctx, u.NIP); err == nil {
				res.UsersSkipped++
				continue
			} else if !errors.Is(err, lecturer.ErrLecturerNotFound) {
				return fmt.Errorf("%w: look up user %s: %w", database.ErrTransaction, u.NIP, err)
			}

			// Password awal sama dengan NIP
			hash, err := i.hashPassword(u.NIP)
			if err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", u.NIP, err)
			}
			u.PasswordHash = hash

			added, err := i.lecturerRepo.CreateIfAbsent(ctx, u)
			if err != nil {
				return fmt.Errorf("%w: add user %s: %w", database.ErrTransaction, u.NIP, err)
			}
			if added {
				slog.Info("importer: user added", "nip", u.NIP, "name", u.FullName)
				res.UsersAdded++
			} else {
				res.UsersSkipped++
			}
		}

		for _, rec := range records {
			added, err := i.attendanceRepo.Insert(ctx, rec)
			if err != nil {
				return fmt.Errorf("%w: add attendance %s %s: %w", database.ErrTransaction, rec.NIP, rec.Date.Format("2006-01-02"), err)
			}
			if added {
				res.AttendanceAdded++
			} else {
				res.AttendanceSkipped++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

func (i *Importer) readUsers(src Source) ([]lecturer.Lecturer, error) {
	rows, err := src.Records(i.opts.UsersSheet, colNIP, colFullName, colDepartment, colRole)
	if err != nil {
		return nil, err
	}

	users := make([]lecturer.Lecturer, 0, len(rows))
	for n, row := range rows {
		nip := normalizeNIP(row[colNIP])
		if nip == "" {
			slog.Warn("importer: user row without nip skipped", "sheet", i.opts.UsersSheet, "row", n+2)
			continue
		}
		role, err := lecturer.ParseRole(row[colRole])
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", i.opts.UsersSheet, n+2, err)
		}
		quota := i.opts.DefaultLeaveQuota
		users = append(users, lecturer.Lecturer{
			NIP:              nip,
			FullName:         row[colFullName],
			Department:       row[colDepartment],
			DepartmentDetail: row[colDepartmentInfo],
			Role:             role,
			AnnualLeaveQuota: &quota,
		})
	}
	return users, nil
}

func (i *Importer) readAttendance(src Source) ([]attendance.Record, error) {
	var records []attendance.Record
	for _, sheet := range i.opts.AttendanceSheets {
		rows, err := src.Records(sheet, colNIP, colDate)
		if err != nil {
			return nil, err
		}

		for n, row := range rows {
			nip := normalizeNIP(row[colNIP])
			if nip == "" {
				slog.Warn("importer: attendance row without nip skipped", "sheet", sheet, "row", n+2)
				continue
			}

			date, err := parseDate(row[colDate])
			if err != nil {
				return nil, fmt.Errorf("sheet %s row %d: %w", sheet, n+2, err)
			}
			checkIn, err := parseClock(row[colCheckIn])
			if err != nil {
				return nil, fmt.Errorf("sheet %s row %d: check-in: %w", sheet, n+2, err)
			}
			checkOut, err := parseClock(row[colCheckOut])
			if err != nil {
				return nil, fmt.Errorf("sheet %s row %d: check-out: %w", sheet, n+2, err)
			}

			records = append(records, attendance.Record{
				NIP:        nip,
				FullName:   row[colFullName],
				Department: row[colDepartment],
				Date:       date,
				CheckIn:    checkIn,
				CheckOut:   checkOut,
				Status:     attendance.Present,
				Remark:     "",
			})
		}
	}
	return records, nil
}
