package importer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/spreadsheet"
	"github.com/absensi-dosen/absensi-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	nipSiti = "198501012010011001"
	nipBudi = "198702022012012002"
)

var attendanceHeader = []string{"nip", "nama_lengkap", "jurusan", "detail jurusan", "tanggal", "jam masuk", "jam pulang"}

func testWorkbook(t *testing.T, attendanceRows [][]interface{}) *spreadsheet.Workbook {
	t.Helper()

	sheets := []spreadsheet.Sheet{{
		Name:   "data_akses",
		Header: []string{"nip", "nama_lengkap", "jurusan", "detail jurusan", "role"},
		Rows: [][]interface{}{
			{nipSiti, "Dr. Siti Rahma", "TI", "Teknik Informatika", "Dosen"},
			{nipBudi, "Budi Santoso", "TE", "Teknik Elektro", "Dosen"},
		},
	}}
	for _, name := range DefaultAttendanceSheets {
		sheet := spreadsheet.Sheet{Name: name, Header: attendanceHeader}
		if name == "BP" {
			sheet.Rows = attendanceRows
		}
		sheets = append(sheets, sheet)
	}

	data, err := spreadsheet.Render(sheets...)
	require.NoError(t, err)
	wb, err := spreadsheet.Open(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	return wb
}

func newTestImporter(store *memory.Store) *Importer {
	return NewImporter(store.Transactor(), store.Lecturers(), store.Attendance(), Options{DefaultLeaveQuota: 12})
}

// ===== PARSE TESTS =====

func TestParseDate(t *testing.T) {
	t.Parallel()
	want := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"2025-07-01", "2025-07-01 00:00:00", "07-01-25", "7/1/25", "7/1/2025", "45839"} {
		got, err := parseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseDate("kemarin")
	assert.ErrorIs(t, err, attendance.ErrDataFormat)
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"07:30:00", "07:30:00"},
		{"7:30", "07:30:00"},
		{"3:15 PM", "15:15:00"},
		{"0.3125", "07:30:00"},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.in)
		require.NoError(t, err, tt.in)
		require.NotNil(t, got, tt.in)
		assert.Equal(t, tt.want, *got, tt.in)
	}

	for _, blank := range []string{"", "  ", "-"} {
		got, err := parseClock(blank)
		require.NoError(t, err)
		assert.Nil(t, got)
	}

	_, err := parseClock("pagi")
	assert.ErrorIs(t, err, attendance.ErrDataFormat)
}

func TestNormalizeNIP(t *testing.T) {
	t.Parallel()
	assert.Equal(t, nipSiti, normalizeNIP(" "+nipSiti+".0 "))
}

// ===== IMPORT TESTS =====

func TestImporter_Run_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore()

	wb := testWorkbook(t, [][]interface{}{
		{nipSiti, "Dr. Siti Rahma", "TI", "Teknik Informatika", "2025-07-01", "07:30", "15:00"},
		{nipSiti, "Dr. Siti Rahma", "TI", "Teknik Informatika", "2025-07-02", "", ""},
		{nipBudi, "Budi Santoso", "TE", "Teknik Elektro", "2025-07-01", "08:00:00", ""},
	})

	res, err := newTestImporter(store).Run(ctx, wb)
	require.NoError(t, err)
	assert.Equal(t, Result{UsersAdded: 2, AttendanceAdded: 3}, res)

	siti, err := store.Lecturers().GetByNIP(ctx, nipSiti)
	require.NoError(t, err)
	assert.Equal(t, lecturer.RoleDosen, siti.Role)
	assert.Equal(t, "Teknik Informatika", siti.DepartmentDetail)
	assert.Equal(t, 12, siti.Quota())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(siti.PasswordHash), []byte(nipSiti)))

	rec, err := store.Attendance().GetByNIPAndDate(ctx, nipSiti, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, attendance.Present, rec.Status)
	assert.Empty(t, rec.Remark)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, "07:30:00", *rec.CheckIn)

	blank, err := store.Attendance().GetByNIPAndDate(ctx, nipSiti, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, blank.CheckIn)
	assert.Nil(t, blank.CheckOut)
}

func TestImporter_Run_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore()
	rows := [][]interface{}{
		{nipSiti, "Dr. Siti Rahma", "TI", "Teknik Informatika", "2025-07-01", "07:30", "15:00"},
	}

	_, err := newTestImporter(store).Run(ctx, testWorkbook(t, rows))
	require.NoError(t, err)

	// Admin changed the quota and the lecturer got leave; a re-import must keep both
	require.NoError(t, store.Lecturers().UpdateLeaveQuota(ctx, nipSiti, 20))

	res, err := newTestImporter(store).Run(ctx, testWorkbook(t, rows))
	require.NoError(t, err)
	assert.Equal(t, Result{UsersSkipped: 2, AttendanceSkipped: 1}, res)

	siti, err := store.Lecturers().GetByNIP(ctx, nipSiti)
	require.NoError(t, err)
	assert.Equal(t, 20, siti.Quota())
}

func TestImporter_Run_BadDateAbortsBeforeWriting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore()

	wb := testWorkbook(t, [][]interface{}{
		{nipSiti, "Dr. Siti Rahma", "TI", "Teknik Informatika", "2025-07-01", "07:30", "15:00"},
		{nipSiti, "Dr. Siti Rahma", "TI", "Teknik Informatika", "awal Juli", "07:30", "15:00"},
	})

	_, err := newTestImporter(store).Run(ctx, wb)
	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrDataFormat)
	assert.Contains(t, err.Error(), "sheet BP row 3")

	_, err = store.Lecturers().GetByNIP(ctx, nipSiti)
	assert.ErrorIs(t, err, lecturer.ErrLecturerNotFound)
}

func TestImporter_Run_MissingSheet(t *testing.T) {
	t.Parallel()
	store := memory.NewStore()
	imp := NewImporter(store.Transactor(), store.Lecturers(), store.Attendance(), Options{
		AttendanceSheets: []string{"BP", "XYZ"},
	})

	_, err := imp.Run(context.Background(), testWorkbook(t, nil))
	assert.ErrorIs(t, err, spreadsheet.ErrSheetNotFound)
}

func TestImporter_Run_RollsBackOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore()

	imp := newTestImporter(store)
	calls := 0
	imp.hashPassword = func(s string) (string, error) {
		calls++
		if calls == 2 {
			return "", errors.New("entropy exhausted")
		}
		return "hash-" + s, nil
	}

	_, err := imp.Run(ctx, testWorkbook(t, nil))
	require.Error(t, err)

	// First user was added inside the unit of work and rolled back
	_, err = store.Lecturers().GetByNIP(ctx, nipSiti)
	assert.ErrorIs(t, err, lecturer.ErrLecturerNotFound)
}

func TestImporter_Run_InvalidRole(t *testing.T) {
	t.Parallel()
	store := memory.NewStore()

	data, err := spreadsheet.Render(spreadsheet.Sheet{
		Name:   "data_akses",
		Header: []string{"nip", "nama_lengkap", "jurusan", "role"},
		Rows:   [][]interface{}{{nipSiti, "Dr. Siti Rahma", "TI", "Rektor"}},
	})
	require.NoError(t, err)
	wb, err := spreadsheet.Open(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	_, err = newTestImporter(store).Run(context.Background(), wb)
	assert.ErrorIs(t, err, lecturer.ErrInvalidRole)
}
