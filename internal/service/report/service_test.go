package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/report"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/spreadsheet"
	"github.com/absensi-dosen/absensi-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	july   = attendance.Month{Year: 2025, Month: time.July}
	august = attendance.Month{Year: 2025, Month: time.August}
)

func strPtr(s string) *string { return &s }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(m attendance.Month, d int) time.Time {
	return time.Date(m.Year, m.Month, d, 0, 0, 0, 0, time.UTC)
}

func seedReportStore() *memory.Store {
	store := memory.NewStore()
	store.AddLecturer(lecturer.Lecturer{NIP: "1001", FullName: "Andi", Department: "TI", DepartmentDetail: "Teknik Informatika", Role: lecturer.RoleDosen})
	store.AddLecturer(lecturer.Lecturer{NIP: "1002", FullName: "Budi", Department: "TI", DepartmentDetail: "Teknik Informatika", Role: lecturer.RoleDosen})
	store.AddLecturer(lecturer.Lecturer{NIP: "9000", FullName: "Admin", Department: "TI", Role: lecturer.RoleAdmin})

	store.AddRecord(attendance.Record{NIP: "1001", Date: date(july, 1), Status: attendance.Present, CheckIn: strPtr("07:00:00"), CheckOut: strPtr("15:00:00")})
	store.AddRecord(attendance.Record{NIP: "1001", Date: date(july, 2), Status: attendance.Approved, Remark: "Cuti Tahunan - Umroh"})
	store.AddRecord(attendance.Record{NIP: "1001", Date: date(july, 31), Status: attendance.Pending})
	store.AddRecord(attendance.Record{NIP: "1002", Date: date(july, 1), Status: attendance.Approved})
	store.AddRecord(attendance.Record{NIP: "1002", Date: date(july, 2), Status: attendance.Present, CheckIn: strPtr("xx"), CheckOut: strPtr("15:00:00")})
	store.AddRecord(attendance.Record{NIP: "1001", Date: date(august, 1), Status: attendance.Present, CheckIn: strPtr("07:00:00"), CheckOut: strPtr("15:00:00")})

	store.AddClarification(clarification.Clarification{
		NIP: "1002", Department: "TI", Date: date(july, 1), Category: "Surat Tugas Fleksibel",
		Status: clarification.StatusApproved, SubmittedAt: date(july, 2),
	})
	return store
}

func newTestReportService(store *memory.Store, cache *Cache) *ReportServiceImpl {
	return NewReportService(store.Reports(), cache, quietLogger()).(*ReportServiceImpl)
}

// ===== BUILD REPORT TESTS =====

func TestReportService_BuildReport(t *testing.T) {
	t.Parallel()
	svc := newTestReportService(seedReportStore(), nil)

	rep, err := svc.BuildReport(context.Background(), july)
	require.NoError(t, err)

	assert.Equal(t, "2025-07", rep.Month)
	assert.Equal(t, 1, rep.Skipped)
	require.Len(t, rep.Departments, 1)
	assert.Equal(t, "Teknik Informatika", rep.Departments[0].Name)

	rows := rep.Departments[0].Lecturers
	require.Len(t, rows, 2)

	andi := rows[0]
	assert.Equal(t, "KT", andi.Cell(1))
	assert.Equal(t, "CT", andi.Cell(2))
	assert.Equal(t, "PK", andi.Cell(31))
	assert.Equal(t, "", andi.Cell(3))
	assert.Equal(t, "KT:1, PK:1, CT:1", andi.Summary)

	budi := rows[1]
	assert.Equal(t, "FL", budi.Cell(1))
	assert.Equal(t, "", budi.Cell(2))
	assert.Equal(t, "FL:1", budi.Summary)
}

func TestReportService_BuildReport_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestReportService(seedReportStore(), nil)

	first, err := svc.BuildReport(ctx, july)
	require.NoError(t, err)
	second, err := svc.BuildReport(ctx, july)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReportService_BuildReport_SummaryMatchesCells(t *testing.T) {
	t.Parallel()
	svc := newTestReportService(seedReportStore(), nil)

	rep, err := svc.BuildReport(context.Background(), july)
	require.NoError(t, err)

	for _, dept := range rep.Departments {
		for _, row := range dept.Lecturers {
			counts, err := report.ParseSummary(row.Summary)
			require.NoError(t, err)

			total := 0
			for _, n := range counts {
				total += n
			}
			assert.Equal(t, len(row.Days), total, row.NIP)
		}
	}
}

type failingReportRepo struct {
	report.ReportRepository
}

var errDown = errors.New("connection refused")

func (failingReportRepo) ListLecturers(context.Context) ([]lecturer.Lecturer, error) {
	return nil, nil
}

func (failingReportRepo) ListAttendance(context.Context, attendance.Month) ([]attendance.Record, error) {
	return nil, errDown
}

func (failingReportRepo) ListApprovedClarifications(context.Context, attendance.Month) ([]clarification.Clarification, error) {
	return nil, nil
}

func TestReportService_BuildReport_RepositoryFailure(t *testing.T) {
	t.Parallel()
	svc := NewReportService(failingReportRepo{}, nil, quietLogger())

	_, err := svc.BuildReport(context.Background(), july)
	assert.ErrorIs(t, err, report.ErrReportGenerationFailed)
	assert.ErrorIs(t, err, errDown)
}

// ===== GENERATE / DOWNLOAD TESTS =====

func TestReportService_Download_WithoutGenerate(t *testing.T) {
	t.Parallel()
	svc := newTestReportService(seedReportStore(), nil)

	_, err := svc.Download(context.Background(), "admin-1")
	assert.ErrorIs(t, err, report.ErrNoReportGenerated)
}

func TestReportService_GenerateAndDownload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestReportService(seedReportStore(), nil)

	_, err := svc.Generate(ctx, "admin-1", july)
	require.NoError(t, err)

	file, err := svc.Download(ctx, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "Rekap_Absensi_Juli_2025.xlsx", file.FileName)
	assert.Equal(t, spreadsheet.ContentType, file.ContentType)

	wb, err := spreadsheet.Open(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	require.Equal(t, []string{"Rekap Absensi Juli 2025"}, wb.SheetNames())
	rows, err := wb.Records("Rekap Absensi Juli 2025", "Jurusan", "Nama", "1", "31", "Jumlah")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Teknik Informatika", rows[0]["jurusan"])
	assert.Equal(t, "Andi", rows[0]["nama"])
	assert.Equal(t, "KT", rows[0]["1"])
	assert.Equal(t, "CT", rows[0]["2"])
	assert.Equal(t, "PK", rows[0]["31"])
	assert.Equal(t, "KT:1, PK:1, CT:1", rows[0]["jumlah"])
	assert.Equal(t, "FL", rows[1]["1"])

	// Other sessions have nothing to download
	_, err = svc.Download(ctx, "admin-2")
	assert.ErrorIs(t, err, report.ErrNoReportGenerated)
}

func TestReportService_Generate_LastWriterWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestReportService(seedReportStore(), nil)

	_, err := svc.Generate(ctx, "admin-1", july)
	require.NoError(t, err)
	_, err = svc.Generate(ctx, "admin-1", august)
	require.NoError(t, err)

	file, err := svc.Download(ctx, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "Rekap_Absensi_Agustus_2025.xlsx", file.FileName)
}

// ===== CACHE TESTS =====

func TestCache_ExpiresAndPrunes(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, time.July, 1, 8, 0, 0, 0, time.UTC)
	cache := NewCache(time.Hour)
	cache.now = func() time.Time { return now }

	cache.Put("a", july, report.MonthlyReport{Month: "2025-07"})
	now = now.Add(30 * time.Minute)
	cache.Put("b", july, report.MonthlyReport{Month: "2025-07"})

	_, ok := cache.Get("a")
	assert.True(t, ok)

	now = now.Add(45 * time.Minute)
	_, ok = cache.Get("a")
	assert.False(t, ok)
	_, ok = cache.Get("b")
	assert.True(t, ok)

	assert.Equal(t, 1, cache.Prune())
	assert.Equal(t, 1, cache.Len())
}

func TestExportHeader(t *testing.T) {
	header := exportHeader()
	require.Len(t, header, 34)
	assert.Equal(t, "Jurusan", header[0])
	assert.Equal(t, "Nama", header[1])
	assert.Equal(t, "1", header[2])
	assert.Equal(t, "31", header[32])
	assert.Equal(t, "Jumlah", header[33])
}
