package clarification

import (
	"context"
	"testing"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-dosen/absensi-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dosenNIP = "198501012010011001"
	kajurNIP = "197001011995031001"
	deptTI   = "Teknik Informatika"
)

var fixedNow = time.Date(2025, time.July, 21, 9, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

var (
	dosen = clarification.Actor{NIP: dosenNIP, FullName: "Dr. Siti Rahma", Role: lecturer.RoleDosen, Department: deptTI}
	kajur = clarification.Actor{NIP: kajurNIP, FullName: "Prof. Budi", Role: lecturer.RoleKajur, Department: deptTI}
)

func newClarificationTestStore() *memory.Store {
	store := memory.NewStore()
	store.AddLecturer(lecturer.Lecturer{NIP: dosenNIP, FullName: dosen.FullName, Department: deptTI, Role: lecturer.RoleDosen})
	store.AddLecturer(lecturer.Lecturer{NIP: kajurNIP, FullName: kajur.FullName, Department: deptTI, Role: lecturer.RoleKajur})
	return store
}

func newTestClarificationService(store *memory.Store, quota int) *ClarificationServiceImpl {
	svc := NewClarificationService(store.Transactor(), store.Clarifications(), store.Attendance(), quota).(*ClarificationServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// addMissingCheckOut seeds a row that only has a check-in, which classifies as clarifiable.
func addMissingCheckOut(store *memory.Store, date string) int64 {
	return store.AddRecord(attendance.Record{NIP: dosenNIP, Date: day(date), CheckIn: strPtr("07:45:00")})
}

func submitRequest(t clarification.RequestType, ids ...int64) clarification.SubmitRequest {
	return clarification.SubmitRequest{
		RecordIDs:    ids,
		Category:     "Surat Tugas Fleksibel",
		Type:         string(t),
		EvidencePath: strPtr("uploads/bukti.pdf"),
		Actor:        dosen,
	}
}

// ===== SUBMIT TESTS =====

func TestClarificationService_Submit_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newClarificationTestStore()
	first := addMissingCheckOut(store, "2025-07-14")
	second := store.AddRecord(attendance.Record{
		NIP: dosenNIP, Date: day("2025-07-15"), Status: attendance.Rejected, Remark: "Bukti kurang jelas",
	})

	svc := newTestClarificationService(store, 2)
	resp, err := svc.Submit(ctx, submitRequest("Surat Tugas", first, second))
	require.NoError(t, err)
	require.Len(t, resp.Submitted, 2)
	assert.Equal(t, 2, store.ClarificationCount())

	for _, id := range []int64{first, second} {
		rec, _ := store.Record(id)
		assert.Equal(t, attendance.StatusPending, rec.Status.Kind)
		assert.Empty(t, rec.Remark)
		assert.Equal(t, attendance.LabelPending, attendance.Classify(rec).Text)
	}

	c, ok := store.Clarification(1)
	require.True(t, ok)
	assert.Equal(t, clarification.StatusPending, c.Status)
	assert.Equal(t, deptTI, c.Department)
	assert.Equal(t, fixedNow, c.SubmittedAt)
}

func TestClarificationService_Submit_NoRecords(t *testing.T) {
	t.Parallel()
	svc := newTestClarificationService(newClarificationTestStore(), 2)

	_, err := svc.Submit(context.Background(), submitRequest(clarification.ForgotCheckIn))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record_ids")
}

func TestClarificationService_Submit_ForgotQuota(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newClarificationTestStore()
	// One forgot check-in already submitted this month, one last month
	store.AddClarification(clarification.Clarification{
		NIP: dosenNIP, Department: deptTI, Date: day("2025-07-01"), Type: clarification.ForgotCheckIn,
		Status: clarification.StatusApproved, SubmittedAt: day("2025-07-02"),
	})
	store.AddClarification(clarification.Clarification{
		NIP: dosenNIP, Department: deptTI, Date: day("2025-06-30"), Type: clarification.ForgotCheckIn,
		Status: clarification.StatusApproved, SubmittedAt: day("2025-06-30"),
	})
	a := addMissingCheckOut(store, "2025-07-14")
	b := addMissingCheckOut(store, "2025-07-15")

	svc := newTestClarificationService(store, 2)

	_, err := svc.Submit(ctx, submitRequest(clarification.ForgotCheckIn, a, b))
	require.ErrorIs(t, err, clarification.ErrMonthlyQuotaExceeded)
	assert.Contains(t, err.Error(), "Lupa Absen Masuk")
	assert.Contains(t, err.Error(), "limited to 2")
	assert.Equal(t, 2, store.ClarificationCount())

	// Exactly reaching the limit is allowed
	_, err = svc.Submit(ctx, submitRequest(clarification.ForgotCheckIn, a))
	require.NoError(t, err)

	// The other forgot type has its own count
	_, err = svc.Submit(ctx, submitRequest(clarification.ForgotCheckOut, b))
	require.NoError(t, err)

	usage, err := svc.MonthlyUsage(ctx, dosenNIP, attendance.MonthOf(fixedNow))
	require.NoError(t, err)
	assert.Equal(t, clarification.Usage{Month: "2025-07", ForgotCheckIn: 2, ForgotCheckOut: 1, Limit: 2}, usage)
}

func TestClarificationService_Submit_NotClarifiable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newClarificationTestStore()
	ok := addMissingCheckOut(store, "2025-07-14")
	fulfilled := store.AddRecord(attendance.Record{
		NIP: dosenNIP, Date: day("2025-07-15"), CheckIn: strPtr("07:00:00"), CheckOut: strPtr("15:00:00"),
	})

	svc := newTestClarificationService(store, 2)
	_, err := svc.Submit(ctx, submitRequest("Surat Tugas", ok, fulfilled))

	assert.ErrorIs(t, err, attendance.ErrNotClarifiable)
	assert.Equal(t, 0, store.ClarificationCount())
	rec, _ := store.Record(ok)
	assert.Equal(t, attendance.StatusUnset, rec.Status.Kind)
}

func TestClarificationService_Submit_OtherLecturersRecord(t *testing.T) {
	t.Parallel()
	store := newClarificationTestStore()
	other := store.AddRecord(attendance.Record{NIP: kajurNIP, Date: day("2025-07-14")})

	svc := newTestClarificationService(store, 2)
	_, err := svc.Submit(context.Background(), submitRequest("Surat Tugas", other))

	assert.ErrorIs(t, err, attendance.ErrUnauthorized)
}

func TestClarificationService_Submit_RollsBackOnWriteFailure(t *testing.T) {
	t.Parallel()
	store := newClarificationTestStore()
	a := addMissingCheckOut(store, "2025-07-14")
	b := addMissingCheckOut(store, "2025-07-15")
	store.FailAttendanceUpdateAt = 2

	svc := newTestClarificationService(store, 2)
	_, err := svc.Submit(context.Background(), submitRequest("Surat Tugas", a, b))

	require.ErrorIs(t, err, database.ErrTransaction)
	assert.Equal(t, 0, store.ClarificationCount())
	for _, id := range []int64{a, b} {
		rec, _ := store.Record(id)
		assert.Equal(t, attendance.StatusUnset, rec.Status.Kind)
	}
}

// ===== APPROVE / REJECT TESTS =====

func submitOne(t *testing.T, store *memory.Store, svc *ClarificationServiceImpl, date string) (int64, int64) {
	t.Helper()
	recordID := addMissingCheckOut(store, date)
	resp, err := svc.Submit(context.Background(), submitRequest("Surat Tugas Non Fleksibel", recordID))
	require.NoError(t, err)
	return resp.Submitted[0].ID, recordID
}

func TestClarificationService_Approve_CascadesToAttendance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newClarificationTestStore()
	svc := newTestClarificationService(store, 2)
	id, recordID := submitOne(t, store, svc, "2025-07-14")

	require.NoError(t, svc.Approve(ctx, id, kajur))

	c, _ := store.Clarification(id)
	assert.Equal(t, clarification.StatusApproved, c.Status)
	require.NotNil(t, c.ProcessedAt)
	assert.Equal(t, fixedNow, *c.ProcessedAt)

	rec, _ := store.Record(recordID)
	assert.Equal(t, attendance.StatusApproved, rec.Status.Kind)
	assert.Equal(t, attendance.DisplayStatus{Text: attendance.LabelApproved, Color: attendance.ColorSuccess}, attendance.Classify(rec))

	err := svc.Approve(ctx, id, kajur)
	assert.ErrorIs(t, err, clarification.ErrAlreadyProcessed)
}

func TestClarificationService_Reject_CascadesReason(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newClarificationTestStore()
	svc := newTestClarificationService(store, 2)
	id, recordID := submitOne(t, store, svc, "2025-07-14")

	require.NoError(t, svc.Reject(ctx, id, kajur, clarification.RejectRequest{Reason: "Surat tidak ditandatangani"}))

	c, _ := store.Clarification(id)
	assert.Equal(t, clarification.StatusRejected, c.Status)
	require.NotNil(t, c.RejectionReason)
	assert.Equal(t, "Surat tidak ditandatangani", *c.RejectionReason)

	rec, _ := store.Record(recordID)
	assert.Equal(t, attendance.StatusRejected, rec.Status.Kind)
	assert.Equal(t, "Surat tidak ditandatangani", rec.Remark)

	display := attendance.Classify(rec)
	assert.Equal(t, "Ditolak: Surat tidak ditandatangani", display.Text)
	assert.True(t, display.Clarifiable)

	err := svc.Approve(ctx, id, kajur)
	assert.ErrorIs(t, err, clarification.ErrAlreadyProcessed)
}

func TestClarificationService_Approve_Forbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newClarificationTestStore()
	svc := newTestClarificationService(store, 2)
	id, recordID := submitOne(t, store, svc, "2025-07-14")

	otherKajur := clarification.Actor{NIP: "196801011990031001", Role: lecturer.RoleKajur, Department: "Teknik Elektro"}
	for _, actor := range []clarification.Actor{dosen, otherKajur} {
		err := svc.Approve(ctx, id, actor)
		assert.ErrorIs(t, err, clarification.ErrForbidden)
	}

	rec, _ := store.Record(recordID)
	assert.Equal(t, attendance.StatusPending, rec.Status.Kind)
}

func TestClarificationService_Approve_NotFound(t *testing.T) {
	t.Parallel()
	svc := newTestClarificationService(newClarificationTestStore(), 2)

	err := svc.Approve(context.Background(), 42, kajur)
	assert.ErrorIs(t, err, clarification.ErrClarificationNotFound)
}

func TestClarificationService_Approve_RollsBackOnAttendanceFailure(t *testing.T) {
	t.Parallel()
	store := newClarificationTestStore()
	svc := newTestClarificationService(store, 2)
	id, _ := submitOne(t, store, svc, "2025-07-14")
	// Submit used update #1
	store.FailAttendanceUpdateAt = 2

	err := svc.Approve(context.Background(), id, kajur)
	require.ErrorIs(t, err, database.ErrTransaction)

	c, _ := store.Clarification(id)
	assert.Equal(t, clarification.StatusPending, c.Status)
	assert.Nil(t, c.ProcessedAt)
}

// ===== LISTING TESTS =====

func TestClarificationService_History_ScopedByRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newClarificationTestStore()
	svc := newTestClarificationService(store, 2)
	submitOne(t, store, svc, "2025-07-14")
	store.AddClarification(clarification.Clarification{
		NIP: "196801011990031002", Department: "Teknik Elektro", Date: day("2025-07-10"),
		Status: clarification.StatusPending, SubmittedAt: day("2025-07-10"),
	})

	own, err := svc.History(ctx, dosen)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	dept, err := svc.History(ctx, kajur)
	require.NoError(t, err)
	assert.Len(t, dept, 1)

	all, err := svc.History(ctx, clarification.Actor{Role: lecturer.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.ListPendingForDepartment(ctx, deptTI)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "2025-07-14", pending[0].Date)

	_, err = svc.History(ctx, clarification.Actor{Role: "Tamu"})
	assert.ErrorIs(t, err, lecturer.ErrInvalidRole)
}
