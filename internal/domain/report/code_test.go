package report

import (
	"testing"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func excuse(k clarification.ExcuseKind) *clarification.ExcuseKind { return &k }

func TestCode(t *testing.T) {
	tests := []struct {
		name    string
		record  attendance.Record
		excuse  *clarification.ExcuseKind
		want    StatusCode
		wantErr bool
	}{
		{
			name:   "present four hours is fulfilled",
			record: attendance.Record{Status: attendance.Present, CheckIn: strPtr("07:00:00.000000"), CheckOut: strPtr("11:00:00.000000")},
			want:   CodeFulfilled,
		},
		{
			name:   "no workflow status four hours is fulfilled",
			record: attendance.Record{CheckIn: strPtr("07:00:00.000000"), CheckOut: strPtr("15:00:00.000000")},
			want:   CodeFulfilled,
		},
		{
			name:   "three hours needs clarification",
			record: attendance.Record{Status: attendance.Present, CheckIn: strPtr("08:00:00.000000"), CheckOut: strPtr("11:00:00.000000")},
			want:   CodeNeedsReview,
		},
		{
			name:   "missing check-out needs clarification",
			record: attendance.Record{Status: attendance.Present, CheckIn: strPtr("08:00:00.000000")},
			want:   CodeNeedsReview,
		},
		{
			name:   "approved leave remark",
			record: attendance.Record{Status: attendance.Approved, Remark: "Cuti Sakit - demam"},
			excuse: excuse(clarification.ExcuseFlexible),
			want:   CodeLeave,
		},
		{
			name:   "approved non flexible clarification",
			record: attendance.Record{Status: attendance.Approved},
			excuse: excuse(clarification.ParseExcuseKind("Lupa Absen Non Fleksibel")),
			want:   CodeNonFlexible,
		},
		{
			name:   "approved flexible clarification",
			record: attendance.Record{Status: attendance.Approved},
			excuse: excuse(clarification.ParseExcuseKind("Fleksibel")),
			want:   CodeFlexible,
		},
		{
			name:   "approved general clarification",
			record: attendance.Record{Status: attendance.Approved},
			excuse: excuse(clarification.ExcuseGeneral),
			want:   CodeExcused,
		},
		{
			name:   "approved without clarification",
			record: attendance.Record{Status: attendance.Approved, Remark: "Dinas"},
			want:   CodeExcused,
		},
		{
			name:   "pending defaults to needs clarification",
			record: attendance.Record{Status: attendance.Pending, CheckIn: strPtr("07:00:00"), CheckOut: strPtr("15:00:00")},
			want:   CodeNeedsReview,
		},
		{
			name:   "rejected defaults to needs clarification",
			record: attendance.Record{Status: attendance.Rejected},
			want:   CodeNeedsReview,
		},
		{
			name:   "inverted interval is kept as needs clarification",
			record: attendance.Record{Status: attendance.Present, CheckIn: strPtr("15:00:00"), CheckOut: strPtr("07:00:00")},
			want:   CodeNeedsReview,
		},
		{
			name:    "unreadable time is a data format error",
			record:  attendance.Record{Status: attendance.Present, CheckIn: strPtr("pagi"), CheckOut: strPtr("15:00:00")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Code(tt.record, tt.excuse)
			if tt.wantErr {
				require.ErrorIs(t, err, attendance.ErrDataFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Rows with both times, at least four hours and no workflow status agree across
// the classifier and the report coder.
func TestCode_AgreesWithClassifierOnFulfilled(t *testing.T) {
	pairs := [][2]string{
		{"08:00:00.000000", "12:00:00.000000"},
		{"06:59:59.000000", "17:30:00.250000"},
		{"00:00:00", "23:59:59.999999"},
	}
	for _, p := range pairs {
		for _, status := range []attendance.RawStatus{attendance.Unset, attendance.Present} {
			r := attendance.Record{Status: status, CheckIn: strPtr(p[0]), CheckOut: strPtr(p[1])}

			assert.Equal(t, attendance.LabelFulfilled, attendance.Classify(r).Text)
			code, err := Code(r, nil)
			require.NoError(t, err)
			assert.Equal(t, CodeFulfilled, code)
		}
	}
}

func TestParseStatusCode(t *testing.T) {
	for _, c := range Codes() {
		got, err := ParseStatusCode(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseStatusCode("XX")
	assert.ErrorIs(t, err, ErrUnknownCode)
}
