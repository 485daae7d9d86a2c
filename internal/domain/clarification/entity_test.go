package clarification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExcuseKind(t *testing.T) {
	tests := []struct {
		category string
		want     ExcuseKind
	}{
		{"Lupa Absen Non Fleksibel", ExcuseNonFlexible},
		{"Non Fleksibel", ExcuseNonFlexible},
		{"Tugas Fleksibel", ExcuseFlexible},
		{"Sakit", ExcuseGeneral},
		{"", ExcuseGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseExcuseKind(tt.category), tt.category)
	}
}

func TestRequestType_QuotaLimited(t *testing.T) {
	assert.True(t, ParseRequestType("Lupa Absen Masuk").QuotaLimited())
	assert.True(t, ForgotCheckOut.QuotaLimited())
	assert.False(t, RequestType("Surat Tugas").QuotaLimited())
}

func TestClarification_Transitions(t *testing.T) {
	now := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)

	c := Clarification{ID: 1, Status: StatusPending}
	require.NoError(t, c.Approve(now))
	assert.Equal(t, StatusApproved, c.Status)
	assert.Equal(t, now, *c.ProcessedAt)
	assert.ErrorIs(t, c.Approve(now), ErrAlreadyProcessed)
	assert.ErrorIs(t, c.Reject("late", now), ErrAlreadyProcessed)

	r := Clarification{ID: 2, Status: StatusPending}
	require.NoError(t, r.Reject("bukti kurang", now))
	assert.Equal(t, StatusRejected, r.Status)
	assert.Equal(t, "bukti kurang", *r.RejectionReason)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("Menunggu Kajur")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s)

	_, err = ParseStatus("Pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
