package report

import (
	"errors"
	"fmt"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/leave"
)

// StatusCode is the compact per-day code of the monthly grid.
type StatusCode string

const (
	CodeFulfilled   StatusCode = "KT" // Kehadiran Terpenuhi
	CodeNeedsReview StatusCode = "PK" // Perlu Klarifikasi
	CodeNonFlexible StatusCode = "NF" // Non Fleksibel
	CodeFlexible    StatusCode = "FL" // Fleksibel
	CodeLeave       StatusCode = "CT" // Cuti
	CodeExcused     StatusCode = "IZ" // Izin
)

var codeOrder = []StatusCode{CodeFulfilled, CodeNeedsReview, CodeNonFlexible, CodeFlexible, CodeLeave, CodeExcused}

// Codes returns every code in summary order.
func Codes() []StatusCode {
	out := make([]StatusCode, len(codeOrder))
	copy(out, codeOrder)
	return out
}

func ParseStatusCode(s string) (StatusCode, error) {
	for _, c := range codeOrder {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCode, s)
}

// Code derives the grid code of one attendance record. approved is the excuse kind
// of an approved clarification for the same lecturer and date, nil when there is none.
// Rows whose times cannot be read return an error wrapping attendance.ErrDataFormat.
func Code(r attendance.Record, approved *clarification.ExcuseKind) (StatusCode, error) {
	switch r.Status.Kind {
	case attendance.StatusApproved:
		if leave.IsLeaveRemark(r.Remark) {
			return CodeLeave, nil
		}
		if approved == nil {
			return CodeExcused, nil
		}
		switch *approved {
		case clarification.ExcuseNonFlexible:
			return CodeNonFlexible, nil
		case clarification.ExcuseFlexible:
			return CodeFlexible, nil
		default:
			return CodeExcused, nil
		}

	case attendance.StatusPresent, attendance.StatusUnset:
		d, ok, err := r.Duration()
		switch {
		case errors.Is(err, attendance.ErrInvertedInterval):
			return CodeNeedsReview, nil
		case err != nil:
			return "", err
		case ok && d >= attendance.MinimumPresence:
			return CodeFulfilled, nil
		}
	}

	return CodeNeedsReview, nil
}
