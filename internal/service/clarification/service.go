package clarification

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
)

// DefaultForgotQuota is the monthly cap per forgot-attendance type.
const DefaultForgotQuota = 2

type ClarificationServiceImpl struct {
	tx                database.Transactor
	clarificationRepo clarification.ClarificationRepository
	attendanceRepo    attendance.AttendanceRepository
	forgotQuota       int
	now               func() time.Time
}

func NewClarificationService(
	tx database.Transactor,
	clarificationRepo clarification.ClarificationRepository,
	attendanceRepo attendance.AttendanceRepository,
	forgotQuota int,
) clarification.ClarificationService {
	if forgotQuota <= 0 {
		forgotQuota = DefaultForgotQuota
	}
	return &ClarificationServiceImpl{
		tx:                tx,
		clarificationRepo: clarificationRepo,
		attendanceRepo:    attendanceRepo,
		forgotQuota:       forgotQuota,
		now:               time.Now,
	}
}

// Submit implements clarification.ClarificationService.
func (s *ClarificationServiceImpl) Submit(ctx context.Context, req clarification.SubmitRequest) (clarification.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return clarification.SubmitResponse{}, err
	}

	now := s.now()
	requestType := clarification.ParseRequestType(req.Type)

	ids := slices.Clone(req.RecordIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	records := make([]attendance.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.attendanceRepo.GetByID(ctx, id)
		if err != nil {
			return clarification.SubmitResponse{}, err
		}
		if rec.NIP != req.Actor.NIP {
			return clarification.SubmitResponse{}, fmt.Errorf("%w: record %d", attendance.ErrUnauthorized, id)
		}
		if !attendance.Classify(rec).Clarifiable {
			return clarification.SubmitResponse{}, fmt.Errorf("%w: %s", attendance.ErrNotClarifiable, rec.Date.Format("2006-01-02"))
		}
		records = append(records, rec)
	}

	if requestType.QuotaLimited() {
		month := attendance.MonthOf(now)
		used, err := s.clarificationRepo.CountByTypeInMonth(ctx, req.Actor.NIP, requestType, month)
		if err != nil {
			return clarification.SubmitResponse{}, fmt.Errorf("failed to count submissions: %w", err)
		}
		if used+len(records) > s.forgotQuota {
			return clarification.SubmitResponse{}, fmt.Errorf(
				"%w: %q is limited to %d per month, %d already submitted in %s and %d selected",
				clarification.ErrMonthlyQuotaExceeded, requestType, s.forgotQuota, used, month, len(records))
		}
	}

	submitted := make([]clarification.ClarificationResponse, 0, len(records))
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, rec := range records {
			created, err := s.clarificationRepo.Create(ctx, clarification.Clarification{
				NIP:          rec.NIP,
				FullName:     firstNonEmpty(req.Actor.FullName, rec.FullName),
				Department:   firstNonEmpty(req.Actor.Department, rec.Department),
				Date:         rec.Date,
				Category:     req.Category,
				Type:         requestType,
				EvidencePath: req.EvidencePath,
				Status:       clarification.StatusPending,
				SubmittedAt:  now,
			})
			if err != nil {
				return fmt.Errorf("%w: create clarification for %s: %w", database.ErrTransaction, rec.Date.Format("2006-01-02"), err)
			}

			if err := s.attendanceRepo.UpdateStatus(ctx, rec.ID, attendance.Pending, ""); err != nil {
				return fmt.Errorf("%w: mark %s pending: %w", database.ErrTransaction, rec.Date.Format("2006-01-02"), err)
			}
			submitted = append(submitted, clarification.NewClarificationResponse(created))
		}
		return nil
	})
	if err != nil {
		return clarification.SubmitResponse{}, err
	}

	slog.Info("clarification submitted", "nip", req.Actor.NIP, "type", requestType, "count", len(submitted))
	return clarification.SubmitResponse{Submitted: submitted}, nil
}

// Approve implements clarification.ClarificationService.
func (s *ClarificationServiceImpl) Approve(ctx context.Context, id int64, actor clarification.Actor) error {
	return s.process(ctx, id, actor, func(c *clarification.Clarification, at time.Time) (attendance.RawStatus, *string, error) {
		// Keterangan absensi tidak diubah saat disetujui
		return attendance.Approved, nil, c.Approve(at)
	})
}

// Reject implements clarification.ClarificationService.
func (s *ClarificationServiceImpl) Reject(ctx context.Context, id int64, actor clarification.Actor, req clarification.RejectRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.process(ctx, id, actor, func(c *clarification.Clarification, at time.Time) (attendance.RawStatus, *string, error) {
		reason := req.Reason
		return attendance.Rejected, &reason, c.Reject(reason, at)
	})
}

type transition func(c *clarification.Clarification, at time.Time) (attendance.RawStatus, *string, error)

// process applies a decision to the clarification and cascades it onto the attendance row.
func (s *ClarificationServiceImpl) process(ctx context.Context, id int64, actor clarification.Actor, apply transition) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.clarificationRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if actor.Role != lecturer.RoleKajur || actor.Department != c.Department {
			return fmt.Errorf("%w: clarification %d", clarification.ErrForbidden, id)
		}

		status, remark, err := apply(&c, s.now())
		if err != nil {
			return err
		}

		if err := s.clarificationRepo.Update(ctx, c); err != nil {
			return fmt.Errorf("%w: update clarification %d: %w", database.ErrTransaction, id, err)
		}
		if err := s.attendanceRepo.UpdateStatusByDate(ctx, c.NIP, c.Date, status, remark); err != nil {
			return fmt.Errorf("%w: update attendance of %s on %s: %w",
				database.ErrTransaction, c.NIP, c.Date.Format("2006-01-02"), err)
		}

		slog.Info("clarification processed", "id", id, "status", c.Status, "by", actor.NIP)
		return nil
	})
}

// ListPendingForDepartment implements clarification.ClarificationService.
func (s *ClarificationServiceImpl) ListPendingForDepartment(ctx context.Context, department string) ([]clarification.ClarificationResponse, error) {
	list, err := s.clarificationRepo.ListPendingByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// History implements clarification.ClarificationService.
func (s *ClarificationServiceImpl) History(ctx context.Context, actor clarification.Actor) ([]clarification.ClarificationResponse, error) {
	var (
		list []clarification.Clarification
		err  error
	)
	switch actor.Role {
	case lecturer.RoleDosen:
		list, err = s.clarificationRepo.ListByNIP(ctx, actor.NIP)
	case lecturer.RoleKajur:
		list, err = s.clarificationRepo.ListByDepartment(ctx, actor.Department)
	case lecturer.RoleAdmin:
		list, err = s.clarificationRepo.ListAll(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", lecturer.ErrInvalidRole, actor.Role)
	}
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// MonthlyUsage implements clarification.ClarificationService.
func (s *ClarificationServiceImpl) MonthlyUsage(ctx context.Context, nip string, m attendance.Month) (clarification.Usage, error) {
	forgotIn, err := s.clarificationRepo.CountByTypeInMonth(ctx, nip, clarification.ForgotCheckIn, m)
	if err != nil {
		return clarification.Usage{}, fmt.Errorf("failed to count forgot check-in: %w", err)
	}
	forgotOut, err := s.clarificationRepo.CountByTypeInMonth(ctx, nip, clarification.ForgotCheckOut, m)
	if err != nil {
		return clarification.Usage{}, fmt.Errorf("failed to count forgot check-out: %w", err)
	}
	return clarification.Usage{
		Month:          m.String(),
		ForgotCheckIn:  forgotIn,
		ForgotCheckOut: forgotOut,
		Limit:          s.forgotQuota,
	}, nil
}

func toResponses(list []clarification.Clarification) []clarification.ClarificationResponse {
	out := make([]clarification.ClarificationResponse, 0, len(list))
	for _, c := range list {
		out = append(out, clarification.NewClarificationResponse(c))
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
