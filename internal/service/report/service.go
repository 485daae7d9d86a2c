package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/report"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/spreadsheet"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	cache      *Cache
	logger     *slog.Logger
}

func NewReportService(reportRepo report.ReportRepository, cache *Cache, logger *slog.Logger) report.ReportService {
	if cache == nil {
		cache = NewCache(DefaultCacheTTL)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		cache:      cache,
		logger:     logger,
	}
}

// BuildReport implements report.ReportService.
func (s *ReportServiceImpl) BuildReport(ctx context.Context, m attendance.Month) (report.MonthlyReport, error) {
	var (
		lecturers []lecturer.Lecturer
		records   []attendance.Record
		approved  []clarification.Clarification
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lecturers, err = s.reportRepo.ListLecturers(gctx)
		if err != nil {
			return fmt.Errorf("failed to list lecturers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.reportRepo.ListAttendance(gctx, m)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		approved, err = s.reportRepo.ListApprovedClarifications(gctx, m)
		if err != nil {
			return fmt.Errorf("failed to list approved clarifications: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.MonthlyReport{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	rep := report.Aggregate(m, lecturers, records, approved, s.logger)
	if rep.Skipped > 0 {
		s.logger.Warn("monthly report built with skipped rows", "month", rep.Month, "skipped", rep.Skipped)
	}
	return rep, nil
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, sessionKey string, m attendance.Month) (report.MonthlyReport, error) {
	rep, err := s.BuildReport(ctx, m)
	if err != nil {
		return report.MonthlyReport{}, err
	}
	s.cache.Put(sessionKey, m, rep)
	return rep, nil
}

// Download implements report.ReportService.
func (s *ReportServiceImpl) Download(ctx context.Context, sessionKey string) (report.ExportFile, error) {
	entry, ok := s.cache.Get(sessionKey)
	if !ok {
		return report.ExportFile{}, report.ErrNoReportGenerated
	}

	data, err := spreadsheet.Render(exportSheet(entry.month, entry.report))
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	return report.ExportFile{
		FileName:    exportFileName(entry.month),
		ContentType: spreadsheet.ContentType,
		Data:        data,
	}, nil
}
