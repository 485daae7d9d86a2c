package report

import "errors"

var (
	ErrInvalidMonth           = errors.New("month must be in YYYY-MM format")
	ErrNoReportGenerated      = errors.New("no report available for download, generate one first")
	ErrReportGenerationFailed = errors.New("failed to generate report")
	ErrUnknownCode            = errors.New("unknown status code")
	ErrInvalidSummary         = errors.New("invalid summary string")
)
