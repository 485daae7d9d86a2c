package clarification

import "errors"

var (
	ErrClarificationNotFound = errors.New("clarification not found")
	ErrAlreadyProcessed      = errors.New("clarification already processed")
	ErrInvalidStatus         = errors.New("invalid clarification status")
	ErrNoRecordsSelected     = errors.New("select at least one attendance date to clarify")
	ErrMonthlyQuotaExceeded  = errors.New("monthly submission limit reached")
	ErrForbidden             = errors.New("only the head of the lecturer's department may process this clarification")
)
