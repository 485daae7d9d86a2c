package lecturer

import "errors"

var (
	ErrLecturerNotFound = errors.New("lecturer not found")
	ErrNIPAlreadyExists = errors.New("nip already registered")
	ErrInvalidRole      = errors.New("invalid role")
)
