package usecase

import "errors"

// ValidationError marks input that failed a structural precondition.
// Requests failing validation never reach storage.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrAttendanceNotFound = errors.New("attendance not found")
	ErrCPFAlreadyExists   = errors.New("a patient with this cpf is already registered")
)
