package picker

// Code identifies a validation failure
type Code string

const (
	CodeStartIsWeekend Code = "start_is_weekend"
	CodeEndIsWeekend   Code = "end_is_weekend"
	CodeStartAfterEnd  Code = "start_after_end"
	CodeEndBeforeStart Code = "end_before_start"
	CodeInvalidDate    Code = "invalid_date"
)

// ValidationError is a rejected selection. The exported values below are the
// only instances, so errors.Is compares them by identity.
type ValidationError struct {
	Code    Code
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrStartIsWeekend = &ValidationError{Code: CodeStartIsWeekend, Message: "Start date cannot be a weekend!"}
	ErrEndIsWeekend   = &ValidationError{Code: CodeEndIsWeekend, Message: "End date cannot be a weekend!"}
	ErrStartAfterEnd  = &ValidationError{Code: CodeStartAfterEnd, Message: "Start date cannot be after end date!"}
	ErrEndBeforeStart = &ValidationError{Code: CodeEndBeforeStart, Message: "End date cannot be before start date!"}
	ErrInvalidDate    = &ValidationError{Code: CodeInvalidDate, Message: "Invalid date, use the YYYY-MM-DD format!"}
)
