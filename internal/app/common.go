package app

// ValidationErrorCode identifies why an input was rejected.
type ValidationErrorCode string

const (
	ErrEmptyDescription ValidationErrorCode = "EMPTY_DESCRIPTION"
	ErrBelowMinimum     ValidationErrorCode = "BELOW_MINIMUM"
	ErrTaskUnavailable  ValidationErrorCode = "TASK_UNAVAILABLE"
)

// ValidationError is a user-facing rejection of a mutation input. The UI
// shows Message inline; no state changes when one is returned.
type ValidationError struct {
	Code    ValidationErrorCode
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// CountBucket is one labelled tally in a distribution.
type CountBucket struct {
	Label string
	Count int
}

// DayTotal is an aggregate for a single calendar day (YYYY-MM-DD).
type DayTotal struct {
	Day    string
	Amount int
	Count  int
}
