package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid request data")
)

// ValidationError describes the first rule violated by a request. Message
// is safe to return to clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold for validation failures.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
