package validators

import "errors"

// ErrValidation is matched by every error this package returns for bad
// input. The transport layer renders it as 400 Bad Request.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName      = newValidationError("name must be between 1 and 100 characters")
	ErrInvalidCategory  = newValidationError("invalid category")
	ErrInvalidPriority  = newValidationError("invalid priority")
	ErrInvalidSort      = newValidationError("invalid sort")
	ErrInvalidItemID    = newValidationError("invalid item id")
	ErrInvalidOwnerID   = newValidationError("invalid owner id")
	ErrNoFieldsToUpdate = newValidationError("at least one field must be provided for update")
)

// validationError carries a client-facing message and matches ErrValidation.
type validationError struct {
	msg string
}

func newValidationError(msg string) error {
	return &validationError{msg: msg}
}

func (e *validationError) Error() string {
	return e.msg
}

func (e *validationError) Is(target error) bool {
	return target == ErrValidation
}
