package services

// The error taxonomy is small and fully recoverable: every kind is reported
// to the operator and returns control to the menu. None is fatal.

// ValidationError signals malformed input: an unparseable date, a negative
// number, an empty required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals an identity that does not resolve to a stored record.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConstraintViolation signals an operation that would break a data
// invariant, such as selling more stock than is on hand.
type ConstraintViolation struct {
	Message string
}

func (e *ConstraintViolation) Error() string {
	return e.Message
}
