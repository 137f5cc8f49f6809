package shared

// ErrorKind classifies domain errors so the boundary layer can translate
// them without inspecting codes one by one.
type ErrorKind string

const (
	// KindData marks malformed or missing input, including not-found lookups.
	KindData ErrorKind = "data"
	// KindStatus marks an operation attempted against an aggregate whose
	// current state forbids it.
	KindStatus ErrorKind = "status"
	// KindOperation marks invalid use of a value object operation.
	KindOperation ErrorKind = "operation"
)

// DomainError represents a domain-level error
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDataError creates a data error (caller mistake, never retried)
func NewDataError(code, message string) *DomainError {
	return &DomainError{Kind: KindData, Code: code, Message: message}
}

// NewStatusError creates a status error (business-rule conflict)
func NewStatusError(code, message string) *DomainError {
	return &DomainError{Kind: KindStatus, Code: code, Message: message}
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	de, ok := err.(*DomainError)
	return ok && de.Kind == kind
}

// Common domain errors
var (
	ErrNotFound      = NewDataError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDataError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDataError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState  = NewStatusError("INVALID_STATE", "Operation not allowed in current state")
)
