package dto

// Error codes surfaced by the HTTP boundary.
const (
	ErrCodeInvalidJSON     = "invalid_json"
	ErrCodeValidationError = "validation_error"
	ErrCodeNotFound        = "not_found"
	ErrCodeInternalError   = "internal_error"
)

// Issue kinds for field-level validation errors.
const (
	IssueMissing     = "missing"
	IssueTypeError   = "type_error"
	IssueInvalidJSON = "invalid_json"
	IssueInvalid     = "invalid"
)

// FieldError pinpoints a single schema violation. Field is a dot-path
// into the request payload without a leading wrapper token, e.g.
// "conversation_message.author.id".
type FieldError struct {
	Field   string `json:"field"`
	Issue   string `json:"issue"`
	Message string `json:"message"`
}

// ErrorResponse is the stable error envelope for all non-2xx responses.
// Details is null except for validation errors.
type ErrorResponse struct {
	ErrorCode string       `json:"error_code"`
	Message   string       `json:"message"`
	Details   []FieldError `json:"details"`
}
