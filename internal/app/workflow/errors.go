package workflow

// Error codes. Validation errors carry the form control they belong to in
// Field; the binding layer renders them inline next to that control.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeBackend    = "BACKEND_REJECTED"
	CodeNetwork    = "NETWORK_ERROR"
	CodeBusy       = "ACTION_IN_FLIGHT"
	CodeState      = "INVALID_STATE"
)

// Error is a workflow-layer error carrying the user-facing German message.
type Error struct {
	Code    string
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func validationErr(field, message string) *Error {
	return &Error{Code: CodeValidation, Field: field, Message: message}
}
