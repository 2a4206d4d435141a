package summary

import "fmt"

// Kind classifies a summarization failure. The taxonomy mirrors
// pkg/embeddings minus the format-specific case, which does not apply to a
// plain string summary.
type Kind string

const (
	// KindInvalidRequest means the summary service rejected the request (4xx).
	KindInvalidRequest Kind = "invalid_request"

	// KindServerError means the summary service failed internally (5xx).
	KindServerError Kind = "server_error"

	// KindCallFailed means the call never produced a usable response.
	KindCallFailed Kind = "call_failed"

	// KindEmptyResponse means the service answered without a summary.
	KindEmptyResponse Kind = "empty_response"
)

// Error is a summarization failure tagged with its Kind.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

// NewError builds an *Error; cause may be nil.
func NewError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("summary failed (%s): %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("summary failed (%s): %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}
