package embeddings

import "fmt"

// Kind classifies an embedding failure.
type Kind string

const (
	// KindInvalidRequest means the embedding service rejected the request (4xx).
	KindInvalidRequest Kind = "invalid_request"

	// KindServerError means the embedding service failed internally (5xx).
	KindServerError Kind = "server_error"

	// KindInvalidResponseFormat means the response body could not be decoded.
	KindInvalidResponseFormat Kind = "invalid_response_format"

	// KindCallFailed means the call never produced a usable response
	// (transport failure, timeout, cancelled context).
	KindCallFailed Kind = "call_failed"

	// KindEmptyResponse means the service answered with a null or
	// zero-length vector.
	KindEmptyResponse Kind = "empty_response"
)

// Error is an embedding failure tagged with its Kind.
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
		return fmt.Sprintf("embedding failed (%s): %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("embedding failed (%s): %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}
