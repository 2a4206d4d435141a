package documents

import (
	"fmt"

	"github.com/google/uuid"
)

// IngestionError reports a failed document ingest along with the client and
// title it was attempted for. It wraps the underlying cause.
type IngestionError struct {
	ClientID uuid.UUID
	Title    string
	cause    error
}

func NewIngestionError(clientID uuid.UUID, title string, cause error) *IngestionError {
	return &IngestionError{ClientID: clientID, Title: title, cause: cause}
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("failed to ingest document %q for client %s: %v", e.Title, e.ClientID, e.cause)
}

func (e *IngestionError) Unwrap() error {
	return e.cause
}

// ChunkingError reports that splitting a document into chunks failed.
type ChunkingError struct {
	cause error
}

func (e *ChunkingError) Error() string {
	return fmt.Sprintf("failed to chunk document: %v", e.cause)
}

func (e *ChunkingError) Unwrap() error {
	return e.cause
}
