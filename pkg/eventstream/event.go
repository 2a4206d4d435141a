// Package eventstream publishes ingestion events so downstream consumers
// (audit, reindexing, notifications) can react to new documents.
package eventstream

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SchemaVersionV1 is the current event payload version.
	SchemaVersionV1 = 1

	// EventTypeDocumentIngested is emitted after a document and its chunks
	// are committed to the store.
	EventTypeDocumentIngested = "search.document.ingested"
)

// DocumentIngestedEvent is the payload published after a successful ingest.
type DocumentIngestedEvent struct {
	SchemaVersion int       `json:"schema_version"`
	EventType     string    `json:"event_type"`
	EventID       uuid.UUID `json:"event_id"`
	EmittedAt     time.Time `json:"emitted_at"`
	ClientID      uuid.UUID `json:"client_id"`
	DocumentID    uuid.UUID `json:"document_id"`
	Title         string    `json:"title"`
	ContentHash   string    `json:"content_hash"`
	ChunkCount    int       `json:"chunk_count"`
}

// NewDocumentIngestedEvent stamps a fresh event for the given document.
func NewDocumentIngestedEvent(clientID, documentID uuid.UUID, title, contentHash string, chunkCount int) *DocumentIngestedEvent {
	return &DocumentIngestedEvent{
		SchemaVersion: SchemaVersionV1,
		EventType:     EventTypeDocumentIngested,
		EventID:       uuid.New(),
		EmittedAt:     time.Now().UTC(),
		ClientID:      clientID,
		DocumentID:    documentID,
		Title:         title,
		ContentHash:   contentHash,
		ChunkCount:    chunkCount,
	}
}
