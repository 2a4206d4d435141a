package docstore

import (
	"context"

	"github.com/google/uuid"
)

// ContentStore persists clients and document metadata.
type ContentStore interface {
	// InsertClient stores a new client and returns it with CreatedAt set.
	InsertClient(ctx context.Context, client Client) (Client, error)

	// FindClientByID returns the client or a *NotFoundError.
	FindClientByID(ctx context.Context, id uuid.UUID) (Client, error)

	// ClientExists reports whether a client with the id exists.
	ClientExists(ctx context.Context, id uuid.UUID) (bool, error)

	// ClientEmailExists reports whether a client with the normalized email exists.
	ClientEmailExists(ctx context.Context, email string) (bool, error)

	// SearchClientsByEmail matches the normalized query against stored
	// emails: substring matches score 1.0, trigram-similarity matches score
	// the raw similarity. Ordered by score descending, capped at limit.
	SearchClientsByEmail(ctx context.Context, query string, limit int) ([]ClientHit, error)

	// SearchClientsByNameOrDomain matches the normalized query and its slug
	// form against full name, email, domain, domain slug, and first/last
	// name, with the same substring-or-trigram scoring.
	SearchClientsByNameOrDomain(ctx context.Context, query, slug string, limit int) ([]ClientHit, error)

	// ListClients returns all clients.
	ListClients(ctx context.Context) ([]Client, error)

	// FindDocumentByID returns the full document or a *NotFoundError.
	FindDocumentByID(ctx context.Context, id uuid.UUID) (Document, error)

	// DocumentTitleExists reports whether the client already has a document
	// with the trimmed title.
	DocumentTitleExists(ctx context.Context, clientID uuid.UUID, title string) (bool, error)

	// ListDocuments returns all documents without content.
	ListDocuments(ctx context.Context) ([]Document, error)

	// UpdateDocumentSummary sets the document's summary if none is stored
	// yet. An already-populated summary is left untouched.
	UpdateDocumentSummary(ctx context.Context, id uuid.UUID, summary string) error
}

// ChunkStore persists embedded chunks and answers the two search passes.
// A search never observes a document with a partial chunk set:
// IngestDocument writes the document and all of its chunks as one unit.
type ChunkStore interface {
	// IngestDocument stores the document and its chunks atomically and
	// returns the document with CreatedAt set. The (ClientID, Title) pair
	// is unique; a duplicate fails with a *ConflictError.
	IngestDocument(ctx context.Context, doc Document, chunks []DocumentChunk) (Document, error)

	// SearchLexical scores chunk text against the query (substring match
	// scores 1.0, otherwise trigram similarity filtered by threshold) and
	// returns the single best chunk per document, capped at limit.
	// A nil clientID searches across all clients.
	SearchLexical(ctx context.Context, clientID *uuid.UUID, query string, limit int, threshold float64) ([]DocumentHit, error)

	// SearchVector scores chunks by embedding distance to the query vector
	// (score = exp(-distance), filtered by threshold) and returns the
	// single best chunk per document, capped at limit.
	SearchVector(ctx context.Context, clientID *uuid.UUID, queryVector []float32, limit int, threshold float64) ([]DocumentHit, error)
}

// Store is a full storage backend.
type Store interface {
	ContentStore
	ChunkStore

	// Close releases the backend's resources.
	Close() error
}
