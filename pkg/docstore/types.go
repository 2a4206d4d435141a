// Package docstore defines the client/document data model and the store
// interfaces the retrieval core depends on. Backends live in sub-packages.
package docstore

import (
	"time"

	"github.com/google/uuid"
)

// Client is an onboarded client. Email is stored lowercase and trimmed;
// EmailDomain and EmailDomainSlug are always derived from it, and FullName
// is the lowercased "first last". A client is immutable after creation.
type Client struct {
	ID                 uuid.UUID
	Email              string
	EmailDomain        string
	EmailDomainSlug    string
	FirstName          string
	LastName           string
	FullName           string
	CountryOfResidence string
	CreatedAt          time.Time
}

// Document is an ingested free-text document. (ClientID, Title) is unique.
// Summary starts nil and is populated lazily at most once.
type Document struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	Title       string
	Content     string
	ContentHash string
	Summary     *string
	CreatedAt   time.Time
}

// DocumentChunk is one embedded retrievable unit of a document.
// ChunkIndex is unique per document; the embedding dimension is constant
// across a deployment.
type DocumentChunk struct {
	DocumentID uuid.UUID
	ChunkIndex int
	Content    string
	Embedding  []float32
}

// ClientHit is a client with its search relevance score.
type ClientHit struct {
	Client Client
	Score  float64
}

// DocumentHit is a document with its relevance score and the best-matching
// chunk's content as snippet.
type DocumentHit struct {
	Document Document
	Score    float64
	Snippet  string
}
