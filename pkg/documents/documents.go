// Package documents runs the ingestion pipeline and the document read path.
// Ingestion chunks the text, embeds every chunk, and commits the document
// with its chunk batch in a single store write. Summaries are generated
// lazily on first read, deduplicated per document by a single-flight loader.
package documents

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/neviswealth/search-service/pkg/chunking"
	"github.com/neviswealth/search-service/pkg/docstore"
	"github.com/neviswealth/search-service/pkg/embeddings"
	"github.com/neviswealth/search-service/pkg/eventstream"
	"github.com/neviswealth/search-service/pkg/singleflight"
	"github.com/neviswealth/search-service/pkg/summary"
)

type Service struct {
	store         docstore.Store
	chunker       *chunking.Chunker
	embedder      embeddings.Embedder
	summarizer    summary.Summarizer
	events        eventstream.Publisher
	summaryLoader *singleflight.Loader[uuid.UUID, string]
	logger        *zap.Logger
}

func NewService(
	store docstore.Store,
	chunker *chunking.Chunker,
	embedder embeddings.Embedder,
	summarizer summary.Summarizer,
	events eventstream.Publisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:         store,
		chunker:       chunker,
		embedder:      embedder,
		summarizer:    summarizer,
		events:        events,
		summaryLoader: singleflight.NewLoader[uuid.UUID, string](),
		logger:        logger,
	}
}

// Ingest validates, chunks, embeds, and persists a document for a client.
// Nothing is persisted unless every chunk embeds successfully.
func (s *Service) Ingest(ctx context.Context, clientID uuid.UUID, title, content string) (docstore.Document, error) {
	exists, err := s.store.ClientExists(ctx, clientID)
	if err != nil {
		return docstore.Document{}, fmt.Errorf("checking client existence: %w", err)
	}
	if !exists {
		return docstore.Document{}, &docstore.NotFoundError{Entity: "client", ID: clientID.String()}
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return docstore.Document{}, &docstore.ValidationError{Detail: "title is required"}
	}

	taken, err := s.store.DocumentTitleExists(ctx, clientID, title)
	if err != nil {
		return docstore.Document{}, fmt.Errorf("checking document title: %w", err)
	}
	if taken {
		return docstore.Document{}, &docstore.ConflictError{Entity: "document", Detail: "title already exists for this client"}
	}

	pieces, err := s.chunkDocument(title, content)
	if err != nil {
		return docstore.Document{}, NewIngestionError(clientID, title, err)
	}

	docID := uuid.New()
	chunks := make([]docstore.DocumentChunk, 0, len(pieces))
	for _, piece := range pieces {
		embedding, err := s.embedder.Embed(ctx, piece.Content)
		if err != nil {
			return docstore.Document{}, NewIngestionError(clientID, title, err)
		}
		chunks = append(chunks, docstore.DocumentChunk{
			DocumentID: docID,
			ChunkIndex: piece.Index,
			Content:    piece.Content,
			Embedding:  embedding,
		})
	}

	hash := sha256.Sum256([]byte(content))
	doc := docstore.Document{
		ID:          docID,
		ClientID:    clientID,
		Title:       title,
		Content:     content,
		ContentHash: hex.EncodeToString(hash[:]),
	}

	saved, err := s.store.IngestDocument(ctx, doc, chunks)
	if err != nil {
		return docstore.Document{}, err
	}

	s.logger.Info("document ingested",
		zap.String("document_id", saved.ID.String()),
		zap.String("client_id", clientID.String()),
		zap.Int("chunk_count", len(chunks)))

	event := eventstream.NewDocumentIngestedEvent(clientID, saved.ID, saved.Title, saved.ContentHash, len(chunks))
	if err := s.events.PublishDocumentIngested(ctx, event); err != nil {
		s.logger.Warn("failed to publish ingestion event",
			zap.String("document_id", saved.ID.String()),
			zap.Error(err))
	}

	return saved, nil
}

// chunkDocument shields ingestion from chunker panics on pathological input.
func (s *Service) chunkDocument(title, content string) (pieces []chunking.Chunk, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ChunkingError{cause: fmt.Errorf("%v", r)}
		}
	}()
	return s.chunker.Chunk(title, content), nil
}

// Get returns a document by ID, generating and persisting its summary on
// first read. Concurrent readers of the same unsummarized document share a
// single summarizer call.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (docstore.Document, error) {
	doc, err := s.store.FindDocumentByID(ctx, id)
	if err != nil {
		return docstore.Document{}, err
	}
	if doc.Summary != nil || doc.Content == "" {
		return doc, nil
	}

	text, err := s.summaryLoader.Load(id, func() (string, error) {
		generated, err := s.summarizer.Summarize(ctx, doc.Content)
		if err != nil {
			return "", err
		}
		if err := s.store.UpdateDocumentSummary(ctx, id, generated); err != nil {
			return "", err
		}
		return generated, nil
	})
	if err != nil {
		return docstore.Document{}, fmt.Errorf("summarizing document %s: %w", id, err)
	}

	doc.Summary = &text
	return doc, nil
}

// List returns all documents without their content.
func (s *Service) List(ctx context.Context) ([]docstore.Document, error) {
	return s.store.ListDocuments(ctx)
}
