// Package inmemory implements docstore.Store with plain maps. It backs
// tests and the storage.driver=memory mode, computing trigram similarity
// and vector distance in process instead of delegating to postgres.
package inmemory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/neviswealth/search-service/pkg/docstore"
)

// trgmMatchThreshold mirrors pg_trgm's default threshold for the %
// operator: weaker similarities are not considered matches at all.
const trgmMatchThreshold = 0.3

type Store struct {
	mu        sync.RWMutex
	clients   map[uuid.UUID]docstore.Client
	emails    map[string]uuid.UUID
	documents map[uuid.UUID]docstore.Document
	chunks    map[uuid.UUID][]docstore.DocumentChunk
}

func NewStore() *Store {
	return &Store{
		clients:   make(map[uuid.UUID]docstore.Client),
		emails:    make(map[string]uuid.UUID),
		documents: make(map[uuid.UUID]docstore.Document),
		chunks:    make(map[uuid.UUID][]docstore.DocumentChunk),
	}
}

func (s *Store) InsertClient(_ context.Context, client docstore.Client) (docstore.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[client.Email]; ok {
		return docstore.Client{}, &docstore.ConflictError{Entity: "client", Detail: "email already exists"}
	}
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	client.CreatedAt = time.Now().UTC()

	s.clients[client.ID] = client
	s.emails[client.Email] = client.ID
	return client, nil
}

func (s *Store) FindClientByID(_ context.Context, id uuid.UUID) (docstore.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[id]
	if !ok {
		return docstore.Client{}, &docstore.NotFoundError{Entity: "client", ID: id.String()}
	}
	return client, nil
}

func (s *Store) ClientExists(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.clients[id]
	return ok, nil
}

func (s *Store) ClientEmailExists(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.emails[email]
	return ok, nil
}

func (s *Store) SearchClientsByEmail(_ context.Context, query string, limit int) ([]docstore.ClientHit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []docstore.ClientHit
	for _, client := range s.clients {
		var score float64
		if containsFold(client.Email, query) {
			score = 1.0
		} else if score = similarity(client.Email, query); score < trgmMatchThreshold {
			continue
		}
		hits = append(hits, docstore.ClientHit{Client: client, Score: score})
	}
	sortClientHits(hits)
	return capClientHits(hits, limit), nil
}

func (s *Store) SearchClientsByNameOrDomain(_ context.Context, query, slug string, limit int) ([]docstore.ClientHit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []docstore.ClientHit
	for _, client := range s.clients {
		var score float64
		if containsFold(client.FullName, query) || containsFold(client.Email, query) {
			score = 1.0
		} else {
			score = max(
				similarity(client.FullName, query),
				similarity(client.FullName, slug),
				similarity(client.EmailDomainSlug, slug),
				similarity(client.EmailDomain, slug),
				similarity(client.FirstName, query),
				similarity(client.LastName, query),
			)
			if score < trgmMatchThreshold {
				continue
			}
		}
		hits = append(hits, docstore.ClientHit{Client: client, Score: score})
	}
	sortClientHits(hits)
	return capClientHits(hits, limit), nil
}

func (s *Store) ListClients(_ context.Context) ([]docstore.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := make([]docstore.Client, 0, len(s.clients))
	for _, client := range s.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].CreatedAt.Before(clients[j].CreatedAt)
	})
	return clients, nil
}

func (s *Store) IngestDocument(_ context.Context, doc docstore.Document, chunks []docstore.DocumentChunk) (docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.documents {
		if existing.ClientID == doc.ClientID && existing.Title == doc.Title {
			return docstore.Document{}, &docstore.ConflictError{Entity: "document", Detail: "title already exists for this client"}
		}
	}

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	doc.CreatedAt = time.Now().UTC()

	stored := make([]docstore.DocumentChunk, len(chunks))
	for i, chunk := range chunks {
		chunk.DocumentID = doc.ID
		stored[i] = chunk
	}

	s.documents[doc.ID] = doc
	s.chunks[doc.ID] = stored
	return doc, nil
}

func (s *Store) FindDocumentByID(_ context.Context, id uuid.UUID) (docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return docstore.Document{}, &docstore.NotFoundError{Entity: "document", ID: id.String()}
	}
	return doc, nil
}

func (s *Store) DocumentTitleExists(_ context.Context, clientID uuid.UUID, title string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.documents {
		if doc.ClientID == clientID && doc.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListDocuments(_ context.Context) ([]docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]docstore.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		doc.Content = ""
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
	return docs, nil
}

func (s *Store) UpdateDocumentSummary(_ context.Context, id uuid.UUID, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return &docstore.NotFoundError{Entity: "document", ID: id.String()}
	}
	if doc.Summary != nil {
		// write-once: a concurrent reader already persisted a summary
		return nil
	}
	doc.Summary = &summary
	s.documents[id] = doc
	return nil
}

func (s *Store) SearchLexical(_ context.Context, clientID *uuid.UUID, query string, limit int, threshold float64) ([]docstore.DocumentHit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []docstore.DocumentHit
	for docID, chunks := range s.chunks {
		doc := s.documents[docID]
		if clientID != nil && doc.ClientID != *clientID {
			continue
		}

		best := docstore.DocumentHit{Score: -1}
		for _, chunk := range chunks {
			var score float64
			if containsFold(chunk.Content, query) {
				score = 1.0
			} else {
				score = similarity(chunk.Content, query)
				if score < threshold {
					continue
				}
			}
			if score > best.Score {
				best = docstore.DocumentHit{Document: withoutContent(doc), Score: score, Snippet: chunk.Content}
			}
		}
		if best.Score >= 0 {
			hits = append(hits, best)
		}
	}
	sortDocumentHits(hits)
	return capDocumentHits(hits, limit), nil
}

func (s *Store) SearchVector(_ context.Context, clientID *uuid.UUID, queryVector []float32, limit int, threshold float64) ([]docstore.DocumentHit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []docstore.DocumentHit
	for docID, chunks := range s.chunks {
		doc := s.documents[docID]
		if clientID != nil && doc.ClientID != *clientID {
			continue
		}

		best := docstore.DocumentHit{Score: -1}
		for _, chunk := range chunks {
			score := math.Exp(-euclideanDistance(chunk.Embedding, queryVector))
			if score > best.Score {
				best = docstore.DocumentHit{Document: withoutContent(doc), Score: score, Snippet: chunk.Content}
			}
		}
		if best.Score >= threshold {
			hits = append(hits, best)
		}
	}
	sortDocumentHits(hits)
	return capDocumentHits(hits, limit), nil
}

func (s *Store) Close() error {
	return nil
}

func euclideanDistance(a, b []float32) float64 {
	n := min(len(a), len(b))
	var sum float64
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// withoutContent mirrors the search row shape of the SQL backend, which
// never selects document content for hits.
func withoutContent(doc docstore.Document) docstore.Document {
	doc.Content = ""
	doc.ContentHash = ""
	doc.Summary = nil
	return doc
}

func sortClientHits(hits []docstore.ClientHit) {
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Client.ID.String() < hits[j].Client.ID.String()
	})
}

func sortDocumentHits(hits []docstore.DocumentHit) {
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Document.ID.String() < hits[j].Document.ID.String()
	})
}

func capClientHits(hits []docstore.ClientHit, limit int) []docstore.ClientHit {
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

func capDocumentHits(hits []docstore.DocumentHit, limit int) []docstore.DocumentHit {
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

var _ docstore.Store = (*Store)(nil)
