// Package search runs hybrid retrieval over clients and documents. Client
// hits come from trigram matching on emails, names, and domains. Document
// hits merge a lexical pass with a semantic pass over chunk embeddings,
// keeping the better score per document.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/neviswealth/search-service/pkg/docstore"
	"github.com/neviswealth/search-service/pkg/embeddings"
	"github.com/neviswealth/search-service/pkg/utils"
)

const (
	maxClientResults   = 20
	maxDocumentResults = 10
	maxCombinedResults = 15
)

// Config holds the score cutoffs for the two document passes.
type Config struct {
	LexicalThreshold float64
	VectorThreshold  float64
}

type Engine struct {
	config   Config
	store    docstore.Store
	embedder embeddings.Embedder
	logger   *zap.Logger
}

func NewEngine(config Config, store docstore.Store, embedder embeddings.Embedder, logger *zap.Logger) *Engine {
	return &Engine{config: config, store: store, embedder: embedder, logger: logger}
}

// Search runs a query across clients and documents. When clientID is set,
// only that client's documents are searched and client hits are skipped.
// Results are ordered by score descending, ties broken by entity ID.
func (e *Engine) Search(ctx context.Context, query string, clientID *uuid.UUID) ([]Result, error) {
	normalized := utils.NormalizeQuery(query)
	if normalized == "" {
		return nil, &docstore.ValidationError{Detail: "query must not be blank"}
	}

	if clientID != nil {
		exists, err := e.store.ClientExists(ctx, *clientID)
		if err != nil {
			return nil, fmt.Errorf("checking client existence: %w", err)
		}
		if !exists {
			return nil, &docstore.NotFoundError{Entity: "client", ID: clientID.String()}
		}

		results, err := e.searchDocuments(ctx, normalized, clientID)
		if err != nil {
			return nil, err
		}
		return capResults(sortResults(results), maxDocumentResults), nil
	}

	clientHits, err := e.searchClients(ctx, normalized)
	if err != nil {
		return nil, err
	}
	documentHits, err := e.searchDocuments(ctx, normalized, nil)
	if err != nil {
		return nil, err
	}

	combined := append(clientHits, documentHits...)
	return capResults(sortResults(combined), maxCombinedResults), nil
}

func (e *Engine) searchClients(ctx context.Context, query string) ([]Result, error) {
	var (
		hits []docstore.ClientHit
		err  error
	)
	if strings.Contains(query, "@") {
		hits, err = e.store.SearchClientsByEmail(ctx, query, maxClientResults)
	} else {
		slug := utils.Slugify(query)
		if slug == "" {
			slug = query
		}
		hits, err = e.store.SearchClientsByNameOrDomain(ctx, query, slug, maxClientResults)
	}
	if err != nil {
		return nil, fmt.Errorf("searching clients: %w", err)
	}

	results := make([]Result, 0, len(hits))
	for _, hit := range hits {
		results = append(results, ClientResult{Client: hit.Client, Score: hit.Score})
	}
	return results, nil
}

// searchDocuments merges the lexical and semantic passes, keeping the higher
// score per document along with its snippet.
func (e *Engine) searchDocuments(ctx context.Context, query string, clientID *uuid.UUID) ([]Result, error) {
	lexical, err := e.store.SearchLexical(ctx, clientID, query, maxDocumentResults, e.config.LexicalThreshold)
	if err != nil {
		return nil, fmt.Errorf("lexical document search: %w", err)
	}

	queryVector, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	semantic, err := e.store.SearchVector(ctx, clientID, queryVector, maxDocumentResults, e.config.VectorThreshold)
	if err != nil {
		return nil, fmt.Errorf("vector document search: %w", err)
	}

	best := make(map[uuid.UUID]docstore.DocumentHit, len(lexical)+len(semantic))
	for _, hit := range lexical {
		best[hit.Document.ID] = hit
	}
	for _, hit := range semantic {
		if existing, ok := best[hit.Document.ID]; !ok || hit.Score > existing.Score {
			best[hit.Document.ID] = hit
		}
	}

	e.logger.Debug("document passes merged",
		zap.String("query", utils.Truncate(query, 64)),
		zap.Int("lexical", len(lexical)),
		zap.Int("semantic", len(semantic)),
		zap.Int("merged", len(best)))

	results := make([]Result, 0, len(best))
	for _, hit := range best {
		results = append(results, DocumentResult{Document: hit.Document, Score: hit.Score, Snippet: hit.Snippet})
	}
	return results, nil
}

func sortResults(results []Result) []Result {
	sort.Slice(results, func(i, j int) bool {
		if results[i].score() != results[j].score() {
			return results[i].score() > results[j].score()
		}
		return results[i].sortKey() < results[j].sortKey()
	})
	return results
}

func capResults(results []Result, limit int) []Result {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
