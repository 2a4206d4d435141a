// Package httpapi implements pkg/embeddings' Embedder against the
// embeddings-calculation service's POST /embed endpoint.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/neviswealth/search-service/pkg/embeddings"
)

// DefaultBaseURL is the default embeddings-calculation service URL.
const DefaultBaseURL = "http://localhost:8000"

const defaultTimeout = 60 * time.Second

// Embedder calls an external embedding service over HTTP.
type Embedder struct {
	baseURL    string
	apiToken   string
	dimension  int
	httpClient *http.Client
}

// Config holds configuration for the HTTP embedder.
type Config struct {
	// BaseURL is the embedding service URL. Defaults to DefaultBaseURL.
	BaseURL string

	// APIToken, when set, is sent as a bearer token.
	APIToken string

	// Dimension is the vector length the service is deployed with.
	Dimension int
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

func NewEmbedder(cfg Config) *Embedder {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Embedder{
		baseURL:   baseURL,
		apiToken:  cfg.APIToken,
		dimension: cfg.Dimension,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Embed posts text to the embedding service and maps every failure mode to
// a typed embeddings.Error: transport problems to KindCallFailed, 4xx to
// KindInvalidRequest, 5xx to KindServerError, an undecodable body to
// KindInvalidResponseFormat, and a null or zero-length vector to
// KindEmptyResponse.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embedRequest{Text: text})
	if err != nil {
		return nil, embeddings.NewError(embeddings.KindCallFailed, "marshaling request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embed", bytes.NewReader(body))
	if err != nil {
		return nil, embeddings.NewError(embeddings.KindCallFailed, "creating request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiToken)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, embeddings.NewError(embeddings.KindCallFailed, "calling embedding service", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, embeddings.NewError(embeddings.KindInvalidRequest,
			"embedding service rejected the request with status "+strconv.Itoa(resp.StatusCode), nil)
	case resp.StatusCode >= 500:
		return nil, embeddings.NewError(embeddings.KindServerError,
			"embedding service failed with status "+strconv.Itoa(resp.StatusCode), nil)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, embeddings.NewError(embeddings.KindCallFailed,
			"embedding service returned status "+strconv.Itoa(resp.StatusCode), nil)
	}

	var decoded embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, embeddings.NewError(embeddings.KindInvalidResponseFormat, "decoding response", err)
	}

	if len(decoded.Embedding) == 0 {
		return nil, embeddings.NewError(embeddings.KindEmptyResponse, "embedding service returned no vector", nil)
	}

	return decoded.Embedding, nil
}

func (e *Embedder) Dimension() int {
	return e.dimension
}

func (e *Embedder) Close() error {
	e.httpClient.CloseIdleConnections()
	return nil
}

var _ embeddings.Embedder = (*Embedder)(nil)
