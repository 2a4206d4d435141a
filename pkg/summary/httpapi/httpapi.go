// Package httpapi implements pkg/summary's Summarizer against the summary
// service's POST /summarize endpoint.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/neviswealth/search-service/pkg/summary"
)

// DefaultBaseURL is the default summary service URL.
const DefaultBaseURL = "http://localhost:8000"

const (
	defaultTimeout = 120 * time.Second

	// Token bounds sent with every request; the summary model is tuned
	// for short back-office abstracts.
	minTokens = 32
	maxTokens = 80
)

// Summarizer calls an external summary service over HTTP.
type Summarizer struct {
	baseURL    string
	apiToken   string
	prompt     string
	httpClient *http.Client
}

// Config holds configuration for the HTTP summarizer.
type Config struct {
	// BaseURL is the summary service URL. Defaults to DefaultBaseURL.
	BaseURL string

	// APIToken, when set, is sent as a bearer token.
	APIToken string

	// Prompt optionally wraps the text before sending. It must contain a
	// single %s slot for the document text.
	Prompt string
}

type summarizeRequest struct {
	Text      string `json:"text"`
	MinTokens int    `json:"min_tokens"`
	MaxTokens int    `json:"max_tokens"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

func NewSummarizer(cfg Config) *Summarizer {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Summarizer{
		baseURL:  baseURL,
		apiToken: cfg.APIToken,
		prompt:   cfg.Prompt,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.prompt != "" {
		text = fmt.Sprintf(s.prompt, text)
	}

	body, err := json.Marshal(summarizeRequest{Text: text, MinTokens: minTokens, MaxTokens: maxTokens})
	if err != nil {
		return "", summary.NewError(summary.KindCallFailed, "marshaling request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/summarize", bytes.NewReader(body))
	if err != nil {
		return "", summary.NewError(summary.KindCallFailed, "creating request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", summary.NewError(summary.KindCallFailed, "calling summary service", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return "", summary.NewError(summary.KindInvalidRequest,
			"summary service rejected the request with status "+strconv.Itoa(resp.StatusCode), nil)
	case resp.StatusCode >= 500:
		return "", summary.NewError(summary.KindServerError,
			"summary service failed with status "+strconv.Itoa(resp.StatusCode), nil)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", summary.NewError(summary.KindCallFailed,
			"summary service returned status "+strconv.Itoa(resp.StatusCode), nil)
	}

	var decoded summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", summary.NewError(summary.KindCallFailed, "decoding response", err)
	}

	if strings.TrimSpace(decoded.Summary) == "" {
		return "", summary.NewError(summary.KindEmptyResponse, "summary service returned no summary", nil)
	}

	return decoded.Summary, nil
}

func (s *Summarizer) Close() error {
	s.httpClient.CloseIdleConnections()
	return nil
}

var _ summary.Summarizer = (*Summarizer)(nil)
