package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/neviswealth/search-service/pkg/search"
)

// SearchResultResponse is one ranked hit. Type is "client" or "document";
// exactly one of Client and Document is set.
type SearchResultResponse struct {
	Type     string            `json:"type"`
	Score    float64           `json:"score"`
	Client   *ClientResponse   `json:"client,omitempty"`
	Document *DocumentResponse `json:"document,omitempty"`
	Snippet  string            `json:"snippet,omitempty"`
}

// SearchResponse is the JSON body for GET /search.
type SearchResponse struct {
	Query   string                 `json:"query"`
	Count   int                    `json:"count"`
	Results []SearchResultResponse `json:"results"`
}

// handleSearch handles GET /search requests.
// Query parameters:
//   - q (required): the search query text
//   - clientId (optional): restrict document hits to one client
func (s *Server) handleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "q parameter is required"})
	}

	var clientID *uuid.UUID
	if raw := c.Query("clientId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "clientId must be a valid UUID"})
		}
		clientID = &parsed
	}

	results, err := s.engine.Search(c.Context(), query, clientID)
	if err != nil {
		return s.respondError(c, err)
	}

	responses := make([]SearchResultResponse, 0, len(results))
	for _, result := range results {
		switch hit := result.(type) {
		case search.ClientResult:
			client := toClientResponse(hit.Client)
			responses = append(responses, SearchResultResponse{
				Type:   "client",
				Score:  hit.Score,
				Client: &client,
			})
		case search.DocumentResult:
			doc := toDocumentResponse(hit.Document, false)
			responses = append(responses, SearchResultResponse{
				Type:     "document",
				Score:    hit.Score,
				Document: &doc,
				Snippet:  hit.Snippet,
			})
		}
	}

	return c.JSON(SearchResponse{
		Query:   query,
		Count:   len(responses),
		Results: responses,
	})
}
