package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/neviswealth/search-service/pkg/docstore"
)

// IngestDocumentRequest is the JSON body for POST /clients/:clientId/documents.
type IngestDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DocumentResponse is the JSON representation of a document. Content is only
// populated on the single-document read path.
type DocumentResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content,omitempty"`
	ContentHash string    `json:"content_hash,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDocumentResponse(doc docstore.Document, includeContent bool) DocumentResponse {
	resp := DocumentResponse{
		ID:        doc.ID.String(),
		ClientID:  doc.ClientID.String(),
		Title:     doc.Title,
		Summary:   doc.Summary,
		CreatedAt: doc.CreatedAt,
	}
	if includeContent {
		resp.Content = doc.Content
		resp.ContentHash = doc.ContentHash
	}
	return resp
}

// handleIngestDocument chunks, embeds, and persists a document for a client.
func (s *Server) handleIngestDocument(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("clientId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid client id"})
	}

	var req IngestDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	doc, err := s.documents.Ingest(c.Context(), clientID, req.Title, req.Content)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toDocumentResponse(doc, false))
}

// handleGetDocument returns a single document with content and summary.
// The summary is generated on first read.
func (s *Server) handleGetDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid document id"})
	}

	doc, err := s.documents.Get(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(toDocumentResponse(doc, true))
}

// handleListDocuments returns all documents without content.
func (s *Server) handleListDocuments(c *fiber.Ctx) error {
	all, err := s.documents.List(c.Context())
	if err != nil {
		return s.respondError(c, err)
	}

	responses := make([]DocumentResponse, 0, len(all))
	for _, doc := range all {
		responses = append(responses, toDocumentResponse(doc, false))
	}

	return c.JSON(map[string]any{
		"count":     len(responses),
		"documents": responses,
	})
}
