package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/neviswealth/search-service/pkg/docstore"
	"github.com/neviswealth/search-service/pkg/documents"
	"github.com/neviswealth/search-service/pkg/embeddings"
	"github.com/neviswealth/search-service/pkg/summary"
)

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps the service error taxonomy onto HTTP status codes.
// Provider failures surface as 502 so callers can tell a broken upstream
// model apart from a broken request.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	var (
		validationErr *docstore.ValidationError
		notFoundErr   *docstore.NotFoundError
		conflictErr   *docstore.ConflictError
		ingestionErr  *documents.IngestionError
		embeddingErr  *embeddings.Error
		summaryErr    *summary.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: validationErr.Error()})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(errorResponse{Error: conflictErr.Error()})
	case errors.As(err, &embeddingErr), errors.As(err, &summaryErr), errors.As(err, &ingestionErr):
		s.logger.Error("provider failure", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(errorResponse{Error: err.Error()})
	default:
		s.logger.Error("request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal server error"})
	}
}
