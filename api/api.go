package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/neviswealth/search-service/pkg/clients"
	"github.com/neviswealth/search-service/pkg/documents"
	"github.com/neviswealth/search-service/pkg/search"
)

// Server is the HTTP API server for the search service.
type Server struct {
	config    Config
	clients   *clients.Service
	documents *documents.Service
	engine    *search.Engine
	logger    *zap.Logger
	app       *fiber.App
}

// NewServer creates a new API server. The services are injected so the
// same instances can be shared with other entry points.
func NewServer(config Config, clientsSvc *clients.Service, documentsSvc *documents.Service, engine *search.Engine, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:    config,
		clients:   clientsSvc,
		documents: documentsSvc,
		engine:    engine,
		logger:    logger,
		app:       app,
	}

	app.Get("/ping", s.handlePing)
	app.Post("/clients", s.handleCreateClient)
	app.Get("/clients", s.handleListClients)
	app.Get("/clients/:id", s.handleGetClient)
	app.Post("/clients/:clientId/documents", s.handleIngestDocument)
	app.Get("/documents", s.handleListDocuments)
	app.Get("/documents/:id", s.handleGetDocument)
	app.Get("/search", s.handleSearch)

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}
