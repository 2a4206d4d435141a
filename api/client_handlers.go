package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/neviswealth/search-service/pkg/clients"
	"github.com/neviswealth/search-service/pkg/docstore"
)

// CreateClientRequest is the JSON body for POST /clients.
type CreateClientRequest struct {
	Email              string `json:"email"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	CountryOfResidence string `json:"country_of_residence"`
}

// ClientResponse is the JSON representation of a client profile.
type ClientResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	EmailDomain        string    `json:"email_domain"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	CountryOfResidence string    `json:"country_of_residence,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func toClientResponse(client docstore.Client) ClientResponse {
	return ClientResponse{
		ID:                 client.ID.String(),
		Email:              client.Email,
		EmailDomain:        client.EmailDomain,
		FirstName:          client.FirstName,
		LastName:           client.LastName,
		CountryOfResidence: client.CountryOfResidence,
		CreatedAt:          client.CreatedAt,
	}
}

// handleCreateClient onboards a new client profile.
func (s *Server) handleCreateClient(c *fiber.Ctx) error {
	var req CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	client, err := s.clients.Create(c.Context(), clients.CreateRequest{
		Email:              req.Email,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		CountryOfResidence: req.CountryOfResidence,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toClientResponse(client))
}

// handleGetClient returns a single client by ID.
func (s *Server) handleGetClient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid client id"})
	}

	client, err := s.clients.Get(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(toClientResponse(client))
}

// handleListClients returns all clients.
func (s *Server) handleListClients(c *fiber.Ctx) error {
	all, err := s.clients.List(c.Context())
	if err != nil {
		return s.respondError(c, err)
	}

	responses := make([]ClientResponse, 0, len(all))
	for _, client := range all {
		responses = append(responses, toClientResponse(client))
	}

	return c.JSON(map[string]any{
		"count":   len(responses),
		"clients": responses,
	})
}
