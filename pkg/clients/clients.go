// Package clients onboards and reads client profiles. Profiles carry the
// denormalized email domain and domain slug that client search matches on.
package clients

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/neviswealth/search-service/pkg/docstore"
	"github.com/neviswealth/search-service/pkg/utils"
)

// CreateRequest carries the fields needed to onboard a client.
type CreateRequest struct {
	Email              string
	FirstName          string
	LastName           string
	CountryOfResidence string
}

// Service implements client onboarding and lookup on top of a ContentStore.
type Service struct {
	store  docstore.ContentStore
	logger *zap.Logger
}

func NewService(store docstore.ContentStore, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Create validates and persists a new client. The email is normalized to
// lower case, and the domain plus its slug are derived before the insert.
func (s *Service) Create(ctx context.Context, req CreateRequest) (docstore.Client, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	if email == "" {
		return docstore.Client{}, &docstore.ValidationError{Detail: "email is required"}
	}
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return docstore.Client{}, &docstore.ValidationError{Detail: "email must contain a domain"}
	}
	if firstName == "" || lastName == "" {
		return docstore.Client{}, &docstore.ValidationError{Detail: "first and last name are required"}
	}

	exists, err := s.store.ClientEmailExists(ctx, email)
	if err != nil {
		return docstore.Client{}, fmt.Errorf("checking for existing email: %w", err)
	}
	if exists {
		return docstore.Client{}, &docstore.ConflictError{Entity: "client", Detail: "email already exists"}
	}

	client := docstore.Client{
		Email:              email,
		EmailDomain:        domain,
		EmailDomainSlug:    utils.Slugify(domain),
		FirstName:          firstName,
		LastName:           lastName,
		FullName:           strings.ToLower(firstName + " " + lastName),
		CountryOfResidence: strings.TrimSpace(req.CountryOfResidence),
	}

	saved, err := s.store.InsertClient(ctx, client)
	if err != nil {
		return docstore.Client{}, err
	}

	s.logger.Info("client created",
		zap.String("client_id", saved.ID.String()),
		zap.String("email_domain", saved.EmailDomain))
	return saved, nil
}

// Get returns a single client by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (docstore.Client, error) {
	return s.store.FindClientByID(ctx, id)
}

// List returns all clients.
func (s *Service) List(ctx context.Context) ([]docstore.Client, error) {
	return s.store.ListClients(ctx)
}
