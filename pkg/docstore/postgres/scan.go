package postgres

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/neviswealth/search-service/pkg/docstore"
)

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (docstore.Client, error) {
	var (
		client docstore.Client
		id     string
	)
	err := row.Scan(&id, &client.Email, &client.EmailDomain, &client.EmailDomainSlug,
		&client.FirstName, &client.LastName, &client.FullName,
		&client.CountryOfResidence, &client.CreatedAt)
	if err != nil {
		return docstore.Client{}, err
	}
	if client.ID, err = uuid.Parse(id); err != nil {
		return docstore.Client{}, fmt.Errorf("parsing client id: %w", err)
	}
	return client, nil
}

func scanClientHits(rows *sql.Rows) ([]docstore.ClientHit, error) {
	var hits []docstore.ClientHit
	for rows.Next() {
		var (
			client docstore.Client
			id     string
			score  float64
		)
		err := rows.Scan(&id, &client.Email, &client.EmailDomain, &client.EmailDomainSlug,
			&client.FirstName, &client.LastName, &client.FullName,
			&client.CountryOfResidence, &client.CreatedAt, &score)
		if err != nil {
			return nil, fmt.Errorf("scanning client hit: %w", err)
		}
		if client.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing client id: %w", err)
		}
		hits = append(hits, docstore.ClientHit{Client: client, Score: score})
	}
	return hits, rows.Err()
}

func scanDocumentHits(rows *sql.Rows) ([]docstore.DocumentHit, error) {
	var hits []docstore.DocumentHit
	for rows.Next() {
		var (
			doc             docstore.Document
			docID, clientID string
			snippet         string
			score           float64
		)
		err := rows.Scan(&docID, &clientID, &doc.Title, &doc.CreatedAt, &snippet, &score)
		if err != nil {
			return nil, fmt.Errorf("scanning document hit: %w", err)
		}
		if doc.ID, err = uuid.Parse(docID); err != nil {
			return nil, fmt.Errorf("parsing document id: %w", err)
		}
		if doc.ClientID, err = uuid.Parse(clientID); err != nil {
			return nil, fmt.Errorf("parsing client id: %w", err)
		}
		hits = append(hits, docstore.DocumentHit{Document: doc, Score: score, Snippet: snippet})
	}
	return hits, rows.Err()
}

// formatVector renders an embedding as a pgvector literal, e.g. "[0.1,0.2,0.3]".
func formatVector(embedding []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range embedding {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}
