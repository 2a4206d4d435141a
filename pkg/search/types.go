package search

import "github.com/neviswealth/search-service/pkg/docstore"

// Result is a ranked search hit. It is a sealed interface with exactly two
// implementations, ClientResult and DocumentResult.
type Result interface {
	isResult()
	score() float64
	sortKey() string
}

// ClientResult is a client profile hit.
type ClientResult struct {
	Client docstore.Client
	Score  float64
}

func (r ClientResult) isResult()       {}
func (r ClientResult) score() float64  { return r.Score }
func (r ClientResult) sortKey() string { return r.Client.ID.String() }

// DocumentResult is a document hit with the best matching chunk as snippet.
type DocumentResult struct {
	Document docstore.Document
	Score    float64
	Snippet  string
}

func (r DocumentResult) isResult()       {}
func (r DocumentResult) score() float64  { return r.Score }
func (r DocumentResult) sortKey() string { return r.Document.ID.String() }
