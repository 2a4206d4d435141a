// Package summary provides the document summarization capability. Like
// pkg/embeddings it exposes one interface with a mock and an HTTP backend.
package summary

import "context"

// Summarizer condenses text into a short summary string.
type Summarizer interface {
	// Summarize returns a summary of text. A failed call returns an
	// *Error carrying the failure Kind.
	Summarize(ctx context.Context, text string) (string, error)

	// Close releases any resources held by the summarizer.
	Close() error
}
