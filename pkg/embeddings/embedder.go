// Package embeddings provides the text embedding capability used for
// semantic document search. Backends live in sub-packages and are selected
// at startup by configuration.
package embeddings

import "context"

// Embedder converts text into a fixed-dimension vector embedding.
type Embedder interface {
	// Embed converts text into a vector embedding. A failed call returns
	// an *Error carrying the failure Kind.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimension reports the length of vectors produced by this embedder.
	Dimension() int

	// Close releases any resources held by the embedder.
	Close() error
}
