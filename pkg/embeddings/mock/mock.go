// Package mock implements a deterministic Embedder seeded by a stable hash
// of the input text. It lets the service run, and be tested, without an
// embedding service: identical text always maps to the identical vector.
package mock

import (
	"context"
	"hash/fnv"
	"math/rand"

	"github.com/neviswealth/search-service/pkg/embeddings"
)

// Embedder produces pseudo-random vectors with components in [-1, 1].
type Embedder struct {
	dimension int
}

func NewEmbedder(dimension int) *Embedder {
	if dimension < 1 {
		dimension = 1
	}
	return &Embedder{dimension: dimension}
}

// Embed derives the vector from an FNV-1a hash of text, so the output is a
// pure function of the input.
func (e *Embedder) Embed(_ context.Context, text string) ([]float32, error) {
	h := fnv.New64a()
	h.Write([]byte(text))

	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	vector := make([]float32, e.dimension)
	for i := range vector {
		vector[i] = rng.Float32()*2 - 1
	}
	return vector, nil
}

func (e *Embedder) Dimension() int {
	return e.dimension
}

func (e *Embedder) Close() error {
	return nil
}

var _ embeddings.Embedder = (*Embedder)(nil)
