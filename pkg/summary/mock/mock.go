// Package mock implements a Summarizer that returns a monotonically
// increasing call counter. The counter makes single-flight and write-once
// behavior observable in tests: every real invocation changes the output.
package mock

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/neviswealth/search-service/pkg/summary"
)

type Summarizer struct {
	counter atomic.Int64
}

func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

func (s *Summarizer) Summarize(_ context.Context, _ string) (string, error) {
	return strconv.FormatInt(s.counter.Add(1), 10), nil
}

// Calls reports how many times Summarize has run.
func (s *Summarizer) Calls() int64 {
	return s.counter.Load()
}

func (s *Summarizer) Close() error {
	return nil
}

var _ summary.Summarizer = (*Summarizer)(nil)
