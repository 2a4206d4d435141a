// Package test provides hand-rolled fakes for provider interfaces, used by
// service and handler tests.
package test

import (
	"context"
	"sync/atomic"

	"github.com/neviswealth/search-service/pkg/embeddings"
	"github.com/neviswealth/search-service/pkg/summary"
)

// FakeEmbedder returns canned vectors per input text. Texts without a canned
// vector get the Default vector, unless they match FailOn, which returns Err.
type FakeEmbedder struct {
	Embeddings map[string][]float32
	Default    []float32
	FailOn     string
	Err        error

	calls atomic.Int64
}

func (f *FakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls.Add(1)
	if f.Err != nil && (f.FailOn == "" || f.FailOn == text) {
		return nil, f.Err
	}
	if vector, ok := f.Embeddings[text]; ok {
		return vector, nil
	}
	if f.Default != nil {
		return f.Default, nil
	}
	return make([]float32, 4), nil
}

func (f *FakeEmbedder) Dimension() int {
	if f.Default != nil {
		return len(f.Default)
	}
	return 4
}

func (f *FakeEmbedder) Close() error { return nil }

// Calls reports how many times Embed was invoked.
func (f *FakeEmbedder) Calls() int64 { return f.calls.Load() }

// FakeSummarizer returns a fixed summary, or Err when set. Started and
// Release let a test hold a call open: Started receives once a call has
// begun, and the call then blocks until Release is closed.
type FakeSummarizer struct {
	Summary string
	Err     error
	Started chan struct{}
	Release chan struct{}

	calls atomic.Int64
}

func (f *FakeSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	f.calls.Add(1)
	if f.Started != nil {
		select {
		case f.Started <- struct{}{}:
		default:
		}
	}
	if f.Release != nil {
		<-f.Release
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Summary, nil
}

func (f *FakeSummarizer) Close() error { return nil }

// Calls reports how many times Summarize was invoked.
func (f *FakeSummarizer) Calls() int64 { return f.calls.Load() }

var (
	_ embeddings.Embedder = (*FakeEmbedder)(nil)
	_ summary.Summarizer  = (*FakeSummarizer)(nil)
)
