// Package search talks to the semantic search backend.
package search

import (
	"context"
	"errors"

	"github.com/abelbrown/bookfinder/internal/book"
	"github.com/abelbrown/bookfinder/internal/mood"
	"github.com/abelbrown/bookfinder/internal/query"
)

// DefaultTopK is the result count requested when none is configured.
const DefaultTopK = 50

// ErrBadStatus is returned for any non-2xx response. The status code is in
// the wrapping error's message only; callers must not branch on it.
var ErrBadStatus = errors.New("search: unexpected status")

// Request is the POST /api/search body. Mood is null when no mood is selected.
type Request struct {
	Query string  `json:"query"`
	Mood  *string `json:"mood"`
	TopK  int     `json:"top_k"`
}

// NewRequest builds the wire request for q.
func NewRequest(q query.Query, topK int) Request {
	if topK <= 0 {
		topK = DefaultTopK
	}
	r := Request{Query: q.Text, TopK: topK}
	if !q.Mood.IsNone() {
		m := string(q.Mood)
		r.Mood = &m
	}
	return r
}

// MoodFilter returns the request's mood, or mood.None.
func (r Request) MoodFilter() mood.Mood {
	if r.Mood == nil {
		return mood.None
	}
	return mood.Mood(*r.Mood)
}

// Searcher runs one search. Implementations must be safe for concurrent use.
type Searcher interface {
	Search(ctx context.Context, req Request) (*book.SearchResponse, error)
}

// SearcherFunc adapts a function to Searcher.
type SearcherFunc func(ctx context.Context, req Request) (*book.SearchResponse, error)

// Search calls f.
func (f SearcherFunc) Search(ctx context.Context, req Request) (*book.SearchResponse, error) {
	return f(ctx, req)
}
