// Package book holds the search result model and the pure transformations
// applied to a response before it is rendered.
package book

import "strings"

// Book is one ranked search result as returned by the backend.
// Optional numeric fields are pointers so "absent" survives decoding.
type Book struct {
	ISBN13          string             `json:"isbn13"`
	Title           string             `json:"title"`
	Authors         string             `json:"authors,omitempty"`
	Description     string             `json:"description,omitempty"`
	Thumbnail       string             `json:"thumbnail,omitempty"`
	Categories      string             `json:"categories,omitempty"`
	PublishedYear   *float64           `json:"published_year,omitempty"`
	AverageRating   *float64           `json:"average_rating,omitempty"`
	Moods           map[string]float64 `json:"moods,omitempty"`
	SimilarityScore *float64           `json:"similarity_score,omitempty"` // distance, lower is better
}

// SearchResponse is the body of a successful POST /api/search.
type SearchResponse struct {
	Results   []Book  `json:"results"`
	Total     int     `json:"total"`
	QueryTime float64 `json:"query_time"`
}

// Key is the identity used for de-duplication and stable rendering:
// ISBN and title concatenated with no separator.
func (b Book) Key() string {
	return b.ISBN13 + b.Title
}

// DisplayAuthors returns the author line, or "Unknown" when blank.
func (b Book) DisplayAuthors() string {
	if strings.TrimSpace(b.Authors) == "" {
		return "Unknown"
	}
	return b.Authors
}

// Year returns the published year as an int, or 0 when unknown.
func (b Book) Year() int {
	if b.PublishedYear == nil || *b.PublishedYear <= 0 {
		return 0
	}
	return int(*b.PublishedYear)
}

// Float is a helper for building optional fields.
func Float(v float64) *float64 {
	return &v
}
