package book

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKeepsLastValueAtFirstPosition(t *testing.T) {
	in := []Book{
		{ISBN13: "1", Title: "Dune", Authors: "first"},
		{ISBN13: "2", Title: "Emma"},
		{ISBN13: "1", Title: "Dune", Authors: "last"},
		{ISBN13: "3", Title: "Ulysses"},
	}

	got := Normalize(in)

	require.Len(t, got, 3)
	assert.Equal(t, "Dune", got[0].Title)
	assert.Equal(t, "last", got[0].Authors)
	assert.Equal(t, "Emma", got[1].Title)
	assert.Equal(t, "Ulysses", got[2].Title)

	// Input untouched.
	assert.Equal(t, "first", in[0].Authors)
	assert.Len(t, in, 4)
}

func TestNormalizeSameISBNDifferentTitles(t *testing.T) {
	in := []Book{
		{ISBN13: "978", Title: "Collected Poems"},
		{ISBN13: "978", Title: "Collected Poems, Vol. 2"},
	}
	assert.Len(t, Normalize(in), 2)
}

func TestNormalizeKeyIsCaseSensitive(t *testing.T) {
	in := []Book{
		{ISBN13: "1", Title: "dune"},
		{ISBN13: "1", Title: "Dune"},
	}
	assert.Len(t, Normalize(in), 2)
}

func TestNormalizeUndelimitedKeyCollision(t *testing.T) {
	// "12"+"3x" and "1"+"23x" share a key. This is accepted behavior.
	in := []Book{
		{ISBN13: "12", Title: "3x"},
		{ISBN13: "1", Title: "23x"},
	}
	got := Normalize(in)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ISBN13)
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := [][]Book{
		nil,
		{},
		{{ISBN13: "1", Title: "A"}},
		{{ISBN13: "1", Title: "A"}, {ISBN13: "1", Title: "A", Authors: "x"}, {ISBN13: "2", Title: "B"}, {ISBN13: "2", Title: "B"}},
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
		assert.NotNil(t, once)
	}
}

func TestMatchPercent(t *testing.T) {
	tests := []struct {
		name   string
		in     *float64
		want   int
		wantOK bool
	}{
		{"absent", nil, 0, false},
		{"zero distance", Float(0), 100, true},
		{"max distance", Float(2), 0, true},
		{"beyond range clamps to zero", Float(3.5), 0, true},
		{"midpoint", Float(1), 50, true},
		{"rounds", Float(0.255), 87, true},
		{"negative distance exceeds 100", Float(-0.4), 120, true},
		{"nan", Float(math.NaN()), 0, false},
		{"inf", Float(math.Inf(1)), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchPercent(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMatch(t *testing.T) {
	assert.Equal(t, "", FormatMatch(nil))
	assert.Equal(t, "100% Match", FormatMatch(Float(0)))
	assert.Equal(t, "0% Match", FormatMatch(Float(2.2)))
}

func TestDisplayAuthors(t *testing.T) {
	assert.Equal(t, "Unknown", Book{}.DisplayAuthors())
	assert.Equal(t, "Unknown", Book{Authors: "  "}.DisplayAuthors())
	assert.Equal(t, "Frank Herbert", Book{Authors: "Frank Herbert"}.DisplayAuthors())
}

func TestDecodeBackendPayload(t *testing.T) {
	// Shape produced by the search backend, including nulls for optional fields.
	payload := `{
		"results": [
			{"isbn13": "9780441013593", "title": "Dune", "authors": null,
			 "description": "Desert planet.", "thumbnail": "", "categories": "Fiction",
			 "published_year": 2005.0, "average_rating": 4.25,
			 "moods": {"adventurous": 0.6, "dark": 0.3}, "similarity_score": 0.42},
			{"isbn13": null, "title": "Untitled", "similarity_score": null}
		],
		"total": 2,
		"query_time": 0.031
	}`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 2, resp.Total)

	dune := resp.Results[0]
	assert.Equal(t, 2005, dune.Year())
	assert.Equal(t, "Unknown", dune.DisplayAuthors())
	require.NotNil(t, dune.SimilarityScore)
	assert.InDelta(t, 0.42, *dune.SimilarityScore, 1e-9)

	untitled := resp.Results[1]
	assert.Equal(t, "", untitled.ISBN13)
	assert.Nil(t, untitled.SimilarityScore)
	assert.Equal(t, 0, untitled.Year())
}
