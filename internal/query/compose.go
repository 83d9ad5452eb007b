// Package query turns the user's search intent into the single query string
// sent to the backend.
package query

import (
	"strings"

	"github.com/abelbrown/bookfinder/internal/mood"
)

// Intent is what the user currently wants: committed text and an optional mood.
// Text is kept as typed; blankness is judged on the trimmed value.
type Intent struct {
	Text string
	Mood mood.Mood
}

// Query is the effective request derived from an Intent.
// Mood travels alongside as a filter and is never folded into Text
// except through the fallback phrase.
type Query struct {
	Text string
	Mood mood.Mood
}

// FallbackPhrase is the query used when only a mood is selected.
func FallbackPhrase(m mood.Mood) string {
	return "books about " + string(m)
}

// Compose derives the effective query.
//
// Non-blank text wins and is sent exactly as typed, with the mood as filter.
// Otherwise a selected mood yields FallbackPhrase. With neither, the
// intent is not effective and ok is false: callers clear their results
// and skip the request.
func Compose(in Intent) (q Query, ok bool) {
	if strings.TrimSpace(in.Text) != "" {
		return Query{Text: in.Text, Mood: in.Mood}, true
	}
	if !in.Mood.IsNone() {
		return Query{Text: FallbackPhrase(in.Mood), Mood: in.Mood}, true
	}
	return Query{}, false
}
