package query

import (
	"strings"
	"testing"

	"github.com/abelbrown/bookfinder/internal/mood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeNotEffective(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n", "   "} {
		_, ok := Compose(Intent{Text: text})
		assert.False(t, ok, "Compose(%q) should not be effective", text)
	}
}

func TestComposeTextWinsRegardlessOfMood(t *testing.T) {
	texts := []string{"dragons", "dragons and magic", "a", "Ünïcode 📚"}
	moods := append([]mood.Mood{mood.None}, mood.All()...)

	for _, text := range texts {
		for _, m := range moods {
			q, ok := Compose(Intent{Text: text, Mood: m})
			require.True(t, ok)
			assert.Equal(t, text, q.Text)
			assert.Equal(t, m, q.Mood, "mood passes through as filter")
		}
	}
}

func TestComposeKeepsSurroundingWhitespace(t *testing.T) {
	q, ok := Compose(Intent{Text: "  space opera \n", Mood: mood.Dark})
	require.True(t, ok)
	assert.Equal(t, "  space opera \n", q.Text)
	assert.Equal(t, mood.Dark, q.Mood)
}

func TestComposeMoodFallback(t *testing.T) {
	for _, m := range mood.All() {
		q, ok := Compose(Intent{Text: "  ", Mood: m})
		require.True(t, ok)
		assert.True(t, strings.Contains(q.Text, string(m)), "fallback %q should mention %q", q.Text, m)
		assert.Equal(t, m, q.Mood)
	}

	q, _ := Compose(Intent{Mood: mood.Sad})
	assert.Equal(t, "books about sad", q.Text)
}
