// Package mood defines the closed vocabulary of mood tags used both as a
// search filter and as a fallback query seed.
package mood

import (
	"errors"
	"fmt"
	"strings"
)

// Mood is one of a fixed set of tags. The zero value means "no mood".
type Mood string

const (
	Joyful        Mood = "joyful"
	Sad           Mood = "sad"
	Suspenseful   Mood = "suspenseful"
	Romantic      Mood = "romantic"
	Dark          Mood = "dark"
	Adventurous   Mood = "adventurous"
	Funny         Mood = "funny"
	Inspirational Mood = "inspirational"
	Thriller      Mood = "thriller"
	Mystery       Mood = "mystery"
	Educational   Mood = "educational"
	Technical     Mood = "technical"
)

// None is the absent mood.
const None Mood = ""

// ErrUnknownMood is returned by Parse for strings outside the vocabulary.
var ErrUnknownMood = errors.New("unknown mood")

// all is in display order.
var all = []Mood{
	Joyful, Sad, Suspenseful, Romantic,
	Dark, Adventurous, Funny, Inspirational,
	Thriller, Mystery, Educational, Technical,
}

// All returns every mood in display order. The slice is a copy.
func All() []Mood {
	out := make([]Mood, len(all))
	copy(out, all)
	return out
}

// Valid reports whether m is a member of the vocabulary.
// None is not valid.
func (m Mood) Valid() bool {
	for _, x := range all {
		if x == m {
			return true
		}
	}
	return false
}

// IsNone reports whether no mood is selected.
func (m Mood) IsNone() bool {
	return m == None
}

func (m Mood) String() string {
	return string(m)
}

// Parse converts user input to a Mood. Matching is case-insensitive and
// ignores surrounding whitespace. An empty string yields None.
func Parse(s string) (Mood, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return None, nil
	}
	m := Mood(s)
	if !m.Valid() {
		return None, fmt.Errorf("%w: %q", ErrUnknownMood, s)
	}
	return m, nil
}

// Next returns the mood after m in display order, cycling through None.
// Used by selectors that step through "All Moods" and each tag.
func Next(m Mood) Mood {
	if m == None {
		return all[0]
	}
	for i, x := range all {
		if x == m && i+1 < len(all) {
			return all[i+1]
		}
	}
	return None
}

// Prev is the reverse of Next.
func Prev(m Mood) Mood {
	if m == None {
		return all[len(all)-1]
	}
	for i, x := range all {
		if x == m && i > 0 {
			return all[i-1]
		}
	}
	return None
}

// Top picks the highest-weighted known mood from a result's mood scores.
// Ties go to the later mood in display order. Returns false when no
// known mood has a positive weight.
func Top(scores map[string]float64) (Mood, bool) {
	best := None
	bestScore := 0.0
	for _, m := range all {
		s, ok := scores[string(m)]
		if !ok || s <= 0 {
			continue
		}
		if best == None || s >= bestScore {
			best = m
			bestScore = s
		}
	}
	return best, best != None
}
