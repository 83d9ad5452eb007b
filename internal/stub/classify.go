package stub

import (
	"strings"

	"github.com/abelbrown/bookfinder/internal/mood"
)

// Keyword hits are substring matches on the lowercased description.
const (
	keywordWeight = 0.3
	scoreCap      = 0.95
	capAbove      = 0.9
)

var moodKeywords = map[mood.Mood][]string{
	mood.Joyful:        {"joy", "happy", "happiness", "smile", "laugh", "fun", "delight", "cheerful", "light", "bright"},
	mood.Sad:           {"sad", "grief", "sorrow", "tear", "cry", "loss", "death", "mourn", "tragedy", "broken"},
	mood.Suspenseful:   {"suspense", "secret", "hide", "hiding", "mystery", "threat", "tension", "wait", "fear"},
	mood.Romantic:      {"love", "romance", "heart", "kiss", "marriage", "passion", "relationship", "lover", "couple"},
	mood.Dark:          {"dark", "evil", "kill", "murder", "blood", "horror", "death", "grim", "shadow", "violence"},
	mood.Adventurous:   {"adventure", "journey", "quest", "travel", "explore", "wild", "expedition", "hidden", "discovery"},
	mood.Funny:         {"funny", "humor", "comedy", "laugh", "joke", "hilarious", "wit", "sarcasm", "amusing"},
	mood.Inspirational: {"inspire", "hope", "faith", "dream", "life", "wisdom", "courage", "strength", "soul", "god"},
	mood.Thriller:      {"thriller", "killer", "suspense", "danger", "psychological", "crime", "hunt", "chase"},
	mood.Mystery:       {"mystery", "detective", "clue", "solve", "crime", "strange", "unexplained", "hidden", "secret"},
	mood.Educational:   {"learn", "guide", "textbook", "study", "history", "science", "academic", "theory", "introduction"},
	mood.Technical:     {"software", "code", "programming", "data", "computer", "algorithm", "system", "guide", "engineering"},
}

// Classify scores text against every mood: +0.3 per keyword found, and
// anything above 0.9 becomes 0.95. Every mood gets an entry, zero included.
func Classify(text string) map[string]float64 {
	lower := strings.ToLower(text)
	scores := make(map[string]float64, len(moodKeywords))
	for _, m := range mood.All() {
		score := 0.0
		for _, kw := range moodKeywords[m] {
			if strings.Contains(lower, kw) {
				score += keywordWeight
			}
		}
		if score > capAbove {
			score = scoreCap
		}
		scores[string(m)] = score
	}
	return scores
}
