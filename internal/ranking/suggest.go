package ranking

import (
	"sort"

	"github.com/antzucaro/matchr"
	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
)

// minSuggestionScore is the Jaro-Winkler similarity below which no suggestion is made.
const minSuggestionScore = 0.85

// Suggestion pairs a statistics name that found no directory entry with the
// closest directory key. It is only reported to the operator.
type Suggestion struct {
	Name      string
	Candidate string
	Score     float64
}

// SuggestMatches finds, for each unmatched name, the most similar directory key.
// Names without a candidate above minSuggestionScore are omitted.
func SuggestMatches(unmatched []string, dir domain.Directory) []Suggestion {
	if len(unmatched) == 0 || len(dir) == 0 {
		return nil
	}

	keys := make([]string, 0, len(dir))
	for key := range dir {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var suggestions []Suggestion
	for _, name := range unmatched {
		lower := domain.NameKey(name)
		var best string
		var bestScore float64
		for _, key := range keys {
			score := matchr.JaroWinkler(lower, key, false)
			if score > bestScore {
				best = key
				bestScore = score
			}
		}
		if bestScore >= minSuggestionScore {
			suggestions = append(suggestions, Suggestion{Name: name, Candidate: best, Score: bestScore})
		}
	}
	return suggestions
}
