// file: internal/matcher/fuzzy.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package matcher

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggestion is a candidate that nearly matches a query.
type Suggestion struct {
	Text     string
	Distance int // edit distance; lower is closer
}

// maxTypoDistance is how many edits a query may be away from a candidate
// before it stops being offered as a suggestion.
func maxTypoDistance(query string) int {
	return max(1, utf8.RuneCountInString(query)/3)
}

// Suggest returns up to limit candidates that the query probably meant.
// A candidate qualifies when the query is a fuzzy subsequence of it
// ("hrry pttr" for "Harry Potter") or within a few typos of it.
// Duplicates are collapsed and results are ordered closest first. It
// returns nil when nothing qualifies.
func Suggest(query string, candidates []string, limit int) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	best := make(map[string]int)
	record := func(text string, distance int) {
		if d, ok := best[text]; !ok || distance < d {
			best[text] = distance
		}
	}

	for _, rank := range fuzzy.RankFindNormalizedFold(query, candidates) {
		record(rank.Target, rank.Distance)
	}

	folded := Fold(query)
	limitDist := maxTypoDistance(query)
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(folded, Fold(c)); d <= limitDist {
			record(c, d)
		}
	}

	if len(best) == 0 {
		return nil
	}
	out := make([]Suggestion, 0, len(best))
	for text, d := range best {
		out = append(out, Suggestion{Text: text, Distance: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Text < out[j].Text
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
