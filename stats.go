package moodlex

import (
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// WordCount pairs a word with its corpus frequency.
type WordCount struct {
	Word  string
	Count int
}

// TopWords returns the n most frequent content words across reviews, stop
// words removed. Ties break alphabetically so output is stable.
func TopWords(reviews []Review, n int) []WordCount {
	counts := make(map[string]int)
	for _, rev := range reviews {
		cleaned := stopwords.CleanString(rev.Text, "en", false)
		for _, w := range strings.Fields(cleaned) {
			if len(w) <= 1 {
				continue
			}
			counts[w]++
		}
	}

	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}

// LabelBalance counts reviews per ground-truth label.
func LabelBalance(reviews []Review) map[Label]int {
	balance := make(map[Label]int)
	for _, rev := range reviews {
		balance[rev.Label]++
	}
	return balance
}
