package moodlex

import (
	"strings"

	"gonum.org/v1/gonum/floats"
)

// AFINNScorer scores text by summing the integer valences of every word
// found in an AFINN-style lexicon. No context rules apply; the score is the
// raw sum, so longer texts can range well beyond [-1, 1].
type AFINNScorer struct {
	lexicon   *Lexicon
	tokenizer Tokenizer
}

// NewAFINNScorer creates an AFINN scorer. A nil lexicon selects the bundled
// word list.
func NewAFINNScorer(lx *Lexicon) *AFINNScorer {
	if lx == nil {
		lx = AFINNLexicon()
	}
	return &AFINNScorer{
		lexicon:   lx,
		tokenizer: NewWordTokenizer(),
	}
}

// Name identifies the scorer in reports and CLI flags.
func (s *AFINNScorer) Name() string {
	return "afinn"
}

// Score sums the valence of each lexicon word in text.
func (s *AFINNScorer) Score(text string) Score {
	tokens := s.tokenizer.Tokenize(text)

	var valences []float64
	for _, tok := range tokens {
		word := strings.ToLower(tok.Text)
		if !s.lexicon.HasWord(word) {
			continue
		}
		valences = append(valences, s.lexicon.Valence(word))
	}

	return Score{
		Value: floats.Sum(valences),
		Hits:  len(valences),
	}
}

// Contributions reports the per-word valences behind a score, in text order.
func (s *AFINNScorer) Contributions(text string) []WordContribution {
	tokens := s.tokenizer.Tokenize(text)

	var contribs []WordContribution
	for _, tok := range tokens {
		word := strings.ToLower(tok.Text)
		if !s.lexicon.HasWord(word) {
			continue
		}
		v := s.lexicon.Valence(word)
		contribs = append(contribs, WordContribution{
			Word:         tok.Text,
			Position:     tok.Start,
			BaseValence:  v,
			FinalValence: v,
		})
	}
	return contribs
}
