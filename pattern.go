package moodlex

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// PatternScorer performs lexicon-based polarity and subjectivity analysis in
// the style of the pattern library: each sentence is scored from the
// polarities of its content words, adjusted for degree modifiers and
// negation, and the document polarity is the mean over scored sentences.
type PatternScorer struct {
	lexicon *Lexicon

	// negationWindow is how many preceding words to check for negation.
	negationWindow int
}

// NewPatternScorer creates a pattern scorer. A nil lexicon selects the
// bundled polarity list.
func NewPatternScorer(lx *Lexicon) *PatternScorer {
	if lx == nil {
		lx = PatternLexicon()
	}
	return &PatternScorer{
		lexicon:        lx,
		negationWindow: 3,
	}
}

// Name identifies the scorer in reports and CLI flags.
func (s *PatternScorer) Name() string {
	return "pattern"
}

// Score computes polarity in [-1, 1] and subjectivity in [0, 1] for text.
// Sentences without any lexicon word contribute nothing.
func (s *PatternScorer) Score(text string) Score {
	doc := NewDocument(text)
	tokens := doc.Tokens()

	var (
		polarities     []float64
		subjectivities []float64
		hits           int
	)
	for _, sent := range doc.Sentences() {
		polarity, subjectivity, n := s.scoreSentence(sentenceTokens(sent, tokens))
		if n == 0 {
			continue
		}
		polarities = append(polarities, polarity)
		subjectivities = append(subjectivities, subjectivity)
		hits += n
	}

	if len(polarities) == 0 {
		return Score{}
	}
	return Score{
		Value:        stat.Mean(polarities, nil),
		Subjectivity: stat.Mean(subjectivities, nil),
		Hits:         hits,
	}
}

// scoreSentence scores one sentence's tokens, returning its polarity,
// subjectivity, and the number of lexicon words that contributed.
func (s *PatternScorer) scoreSentence(tokens []*Token) (float64, float64, int) {
	var (
		posScore float64
		negScore float64
		subjSum  float64
		count    int
	)

	for i, tok := range tokens {
		if !isContentWord(tok) {
			continue
		}
		word := strings.ToLower(tok.Text)
		if !s.lexicon.HasWord(word) {
			continue
		}

		modified := s.applyModifiers(s.lexicon.Valence(word), tokens, i)
		if s.checkNegation(tokens, i) {
			// Negation reverses but weakens.
			modified = -modified * 0.5
		}
		if modified == 0 {
			continue
		}

		if modified > 0 {
			posScore += modified
		} else {
			negScore += math.Abs(modified)
		}
		subjSum += s.lexicon.Subjectivity(word)
		count++
	}

	if count == 0 {
		return 0, 0, 0
	}

	posScore /= float64(count)
	negScore /= float64(count)

	var polarity float64
	switch {
	case posScore == 0 && negScore == 0:
		polarity = 0
	case negScore == 0:
		polarity = math.Min(1.0, posScore*1.5)
	case posScore == 0:
		polarity = math.Max(-1.0, -negScore*1.5)
	default:
		polarity = (posScore - negScore) / (posScore + negScore)
	}

	return polarity, subjSum / float64(count), count
}

// applyModifiers scales the valence when one of the two preceding tokens is
// a degree modifier.
func (s *PatternScorer) applyModifiers(valence float64, tokens []*Token, position int) float64 {
	if position == 0 || valence == 0 {
		return valence
	}

	start := position - 2
	if start < 0 {
		start = 0
	}
	for i := start; i < position; i++ {
		factor := s.lexicon.ModifierFactor(strings.ToLower(tokens[i].Text))
		if factor != 0 {
			return valence * (1 + factor)
		}
	}
	return valence
}

// checkNegation reports whether the word at position is inside the scope of
// a preceding negation. A clause boundary between the negation and the word
// cancels the scope.
func (s *PatternScorer) checkNegation(tokens []*Token, position int) bool {
	start := position - s.negationWindow
	if start < 0 {
		start = 0
	}

	for i := start; i < position; i++ {
		word := strings.ToLower(tokens[i].Text)
		if !s.lexicon.IsNegation(word) && !strings.Contains(word, "n't") {
			continue
		}
		boundary := false
		for j := i + 1; j < position; j++ {
			if isClauseBoundary(tokens[j]) {
				boundary = true
				break
			}
		}
		if !boundary {
			return true
		}
	}
	return false
}

// sentenceTokens extracts the tokens belonging to a sentence.
func sentenceTokens(sent Sentence, tokens []Token) []*Token {
	var sentTokens []*Token
	for i := range tokens {
		if tokens[i].Start >= sent.Start && tokens[i].End <= sent.End {
			sentTokens = append(sentTokens, &tokens[i])
		}
	}
	return sentTokens
}

// isContentWord filters out punctuation and single characters.
func isContentWord(tok *Token) bool {
	if len(tok.Text) <= 1 {
		return false
	}
	for _, r := range tok.Text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// isClauseBoundary reports whether a token ends a negation's scope.
func isClauseBoundary(tok *Token) bool {
	switch strings.ToLower(tok.Text) {
	case ",", ";", ":", ".", "!", "?", "but", "however", "although":
		return true
	}
	return false
}
