package moodlex

import (
	"math"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// normalizeAlpha approximates the maximum expected raw valence sum. Dividing
// by sqrt(x*x + alpha) squashes the sum into [-1, 1].
const normalizeAlpha = 15

// ValenceScorer implements VADER-style rule-based scoring: word valences
// adjusted for ALL-CAPS emphasis, degree modifiers, negation, contrastive
// "but", special-case idioms, and punctuation flooding, then normalized to a
// compound polarity in [-1, 1].
type ValenceScorer struct {
	lexicon *Lexicon
}

// NewValenceScorer creates a valence scorer. A nil lexicon selects the
// bundled valence list.
func NewValenceScorer(lx *Lexicon) *ValenceScorer {
	if lx == nil {
		lx = ValenceLexicon()
	}
	return &ValenceScorer{lexicon: lx}
}

// Name identifies the scorer in reports and CLI flags.
func (s *ValenceScorer) Name() string {
	return "vader"
}

// Score computes the compound polarity of text along with the proportions of
// the text that score positive, negative, and neutral.
func (s *ValenceScorer) Score(text string) Score {
	words := s.splitWords(text)
	isCapDiff := allCapDifferential(words)

	hits := 0
	sentiments := make([]float64, 0, len(words))
	for i, item := range words {
		lower := strings.ToLower(item)

		// Boosters carry no valence of their own; they only modify the
		// words that follow.
		if s.lexicon.ModifierFactor(lower) != 0 {
			sentiments = append(sentiments, 0)
			continue
		}
		if lower == "kind" && i+1 < len(words) && strings.ToLower(words[i+1]) == "of" {
			sentiments = append(sentiments, 0)
			continue
		}

		if s.lexicon.HasWord(lower) {
			hits++
		}
		sentiments = append(sentiments, s.wordValence(words, i, isCapDiff))
	}

	sentiments = butCheck(words, sentiments)
	score := s.scoreValence(sentiments, text)
	score.Hits = hits
	return score
}

// splitWords breaks text on whitespace and strips surrounding punctuation
// while keeping contractions and emoticons intact. Single characters are
// dropped.
func (s *ValenceScorer) splitWords(text string) []string {
	fields := strings.Fields(text)

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 1 {
			continue
		}
		if s.lexicon.HasWord(strings.ToLower(f)) {
			words = append(words, f)
			continue
		}
		trimmed := strings.TrimFunc(f, unicode.IsPunct)
		if trimmed == "" {
			trimmed = f
		}
		if len(trimmed) > 1 {
			words = append(words, trimmed)
		}
	}
	return words
}

// wordValence computes the context-adjusted valence of the word at index i.
func (s *ValenceScorer) wordValence(words []string, i int, isCapDiff bool) float64 {
	item := words[i]
	lower := strings.ToLower(item)

	if !s.lexicon.HasWord(lower) {
		return 0
	}
	valence := s.lexicon.Valence(lower)

	// ALL-CAPS emphasis, only meaningful when the rest of the text is not
	// also capitalized.
	if isAllCaps(item) && isCapDiff {
		if valence > 0 {
			valence += capsIncr
		} else {
			valence -= capsIncr
		}
	}

	// Walk up to three preceding words, dampening each modifier's effect
	// by its distance from the current word.
	for dist := 0; dist <= 2; dist++ {
		if i <= dist {
			continue
		}
		prev := words[i-dist-1]
		if s.lexicon.HasWord(strings.ToLower(prev)) {
			continue
		}

		sc := s.scalarIncDec(prev, valence, isCapDiff)
		if dist == 1 {
			sc *= 0.95
		}
		if dist == 2 {
			sc *= 0.9
		}
		valence += sc

		valence = s.negationCheck(valence, words, dist, i)
		if dist == 2 {
			valence = s.idiomCheck(valence, words, i)
		}
	}

	return s.leastCheck(valence, words, i)
}

// scalarIncDec returns the valence adjustment a preceding booster word
// contributes, signed to match the target valence.
func (s *ValenceScorer) scalarIncDec(word string, valence float64, isCapDiff bool) float64 {
	scalar := s.lexicon.ModifierFactor(strings.ToLower(word))
	if scalar == 0 {
		return 0
	}
	if valence < 0 {
		scalar = -scalar
	}
	if isAllCaps(word) && isCapDiff {
		if valence > 0 {
			scalar += capsIncr
		} else {
			scalar -= capsIncr
		}
	}
	return scalar
}

// negationCheck flips and dampens valence when the word dist+1 positions back
// negates it. "never so" and "never this" intensify instead, and "without
// doubt" is not a negation. The intensifier requires "never" itself at
// position dist+1, as in the original Python VADER rules; some Go ports
// apply it whenever so/this precedes the word.
func (s *ValenceScorer) negationCheck(valence float64, words []string, dist, i int) float64 {
	prev := strings.ToLower(words[i-dist-1])

	switch dist {
	case 0:
		if s.isNegated(prev) {
			valence *= negScalar
		}
	case 1:
		one := strings.ToLower(words[i-1])
		if prev == "never" && (one == "so" || one == "this") {
			valence *= 1.25
		} else if prev == "without" && one == "doubt" {
			// no change
		} else if s.isNegated(prev) {
			valence *= negScalar
		}
	case 2:
		one := strings.ToLower(words[i-1])
		two := strings.ToLower(words[i-2])
		if prev == "never" && (two == "so" || two == "this" || one == "so" || one == "this") {
			valence *= 1.25
		} else if prev == "without" && (two == "doubt" || one == "doubt") {
			// no change
		} else if s.isNegated(prev) {
			valence *= negScalar
		}
	}

	return valence
}

func (s *ValenceScorer) isNegated(word string) bool {
	return s.lexicon.IsNegation(word) || strings.Contains(word, "n't")
}

// leastCheck handles "least" as a negation, unless it is part of "at least"
// or "very least".
func (s *ValenceScorer) leastCheck(valence float64, words []string, i int) float64 {
	if i == 0 {
		return valence
	}
	prev := strings.ToLower(words[i-1])
	if s.lexicon.HasWord(prev) || prev != "least" {
		return valence
	}
	if i > 1 {
		two := strings.ToLower(words[i-2])
		if two == "at" || two == "very" {
			return valence
		}
	}
	return valence * negScalar
}

// idiomCheck overrides valence when the word sits inside a special-case
// idiom, and applies booster bigrams such as "sort of".
func (s *ValenceScorer) idiomCheck(valence float64, words []string, i int) float64 {
	lower := make([]string, len(words))
	for j, w := range words {
		lower[j] = strings.ToLower(w)
	}

	onezero := lower[i-1] + " " + lower[i]
	twoonezero := lower[i-2] + " " + onezero
	twoone := lower[i-2] + " " + lower[i-1]
	threetwoone := lower[i-3] + " " + twoone
	threetwo := lower[i-3] + " " + lower[i-2]

	for _, seq := range []string{onezero, twoonezero, twoone, threetwoone, threetwo} {
		if v, ok := s.lexicon.IdiomValence(seq); ok {
			valence = v
			break
		}
	}

	if i+1 < len(lower) {
		if v, ok := s.lexicon.IdiomValence(lower[i] + " " + lower[i+1]); ok {
			valence = v
		}
	}
	if i+2 < len(lower) {
		if v, ok := s.lexicon.IdiomValence(lower[i] + " " + lower[i+1] + " " + lower[i+2]); ok {
			valence = v
		}
	}

	for _, ngram := range []string{threetwoone, threetwo, twoone} {
		valence += s.lexicon.ModifierFactor(ngram)
	}

	return valence
}

// butCheck shifts weight across the contrastive conjunction "but": sentiment
// before it is halved and sentiment after it is amplified.
func butCheck(words []string, sentiments []float64) []float64 {
	for bi, w := range words {
		if strings.ToLower(w) != "but" {
			continue
		}
		for si := range sentiments {
			if si < bi {
				sentiments[si] *= 0.5
			} else if si > bi {
				sentiments[si] *= 1.5
			}
		}
	}
	return sentiments
}

// scoreValence folds the per-word sentiments into a compound score plus
// positive, negative, and neutral proportions.
func (s *ValenceScorer) scoreValence(sentiments []float64, text string) Score {
	var compound, pos, neg, neu float64

	if len(sentiments) > 0 {
		sum := floats.Sum(sentiments)

		punct := punctuationEmphasis(text)
		if sum > 0 {
			sum += punct
		} else if sum < 0 {
			sum -= punct
		}
		compound = normalizeValence(sum)

		posSum, negSum, neuCount := siftSentiments(sentiments)
		if posSum > math.Abs(negSum) {
			posSum += punct
		} else if posSum < math.Abs(negSum) {
			negSum -= punct
		}

		total := posSum + math.Abs(negSum) + float64(neuCount)
		pos = math.Abs(posSum / total)
		neg = math.Abs(negSum / total)
		neu = math.Abs(float64(neuCount) / total)
	}

	return Score{
		Value:    scalar.Round(compound, 4),
		Positive: scalar.Round(pos, 3),
		Negative: scalar.Round(neg, 3),
		Neutral:  scalar.Round(neu, 3),
	}
}

// siftSentiments separates positive and negative word scores, adding a unit
// to each so neutral words still count toward the proportions.
func siftSentiments(sentiments []float64) (posSum, negSum float64, neuCount int) {
	for _, v := range sentiments {
		switch {
		case v > 0:
			posSum += v + 1
		case v < 0:
			negSum += v - 1
		default:
			neuCount++
		}
	}
	return posSum, negSum, neuCount
}

// normalizeValence squashes a raw valence sum into [-1, 1].
func normalizeValence(sum float64) float64 {
	norm := sum / math.Sqrt(sum*sum+normalizeAlpha)
	if norm < -1 {
		return -1
	}
	if norm > 1 {
		return 1
	}
	return norm
}

// punctuationEmphasis measures added intensity from exclamation points (up
// to four) and repeated question marks.
func punctuationEmphasis(text string) float64 {
	ep := strings.Count(text, "!")
	if ep > 4 {
		ep = 4
	}
	amplifier := float64(ep) * 0.292

	qm := strings.Count(text, "?")
	if qm > 1 {
		if qm <= 3 {
			amplifier += float64(qm) * 0.18
		} else {
			amplifier += 0.96
		}
	}
	return amplifier
}

// allCapDifferential reports whether some but not all words are ALL CAPS.
func allCapDifferential(words []string) bool {
	allcap := 0
	for _, w := range words {
		if isAllCaps(w) {
			allcap++
		}
	}
	diff := len(words) - allcap
	return diff > 0 && diff < len(words)
}

// isAllCaps requires at least one letter, so emoticons do not count.
func isAllCaps(word string) bool {
	return word == strings.ToUpper(word) && word != strings.ToLower(word)
}
