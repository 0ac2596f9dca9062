package moodlex

import "fmt"

// A Scorer turns raw text into a polarity score. Implementations differ in
// lexicon and scoring rules but all report more positive values for more
// positive text.
type Scorer interface {
	Name() string
	Score(text string) Score
}

// Default decision thresholds for each scorer, tuned on movie review data.
// AFINN sums raw integer valences so its threshold sits on that scale; the
// other two scorers produce polarities in [-1, 1].
const (
	DefaultPatternThreshold = 0.1
	DefaultAFINNThreshold   = 1.0
	DefaultValenceThreshold = 0.4
)

// DefaultThreshold returns the standard decision threshold for a scorer name.
func DefaultThreshold(name string) (float64, error) {
	switch name {
	case "pattern":
		return DefaultPatternThreshold, nil
	case "afinn":
		return DefaultAFINNThreshold, nil
	case "vader":
		return DefaultValenceThreshold, nil
	}
	return 0, fmt.Errorf("unknown scorer %q", name)
}

// ScorerNames lists the available scorer names.
func ScorerNames() []string {
	return []string{"pattern", "afinn", "vader"}
}

// NewScorer constructs the named scorer with its bundled lexicon.
func NewScorer(name string) (Scorer, error) {
	switch name {
	case "pattern":
		return NewPatternScorer(nil), nil
	case "afinn":
		return NewAFINNScorer(nil), nil
	case "vader":
		return NewValenceScorer(nil), nil
	}
	return nil, fmt.Errorf("unknown scorer %q", name)
}

// A Classifier maps scorer output onto a binary label by comparing the score
// value against a fixed threshold. Scores at or above the threshold are
// positive, everything below is negative.
type Classifier struct {
	Scorer    Scorer
	Threshold float64
}

// NewClassifier pairs a scorer with a decision threshold.
func NewClassifier(s Scorer, threshold float64) *Classifier {
	return &Classifier{Scorer: s, Threshold: threshold}
}

// Predict scores text and applies the threshold.
func (c *Classifier) Predict(text string) Prediction {
	score := c.Scorer.Score(text)
	label := Negative
	if score.Value >= c.Threshold {
		label = Positive
	}
	return Prediction{Score: score, Label: label}
}
