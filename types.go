package moodlex

// A Token represents an individual token of text such as a word, an emoticon,
// or a punctuation symbol.
type Token struct {
	Text  string // The token's actual content.
	Start int    // Start position in original text
	End   int    // End position in original text
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text  string // The sentence's text.
	Start int    // Start position in original text
	End   int    // End position in original text
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// Label is a binary sentiment class for a review.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
)

// A Review is a text sample with its ground-truth label.
type Review struct {
	Text  string
	Label Label
}

// Score holds the raw output of a lexicon scorer for one piece of text.
// Value is the polarity used for thresholding; its range depends on the
// scorer (AFINN sums raw valences, the others normalize to [-1, 1]).
type Score struct {
	Value float64 // signed polarity

	// Proportions of the text falling into each category. Only the
	// valence scorer fills these; they sum to roughly 1 when set.
	Positive float64
	Negative float64
	Neutral  float64

	// Subjectivity in [0, 1]. Only the pattern scorer fills it.
	Subjectivity float64

	// Hits counts tokens that matched a lexicon entry.
	Hits int
}

// A Prediction is a scored text mapped to a label via a fixed threshold.
type Prediction struct {
	Score Score
	Label Label
}

// WordContribution records a single word's effect on a score. Scorers
// collect these so callers can inspect what drove a decision.
type WordContribution struct {
	Word         string
	Position     int
	BaseValence  float64
	FinalValence float64
}
