package moodlex

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Segmenter splits text into sentences.
type Segmenter interface {
	Segment(string) []Sentence
}

// punktSegmenter wraps the trained English Punkt model.
type punktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

var (
	punktOnce    sync.Once
	punktDefault *punktSegmenter
)

// NewPunktSegmenter returns the shared English sentence segmenter. The
// underlying model is loaded once and reused; it is safe for concurrent use.
func NewPunktSegmenter() Segmenter {
	punktOnce.Do(func() {
		tokenizer, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			// The training data is compiled into the package; failure to
			// load it is a programming error, not a runtime condition.
			panic("moodlex: loading bundled sentence model: " + err.Error())
		}
		punktDefault = &punktSegmenter{tokenizer: tokenizer}
	})
	return punktDefault
}

func (p *punktSegmenter) Segment(text string) []Sentence {
	segmented := p.tokenizer.Tokenize(text)

	sents := make([]Sentence, 0, len(segmented))
	offset := 0
	for _, s := range segmented {
		start := indexFrom(text, s.Text, offset)
		if start < 0 {
			start = offset
		}
		sents = append(sents, Sentence{
			Text:  s.Text,
			Start: start,
			End:   start + len(s.Text),
		})
		offset = start + len(s.Text)
	}
	return sents
}

func indexFrom(s, substr string, from int) int {
	if from >= len(s) {
		return -1
	}
	idx := strings.Index(s[from:], substr)
	if idx < 0 {
		return -1
	}
	return from + idx
}
