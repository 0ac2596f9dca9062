package moodlex

// A DocOpt represents a setting that changes the document creation process.
//
// For example, it might disable sentence segmentation:
//
//	doc := moodlex.NewDocument("...", moodlex.WithSegmentation(false))
type DocOpt func(opts *DocOpts)

// DocOpts controls the Document creation process:
type DocOpts struct {
	Segment   bool      // If true, include sentence segmentation
	Tokenizer Tokenizer // Tokenizer to use
	Segmenter Segmenter // Segmenter to use
}

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(tok Tokenizer) DocOpt {
	return func(opts *DocOpts) {
		opts.Tokenizer = tok
	}
}

// UsingSegmenter specifies the Segmenter to use.
func UsingSegmenter(seg Segmenter) DocOpt {
	return func(opts *DocOpts) {
		opts.Segmenter = seg
	}
}

// WithSegmentation can enable (the default) or disable sentence segmentation.
func WithSegmentation(include bool) DocOpt {
	return func(opts *DocOpts) {
		opts.Segment = include
	}
}

// A Document represents a tokenized body of text. Text holds the sanitized
// input; token and sentence offsets index into it.
type Document struct {
	Text string

	sentences []Sentence
	tokens    []*Token
}

// Tokens returns `doc`'s tokens.
func (doc *Document) Tokens() []Token {
	tokens := make([]Token, 0, len(doc.tokens))
	for _, tok := range doc.tokens {
		tokens = append(tokens, *tok)
	}
	return tokens
}

// Sentences returns `doc`'s sentences.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

var defaultOpts = DocOpts{
	Segment: true,
}

// NewDocument creates a Document according to the user-specified options.
//
// For example,
//
//	doc := moodlex.NewDocument("...")
func NewDocument(text string, opts ...DocOpt) *Document {
	// Sanitize before segmenting so sentence offsets and token offsets index
	// the same text. The quote replacements change byte lengths, so running
	// the segmenter on the raw input would leave every later token shifted.
	text = sanitizer.Replace(text)
	doc := Document{Text: text}

	base := defaultOpts
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.Tokenizer == nil {
		base.Tokenizer = NewWordTokenizer()
	}
	if base.Segmenter == nil {
		base.Segmenter = NewPunktSegmenter()
	}

	if base.Segment {
		doc.sentences = base.Segmenter.Segment(text)
	}
	doc.tokens = append(doc.tokens, base.Tokenizer.Tokenize(text)...)

	return &doc
}
