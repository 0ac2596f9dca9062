package moodlex

import "testing"

func TestDocumentSentences(t *testing.T) {
	tests := []struct {
		text  string
		count int
		desc  string
	}{
		{"The acting was superb. The plot was thin.", 2, "two sentences"},
		{"What a film! I loved it. Would watch again.", 3, "mixed terminators"},
		{"One sentence only", 1, "no terminator"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			doc := NewDocument(tt.text)
			if got := len(doc.Sentences()); got != tt.count {
				t.Errorf("Text: %q\nExpected %d sentences, got %d: %v",
					tt.text, tt.count, got, doc.Sentences())
			}
		})
	}
}

func TestDocumentSentenceOffsets(t *testing.T) {
	text := "The acting was superb. The plot was thin."
	doc := NewDocument(text)

	for _, sent := range doc.Sentences() {
		if sent.Start < 0 || sent.End > len(text) {
			t.Fatalf("Sentence %q has out-of-range offsets [%d, %d)", sent.Text, sent.Start, sent.End)
		}
		if got := text[sent.Start:sent.End]; got != sent.Text {
			t.Errorf("Sentence offsets [%d, %d) map to %q, want %q", sent.Start, sent.End, got, sent.Text)
		}
	}
}

func TestDocumentSmartQuoteOffsets(t *testing.T) {
	// The sanitizer shrinks smart quotes from three bytes to one, so
	// sentence and token offsets must both index the sanitized text.
	doc := NewDocument("“Good” they said. “Bad” ending, stupid plot.")

	for _, tok := range doc.Tokens() {
		if got := doc.Text[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("Token %q: offsets [%d, %d) map to %q", tok.Text, tok.Start, tok.End, got)
		}
	}

	sents := doc.Sentences()
	if len(sents) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(sents), sents)
	}
	for _, tok := range doc.Tokens() {
		if tok.Text == "Bad" && tok.Start < sents[1].Start {
			t.Errorf("Token %q at [%d, %d) lands before the second sentence at %d",
				tok.Text, tok.Start, tok.End, sents[1].Start)
		}
	}
}

func TestDocumentWithoutSegmentation(t *testing.T) {
	doc := NewDocument("First. Second.", WithSegmentation(false))
	if len(doc.Sentences()) != 0 {
		t.Errorf("Expected no sentences with segmentation disabled, got %d", len(doc.Sentences()))
	}
	if len(doc.Tokens()) == 0 {
		t.Error("Expected tokens even with segmentation disabled")
	}
}

func TestDocumentCustomTokenizer(t *testing.T) {
	tok := NewWordTokenizer(UsingIsUnsplittable(func(s string) bool {
		return s == "so-so."
	}))
	doc := NewDocument("It was so-so.", UsingTokenizer(tok))

	tokens := doc.Tokens()
	last := tokens[len(tokens)-1]
	if last.Text != "so-so." {
		t.Errorf("Expected custom tokenizer to be used, last token was %q", last.Text)
	}
}
