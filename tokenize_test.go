package moodlex

import (
	"testing"
)

func TestWordTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
		desc string
	}{
		{"They'll watch it again.", []string{"They", "'ll", "watch", "it", "again", "."}, "contraction 'll"},
		{"I don't like it.", []string{"I", "do", "n't", "like", "it", "."}, "contraction n't"},
		{"It's fine", []string{"It", "'s", "fine"}, "contraction 's"},
		{"SKIP IT!", []string{"SKIP", "IT", "!"}, "caps with punctuation"},
		{"Loved it :)", []string{"Loved", "it", ":)"}, "emoticon kept whole"},
		{"(cheap)", []string{"(", "cheap", ")"}, "wrapping punctuation"},
		{"good.", []string{"good", "."}, "trailing period"},
		{"", nil, "empty text"},
		{"   ", nil, "whitespace only"},
	}

	tok := NewWordTokenizer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			tokens := tok.Tokenize(tt.text)
			if len(tokens) != len(tt.want) {
				t.Fatalf("Text: %q\nExpected %d tokens, got %d: %v",
					tt.text, len(tt.want), len(tokens), tokenTexts(tokens))
			}
			for i, want := range tt.want {
				if tokens[i].Text != want {
					t.Errorf("Text: %q\nToken %d: expected %q, got %q",
						tt.text, i, want, tokens[i].Text)
				}
			}
		})
	}
}

func TestWordTokenizeOffsets(t *testing.T) {
	text := "Great movie, I loved every minute."
	tok := NewWordTokenizer()

	for _, token := range tok.Tokenize(text) {
		if token.Start < 0 || token.End > len(text) {
			t.Fatalf("Token %q has out-of-range offsets [%d, %d)", token.Text, token.Start, token.End)
		}
		if got := text[token.Start:token.End]; got != token.Text {
			t.Errorf("Token %q: offsets [%d, %d) map to %q", token.Text, token.Start, token.End, got)
		}
	}
}

func TestWordTokenizeSanitizer(t *testing.T) {
	// Smart quotes are normalized before splitting.
	tokens := NewWordTokenizer().Tokenize("It’s fine")
	if len(tokens) != 3 || tokens[1].Text != "'s" {
		t.Errorf("Expected smart quote to split as contraction, got %v", tokenTexts(tokens))
	}
}

func TestWordTokenizeUnsplittable(t *testing.T) {
	tok := NewWordTokenizer(UsingIsUnsplittable(func(s string) bool {
		return s == "C++."
	}))

	tokens := tok.Tokenize("I know C++.")
	if len(tokens) != 3 || tokens[2].Text != "C++." {
		t.Errorf("Expected unsplittable token to be kept whole, got %v", tokenTexts(tokens))
	}
}

func tokenTexts(tokens []*Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

func BenchmarkWordTokenize(b *testing.B) {
	text := "The acting was superb, but the plot wasn't convincing at all. I don't think I'll watch it again."
	tok := NewWordTokenizer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Tokenize(text)
	}
}
