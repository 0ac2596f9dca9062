package moodlex

import "testing"

func TestAFINNScore(t *testing.T) {
	tests := []struct {
		text string
		want float64
		hits int
		desc string
	}{
		{"good", 3, 1, "single positive word"},
		{"GOOD", 3, 1, "case insensitive"},
		{"good good", 6, 2, "valences sum"},
		{"bad", -3, 1, "single negative word"},
		{"the movie was good but the ending was bad", 0, 2, "positive and negative cancel"},
		{"an entirely unscored sentence", 0, 0, "no lexicon words"},
		{"", 0, 0, "empty text"},
		{"SKIP IT! stupid movie", -2, 1, "negative example"},
	}

	scorer := NewAFINNScorer(nil)
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			score := scorer.Score(tt.text)
			if score.Value != tt.want {
				t.Errorf("Text: %q\nExpected value %g, got %g", tt.text, tt.want, score.Value)
			}
			if score.Hits != tt.hits {
				t.Errorf("Text: %q\nExpected %d hits, got %d", tt.text, tt.hits, score.Hits)
			}
		})
	}
}

func TestAFINNScoreNoContextRules(t *testing.T) {
	// AFINN is a pure sum: negation does not flip anything.
	scorer := NewAFINNScorer(nil)

	plain := scorer.Score("good").Value
	negated := scorer.Score("not good").Value
	if plain != negated {
		t.Errorf("Expected negation to be ignored, got %g vs %g", plain, negated)
	}
}

func TestAFINNCustomLexicon(t *testing.T) {
	lx := NewLexicon("afinn")
	lx.AddWord("meh", -1)

	score := NewAFINNScorer(lx).Score("meh movie")
	if score.Value != -1 || score.Hits != 1 {
		t.Errorf("Expected value -1 with 1 hit, got %g with %d", score.Value, score.Hits)
	}
}

func TestAFINNContributions(t *testing.T) {
	scorer := NewAFINNScorer(nil)
	contribs := scorer.Contributions("a good film with a bad ending")

	if len(contribs) != 2 {
		t.Fatalf("Expected 2 contributions, got %d: %v", len(contribs), contribs)
	}
	if contribs[0].Word != "good" || contribs[0].BaseValence != 3 {
		t.Errorf("Unexpected first contribution: %+v", contribs[0])
	}
	if contribs[1].Word != "bad" || contribs[1].BaseValence != -3 {
		t.Errorf("Unexpected second contribution: %+v", contribs[1])
	}
	if contribs[0].Position >= contribs[1].Position {
		t.Error("Contributions should be in text order")
	}
}

func TestAFINNName(t *testing.T) {
	if got := NewAFINNScorer(nil).Name(); got != "afinn" {
		t.Errorf("Expected name afinn, got %q", got)
	}
}

func BenchmarkAFINNScore(b *testing.B) {
	scorer := NewAFINNScorer(nil)
	text := "The acting was superb but the plot was a stupid mess, a terrible waste of a great cast."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scorer.Score(text)
	}
}
