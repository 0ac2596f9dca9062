package moodlex

import (
	"math"
	"testing"
)

func TestValenceScoreSign(t *testing.T) {
	tests := []struct {
		text     string
		positive bool
		desc     string
	}{
		{"The movie was great", true, "plain positive"},
		{"The movie was terrible", false, "plain negative"},
		{"not good", false, "negated positive"},
		{"wasn't good", false, "contraction negation"},
		{"never been this good", true, "never this intensifies"},
		{"At least it isn't a horrible film", true, "negated negative"},
		{"this movie is the shit", true, "idiom override"},
		{"least compelling", false, "least as negation"},
		{"at least compelling", true, "at least is not a negation"},
		{":)", true, "positive emoticon"},
		{":(", false, "negative emoticon"},
		{"SKIP IT! stupid movie", false, "negative example"},
	}

	scorer := NewValenceScorer(nil)
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			score := scorer.Score(tt.text)
			if tt.positive && score.Value <= 0 {
				t.Errorf("Text: %q\nExpected positive compound, got %g", tt.text, score.Value)
			}
			if !tt.positive && score.Value >= 0 {
				t.Errorf("Text: %q\nExpected negative compound, got %g", tt.text, score.Value)
			}
		})
	}
}

func TestValenceScoreRange(t *testing.T) {
	texts := []string{
		"amazing amazing amazing amazing amazing amazing!!!",
		"terrible terrible terrible terrible terrible terrible!!!",
		"a neutral sentence about nothing in particular",
		"",
	}

	scorer := NewValenceScorer(nil)
	for _, text := range texts {
		score := scorer.Score(text)
		if score.Value < -1 || score.Value > 1 {
			t.Errorf("Text: %q\nCompound %g outside [-1, 1]", text, score.Value)
		}
	}
}

func TestValenceScoreEmphasis(t *testing.T) {
	scorer := NewValenceScorer(nil)

	tests := []struct {
		stronger string
		weaker   string
		desc     string
	}{
		{"very good movie", "good movie", "booster word"},
		{"good movie!!!", "good movie", "exclamation emphasis"},
		{"GOOD movie", "good movie", "caps emphasis"},
		{"good movie", "barely good movie", "dampener word"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			strong := scorer.Score(tt.stronger).Value
			weak := scorer.Score(tt.weaker).Value
			if strong <= weak {
				t.Errorf("Expected %q (%g) to outscore %q (%g)",
					tt.stronger, strong, tt.weaker, weak)
			}
		})
	}
}

func TestValenceScoreButShift(t *testing.T) {
	scorer := NewValenceScorer(nil)

	// Sentiment after "but" dominates.
	mixed := scorer.Score("the plot was boring but the acting was wonderful")
	if mixed.Value <= 0 {
		t.Errorf("Expected positive compound when positive clause follows but, got %g", mixed.Value)
	}
	reversed := scorer.Score("the acting was wonderful but the plot was boring")
	if reversed.Value >= mixed.Value {
		t.Errorf("Expected clause order to matter: %g vs %g", reversed.Value, mixed.Value)
	}
}

func TestValenceScoreProportions(t *testing.T) {
	scorer := NewValenceScorer(nil)
	score := scorer.Score("The acting was wonderful but the plot was boring and stupid")

	sum := score.Positive + score.Negative + score.Neutral
	if math.Abs(sum-1) > 0.01 {
		t.Errorf("Expected proportions to sum to 1, got %g (%+v)", sum, score)
	}
	if score.Positive == 0 || score.Negative == 0 {
		t.Errorf("Expected mixed text to have both proportions, got %+v", score)
	}
}

func TestValenceScoreEmpty(t *testing.T) {
	score := NewValenceScorer(nil).Score("")
	if score.Value != 0 || score.Hits != 0 {
		t.Errorf("Expected zero score for empty text, got %+v", score)
	}
}

func TestValenceScoreHits(t *testing.T) {
	score := NewValenceScorer(nil).Score("a great film with a terrible ending")
	if score.Hits != 2 {
		t.Errorf("Expected 2 lexicon hits, got %d", score.Hits)
	}
}

func TestValenceScoreRounding(t *testing.T) {
	score := NewValenceScorer(nil).Score("a very good movie with a terrible ending")

	if got := math.Round(score.Value*1e4) / 1e4; got != score.Value {
		t.Errorf("Compound %v not rounded to 4 decimals", score.Value)
	}
	for _, p := range []float64{score.Positive, score.Negative, score.Neutral} {
		if got := math.Round(p*1e3) / 1e3; got != p {
			t.Errorf("Proportion %v not rounded to 3 decimals", p)
		}
	}
}

func TestValenceScoreDeterministic(t *testing.T) {
	scorer := NewValenceScorer(nil)
	text := "VADER is VERY SMART, uber handsome, and FRIGGIN FUNNY!!!"

	first := scorer.Score(text)
	for i := 0; i < 5; i++ {
		if got := scorer.Score(text); got != first {
			t.Fatalf("Score is not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestValenceName(t *testing.T) {
	if got := NewValenceScorer(nil).Name(); got != "vader" {
		t.Errorf("Expected name vader, got %q", got)
	}
}

func BenchmarkValenceScore(b *testing.B) {
	scorer := NewValenceScorer(nil)
	text := "The acting was superb but the plot wasn't convincing, a stupid mess of a film!!"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scorer.Score(text)
	}
}
