package moodlex

import "testing"

func TestTopWords(t *testing.T) {
	reviews := []Review{
		{Text: "brilliant film with a brilliant cast", Label: Positive},
		{Text: "the film dragged on and on", Label: Negative},
	}

	top := TopWords(reviews, 2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 words, got %d: %v", len(top), top)
	}
	if top[0].Word != "brilliant" && top[0].Word != "film" {
		t.Errorf("Unexpected top word %q", top[0].Word)
	}
	for _, wc := range top {
		if wc.Word == "the" || wc.Word == "with" || wc.Word == "a" {
			t.Errorf("Stop word %q should have been removed", wc.Word)
		}
	}
}

func TestTopWordsStable(t *testing.T) {
	reviews := []Review{{Text: "film cast crew", Label: Positive}}

	first := TopWords(reviews, 3)
	for i := 0; i < 5; i++ {
		again := TopWords(reviews, 3)
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("TopWords order is not stable: %v vs %v", again, first)
			}
		}
	}
}

func TestLabelBalance(t *testing.T) {
	reviews := []Review{
		{Text: "a", Label: Positive},
		{Text: "b", Label: Positive},
		{Text: "c", Label: Negative},
	}

	balance := LabelBalance(reviews)
	if balance[Positive] != 2 || balance[Negative] != 1 {
		t.Errorf("Unexpected balance: %v", balance)
	}
}
