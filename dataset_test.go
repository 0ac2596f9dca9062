package moodlex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadReviews(t *testing.T) {
	csv := `review,sentiment
"A wonderful film, truly great.",positive
"Boring and stupid.",negative
"SKIP IT! stupid movie",Negative
`
	reviews, err := ReadReviews(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadReviews failed: %v", err)
	}

	if len(reviews) != 3 {
		t.Fatalf("Expected 3 reviews, got %d", len(reviews))
	}
	if reviews[0].Label != Positive {
		t.Errorf("Expected first review positive, got %s", reviews[0].Label)
	}
	if reviews[0].Text != "A wonderful film, truly great." {
		t.Errorf("Unexpected review text: %q", reviews[0].Text)
	}
	if reviews[2].Label != Negative {
		t.Errorf("Labels should parse case-insensitively, got %s", reviews[2].Label)
	}
}

func TestReadReviewsColumnOrder(t *testing.T) {
	csv := `id,sentiment,review
1,negative,"Terrible."
2,positive,"Superb."
`
	reviews, err := ReadReviews(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadReviews failed: %v", err)
	}
	if len(reviews) != 2 || reviews[0].Text != "Terrible." || reviews[1].Label != Positive {
		t.Errorf("Columns should be found by header name, got %+v", reviews)
	}
}

func TestReadReviewsErrors(t *testing.T) {
	tests := []struct {
		csv  string
		desc string
	}{
		{"", "empty input"},
		{"review,score\nhello,1\n", "missing sentiment column"},
		{"review,sentiment\nhello,meh\n", "unknown label"},
		{"review,sentiment\nonlyonefield\n", "wrong field count"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if _, err := ReadReviews(strings.NewReader(tt.csv)); err == nil {
				t.Errorf("Expected error for %s", tt.desc)
			}
		})
	}
}

func TestLoadReviews(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.csv")
	content := "review,sentiment\ngood stuff,positive\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	reviews, err := LoadReviews(path)
	if err != nil {
		t.Fatalf("LoadReviews failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Errorf("Expected 1 review, got %d", len(reviews))
	}

	if _, err := LoadReviews(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSplit(t *testing.T) {
	reviews := []Review{
		{Text: "a", Label: Positive},
		{Text: "b", Label: Negative},
		{Text: "c", Label: Positive},
		{Text: "d", Label: Negative},
	}

	train, test, err := Split(reviews, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(train) != 3 || len(test) != 1 {
		t.Fatalf("Expected 3/1 split, got %d/%d", len(train), len(test))
	}
	if test[0].Text != "d" {
		t.Errorf("Test set should be the tail, got %q", test[0].Text)
	}

	if _, _, err := Split(reviews, 5); err == nil {
		t.Error("Expected error when test size exceeds dataset")
	}
	if _, _, err := Split(reviews, -1); err == nil {
		t.Error("Expected error for negative test size")
	}

	train, test, err = Split(reviews, 0)
	if err != nil || len(train) != 4 || len(test) != 0 {
		t.Errorf("Zero split should keep everything in train, got %d/%d (%v)",
			len(train), len(test), err)
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		want Label
		ok   bool
	}{
		{"positive", Positive, true},
		{"POSITIVE", Positive, true},
		{" neg ", Negative, true},
		{"pos", Positive, true},
		{"neutral", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseLabel(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseLabel(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseLabel(%q) should fail", tt.in)
		}
	}
}
