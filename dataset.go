package moodlex

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseLabel normalizes a ground-truth sentiment string. Matching is
// case-insensitive and accepts the common short forms.
func ParseLabel(s string) (Label, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive", "pos":
		return Positive, nil
	case "negative", "neg":
		return Negative, nil
	}
	return "", fmt.Errorf("unknown sentiment label %q", s)
}

// ReadReviews parses labeled reviews from CSV. The first row is a header and
// must name a review column and a sentiment column, in any order. Extra
// columns are ignored. A row with a missing field or an unknown label is an
// error.
func ReadReviews(r io.Reader) ([]Review, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty dataset: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	textCol, labelCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "review":
			textCol = i
		case "sentiment":
			labelCol = i
		}
	}
	if textCol < 0 || labelCol < 0 {
		return nil, fmt.Errorf("header %v: need review and sentiment columns", header)
	}

	var reviews []Review
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		label, err := ParseLabel(record[labelCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		reviews = append(reviews, Review{
			Text:  record[textCol],
			Label: label,
		})
	}

	return reviews, nil
}

// LoadReviews reads labeled reviews from a CSV file.
func LoadReviews(path string) ([]Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	reviews, err := ReadReviews(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reviews, nil
}

// Split separates reviews into a training head and a test tail of n rows.
// The scorers need no training, but holding out a fixed tail keeps results
// comparable across runs.
func Split(reviews []Review, n int) (train, test []Review, err error) {
	if n < 0 || n > len(reviews) {
		return nil, nil, fmt.Errorf("test size %d out of range for %d reviews", n, len(reviews))
	}
	cut := len(reviews) - n
	return reviews[:cut], reviews[cut:], nil
}
