package moodlex

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// classes fixes the label order for reports and macro averages.
var classes = []Label{Positive, Negative}

// Metrics accumulates classification results against ground truth.
// Confusion maps actual label to predicted label to count.
type Metrics struct {
	Total     int
	Correct   int
	Confusion map[Label]map[Label]int
}

// NewMetrics returns an empty metrics accumulator.
func NewMetrics() *Metrics {
	confusion := make(map[Label]map[Label]int, len(classes))
	for _, actual := range classes {
		confusion[actual] = make(map[Label]int, len(classes))
	}
	return &Metrics{Confusion: confusion}
}

// Record registers one prediction against its ground truth.
func (m *Metrics) Record(actual, predicted Label) {
	m.Total++
	if actual == predicted {
		m.Correct++
	}
	m.Confusion[actual][predicted]++
}

// Evaluate runs the classifier over labeled reviews and tallies the results.
func Evaluate(c *Classifier, reviews []Review) *Metrics {
	m := NewMetrics()
	for _, rev := range reviews {
		m.Record(rev.Label, c.Predict(rev.Text).Label)
	}
	return m
}

// Accuracy is the fraction of predictions matching ground truth.
func (m *Metrics) Accuracy() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Correct) / float64(m.Total)
}

// Precision is the fraction of predictions of class that were correct.
func (m *Metrics) Precision(class Label) float64 {
	tp := m.Confusion[class][class]
	predicted := 0
	for _, actual := range classes {
		predicted += m.Confusion[actual][class]
	}
	if predicted == 0 {
		return 0
	}
	return float64(tp) / float64(predicted)
}

// Recall is the fraction of actual class members that were found.
func (m *Metrics) Recall(class Label) float64 {
	tp := m.Confusion[class][class]
	actual := 0
	for _, predicted := range classes {
		actual += m.Confusion[class][predicted]
	}
	if actual == 0 {
		return 0
	}
	return float64(tp) / float64(actual)
}

// F1 is the harmonic mean of precision and recall for class.
func (m *Metrics) F1(class Label) float64 {
	p := m.Precision(class)
	r := m.Recall(class)
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// MacroPrecision averages precision over both classes.
func (m *Metrics) MacroPrecision() float64 {
	return m.macro((*Metrics).Precision)
}

// MacroRecall averages recall over both classes.
func (m *Metrics) MacroRecall() float64 {
	return m.macro((*Metrics).Recall)
}

// MacroF1 averages F1 over both classes.
func (m *Metrics) MacroF1() float64 {
	return m.macro((*Metrics).F1)
}

func (m *Metrics) macro(fn func(*Metrics, Label) float64) float64 {
	values := make([]float64, len(classes))
	for i, class := range classes {
		values[i] = fn(m, class)
	}
	return stat.Mean(values, nil)
}

// Report renders the metrics as a human-readable table.
func (m *Metrics) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "samples:   %d\n", m.Total)
	fmt.Fprintf(&b, "accuracy:  %.4f\n\n", m.Accuracy())

	fmt.Fprintf(&b, "%-10s %10s %10s %10s\n", "class", "precision", "recall", "f1")
	for _, class := range classes {
		fmt.Fprintf(&b, "%-10s %10.4f %10.4f %10.4f\n",
			string(class), m.Precision(class), m.Recall(class), m.F1(class))
	}
	fmt.Fprintf(&b, "%-10s %10.4f %10.4f %10.4f\n\n",
		"macro", m.MacroPrecision(), m.MacroRecall(), m.MacroF1())

	fmt.Fprintf(&b, "confusion (rows actual, columns predicted)\n")
	fmt.Fprintf(&b, "%-10s", "")
	for _, predicted := range classes {
		fmt.Fprintf(&b, " %10s", string(predicted))
	}
	b.WriteString("\n")
	for _, actual := range classes {
		fmt.Fprintf(&b, "%-10s", string(actual))
		for _, predicted := range classes {
			fmt.Fprintf(&b, " %10d", m.Confusion[actual][predicted])
		}
		b.WriteString("\n")
	}

	return b.String()
}
