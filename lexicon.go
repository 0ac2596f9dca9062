package moodlex

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Lexicon manages a static word-to-valence table together with the modifier
// and negation word lists a rule-based scorer needs. All lookups are
// case-insensitive on fallback. Unknown words have zero valence.
type Lexicon struct {
	name         string
	words        map[string]float64
	subjectivity map[string]float64
	modifiers    map[string]float64
	negations    map[string]bool
	idioms       map[string]float64
	mutex        sync.RWMutex
}

// NewLexicon creates an empty lexicon with the given name.
func NewLexicon(name string) *Lexicon {
	return &Lexicon{
		name:         name,
		words:        make(map[string]float64),
		subjectivity: make(map[string]float64),
		modifiers:    make(map[string]float64),
		negations:    make(map[string]bool),
		idioms:       make(map[string]float64),
	}
}

// Name returns the lexicon's name.
func (lx *Lexicon) Name() string {
	return lx.name
}

// Valence returns the sentiment valence for a word, zero if unknown.
func (lx *Lexicon) Valence(word string) float64 {
	lx.mutex.RLock()
	defer lx.mutex.RUnlock()

	if v, ok := lx.words[word]; ok {
		return v
	}
	return lx.words[strings.ToLower(word)]
}

// HasWord checks if a word exists in the lexicon.
func (lx *Lexicon) HasWord(word string) bool {
	lx.mutex.RLock()
	defer lx.mutex.RUnlock()

	_, ok := lx.words[word]
	if !ok {
		_, ok = lx.words[strings.ToLower(word)]
	}
	return ok
}

// Subjectivity returns the subjectivity weight for a word, zero if unknown.
func (lx *Lexicon) Subjectivity(word string) float64 {
	lx.mutex.RLock()
	defer lx.mutex.RUnlock()

	if v, ok := lx.subjectivity[word]; ok {
		return v
	}
	return lx.subjectivity[strings.ToLower(word)]
}

// ModifierFactor returns the intensifier (positive) or diminisher (negative)
// factor for a word, zero for non-modifiers.
func (lx *Lexicon) ModifierFactor(word string) float64 {
	lx.mutex.RLock()
	defer lx.mutex.RUnlock()

	if f, ok := lx.modifiers[word]; ok {
		return f
	}
	return lx.modifiers[strings.ToLower(word)]
}

// IsNegation checks if word is a negation.
func (lx *Lexicon) IsNegation(word string) bool {
	lx.mutex.RLock()
	defer lx.mutex.RUnlock()

	return lx.negations[word] || lx.negations[strings.ToLower(word)]
}

// IdiomValence returns the valence of a multi-word idiom and whether the
// idiom is known. The phrase must already be lowercased.
func (lx *Lexicon) IdiomValence(phrase string) (float64, bool) {
	lx.mutex.RLock()
	defer lx.mutex.RUnlock()

	v, ok := lx.idioms[phrase]
	return v, ok
}

// Size returns the number of scored words in the lexicon.
func (lx *Lexicon) Size() int {
	lx.mutex.RLock()
	defer lx.mutex.RUnlock()

	return len(lx.words)
}

// AddWord adds or replaces a scored word.
func (lx *Lexicon) AddWord(word string, valence float64) {
	lx.mutex.Lock()
	defer lx.mutex.Unlock()

	lx.words[strings.ToLower(word)] = valence
}

// AddModifier adds or replaces a modifier factor.
func (lx *Lexicon) AddModifier(word string, factor float64) {
	lx.mutex.Lock()
	defer lx.mutex.Unlock()

	lx.modifiers[strings.ToLower(word)] = factor
}

// AddNegation adds a negation word.
func (lx *Lexicon) AddNegation(word string) {
	lx.mutex.Lock()
	defer lx.mutex.Unlock()

	lx.negations[strings.ToLower(word)] = true
}

// externalLexicon is the JSON structure accepted by MergeJSON.
type externalLexicon struct {
	Words     []externalWord     `json:"words,omitempty"`
	Modifiers []externalModifier `json:"modifiers,omitempty"`
	Negations []string           `json:"negations,omitempty"`
}

type externalWord struct {
	Word         string  `json:"word"`
	Valence      float64 `json:"valence"`
	Subjectivity float64 `json:"subjectivity,omitempty"`
}

type externalModifier struct {
	Word   string  `json:"word"`
	Factor float64 `json:"factor"`
}

// MergeJSON loads a JSON lexicon file and merges its entries over the
// bundled ones. File entries win on conflict.
func (lx *Lexicon) MergeJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading lexicon file: %w", err)
	}

	var external externalLexicon
	if err := json.Unmarshal(data, &external); err != nil {
		return fmt.Errorf("parsing lexicon JSON: %w", err)
	}

	lx.mutex.Lock()
	defer lx.mutex.Unlock()

	for _, entry := range external.Words {
		word := strings.ToLower(entry.Word)
		lx.words[word] = entry.Valence
		if entry.Subjectivity != 0 {
			lx.subjectivity[word] = entry.Subjectivity
		}
	}
	for _, mod := range external.Modifiers {
		lx.modifiers[strings.ToLower(mod.Word)] = mod.Factor
	}
	for _, neg := range external.Negations {
		lx.negations[strings.ToLower(neg)] = true
	}

	return nil
}

// MergeTSV loads a tab-separated "word<TAB>valence" file, the distribution
// format of the AFINN and VADER word lists, and merges its entries over the
// bundled ones. Blank lines and lines starting with '#' are skipped; extra
// columns after the valence are ignored.
func (lx *Lexicon) MergeTSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading lexicon file: %w", err)
	}
	defer f.Close()

	lx.mutex.Lock()
	defer lx.mutex.Unlock()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return fmt.Errorf("lexicon line %d: expected word<TAB>valence, got %q", lineNo, line)
		}
		valence, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return fmt.Errorf("lexicon line %d: %w", lineNo, err)
		}
		lx.words[strings.ToLower(fields[0])] = valence
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading lexicon file: %w", err)
	}

	return nil
}
