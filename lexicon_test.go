package moodlex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLexiconBasics(t *testing.T) {
	lx := NewLexicon("test")

	if lx.Name() != "test" {
		t.Errorf("Expected name %q, got %q", "test", lx.Name())
	}
	if lx.Size() != 0 {
		t.Errorf("Expected empty lexicon, size was %d", lx.Size())
	}

	lx.AddWord("Great", 3)
	if !lx.HasWord("great") {
		t.Error("AddWord should lowercase entries")
	}
	if got := lx.Valence("great"); got != 3 {
		t.Errorf("Expected valence 3, got %g", got)
	}
	if got := lx.Valence("missing"); got != 0 {
		t.Errorf("Expected zero valence for unknown word, got %g", got)
	}

	lx.AddModifier("very", 0.3)
	if got := lx.ModifierFactor("very"); got != 0.3 {
		t.Errorf("Expected modifier factor 0.3, got %g", got)
	}

	lx.AddNegation("not")
	if !lx.IsNegation("not") {
		t.Error("Expected 'not' to be a negation")
	}
	if lx.IsNegation("great") {
		t.Error("'great' should not be a negation")
	}
}

func TestLexiconMergeTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.tsv")
	content := "# comment line\n\nsoso\t-1.5\nrad\t2\t25\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lx := AFINNLexicon()
	if err := lx.MergeTSV(path); err != nil {
		t.Fatalf("MergeTSV failed: %v", err)
	}

	if got := lx.Valence("soso"); got != -1.5 {
		t.Errorf("Expected merged valence -1.5, got %g", got)
	}
	if got := lx.Valence("rad"); got != 2 {
		t.Errorf("Expected merged valence 2 with extra column ignored, got %g", got)
	}
	// Bundled entries survive the merge.
	if !lx.HasWord("good") {
		t.Error("Bundled entries should survive a merge")
	}
}

func TestLexiconMergeTSVMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.tsv")
	if err := os.WriteFile(path, []byte("justaword\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := NewLexicon("test").MergeTSV(path); err == nil {
		t.Error("Expected error for line without a valence column")
	}
}

func TestLexiconMergeJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.json")
	content := `{
		"words": [
			{"word": "Magic", "valence": 0.6, "subjectivity": 0.8},
			{"word": "good", "valence": 0.9}
		],
		"modifiers": [{"word": "insanely", "factor": 0.5}],
		"negations": ["nay"]
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lx := PatternLexicon()
	if err := lx.MergeJSON(path); err != nil {
		t.Fatalf("MergeJSON failed: %v", err)
	}

	if got := lx.Valence("magic"); got != 0.6 {
		t.Errorf("Expected valence 0.6, got %g", got)
	}
	if got := lx.Subjectivity("magic"); got != 0.8 {
		t.Errorf("Expected subjectivity 0.8, got %g", got)
	}
	// File entries win on conflict.
	if got := lx.Valence("good"); got != 0.9 {
		t.Errorf("Expected overridden valence 0.9, got %g", got)
	}
	if got := lx.ModifierFactor("insanely"); got != 0.5 {
		t.Errorf("Expected modifier factor 0.5, got %g", got)
	}
	if !lx.IsNegation("nay") {
		t.Error("Expected merged negation 'nay'")
	}
}

func TestLexiconMergeMissingFile(t *testing.T) {
	lx := NewLexicon("test")
	if err := lx.MergeTSV("does-not-exist.tsv"); err == nil {
		t.Error("Expected error for missing TSV file")
	}
	if err := lx.MergeJSON("does-not-exist.json"); err == nil {
		t.Error("Expected error for missing JSON file")
	}
}

func TestBundledLexicons(t *testing.T) {
	tests := []struct {
		name    string
		lexicon *Lexicon
		word    string
	}{
		{"afinn", AFINNLexicon(), "stupid"},
		{"vader", ValenceLexicon(), "stupid"},
		{"pattern", PatternLexicon(), "stupid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.lexicon.Size() == 0 {
				t.Fatal("Bundled lexicon is empty")
			}
			if !tt.lexicon.HasWord(tt.word) {
				t.Errorf("Expected bundled lexicon to contain %q", tt.word)
			}
			if v := tt.lexicon.Valence(tt.word); v >= 0 {
				t.Errorf("Expected %q to have negative valence, got %g", tt.word, v)
			}
		})
	}
}

func TestLexiconIdioms(t *testing.T) {
	lx := ValenceLexicon()

	v, ok := lx.IdiomValence("the shit")
	if !ok || v <= 0 {
		t.Errorf("Expected positive idiom valence for 'the shit', got %g (found=%v)", v, ok)
	}
	if _, ok := lx.IdiomValence("no such idiom"); ok {
		t.Error("Unexpected idiom match")
	}
}
