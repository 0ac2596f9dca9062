package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sjoram/moodlex"
	"gopkg.in/yaml.v3"
)

// config holds defaults loaded from a YAML file. Explicit flags always win
// over config values.
type config struct {
	Scorer    string   `yaml:"scorer"`
	Threshold *float64 `yaml:"threshold"`
	Lexicon   string   `yaml:"lexicon"`
	TestSize  *int     `yaml:"test_size"`
}

func loadConfig(path string) (*config, error) {
	if path == "" {
		return &config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var c config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &c, nil
}

// buildScorer constructs the named scorer, merging an external lexicon file
// on top of the bundled one when given. JSON files use the pattern layout,
// anything else is read as word<TAB>valence lines.
func buildScorer(name, lexiconPath string) (moodlex.Scorer, error) {
	if lexiconPath == "" {
		return moodlex.NewScorer(name)
	}

	var lx *moodlex.Lexicon
	switch name {
	case "pattern":
		lx = moodlex.PatternLexicon()
	case "afinn":
		lx = moodlex.AFINNLexicon()
	case "vader":
		lx = moodlex.ValenceLexicon()
	default:
		return nil, fmt.Errorf("unknown scorer %q", name)
	}

	if strings.HasSuffix(lexiconPath, ".json") {
		if err := lx.MergeJSON(lexiconPath); err != nil {
			return nil, err
		}
	} else {
		if err := lx.MergeTSV(lexiconPath); err != nil {
			return nil, err
		}
	}

	switch name {
	case "pattern":
		return moodlex.NewPatternScorer(lx), nil
	case "afinn":
		return moodlex.NewAFINNScorer(lx), nil
	default:
		return moodlex.NewValenceScorer(lx), nil
	}
}
