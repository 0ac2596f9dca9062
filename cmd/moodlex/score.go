package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sjoram/moodlex"
	"github.com/spf13/cobra"
)

type scoreFlags struct {
	scorer     string
	hasScorer  bool
	threshold  float64
	hasThresh  bool
	lexicon    string
	configPath string
	format     string
	verbose    bool
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score [text]",
		Short: "Score a piece of text and print its predicted sentiment",
		Long: `Score runs one lexicon scorer over the given text (or stdin when no
argument is given) and prints the polarity score and predicted label.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.hasScorer = cmd.Flags().Changed("scorer")
			f.hasThresh = cmd.Flags().Changed("threshold")

			text := strings.Join(args, " ")
			if text == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return exitError(3, "reading stdin: %v", err)
				}
				text = string(data)
			}
			return runScore(text, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.scorer, "scorer", "vader", "Scorer: pattern, afinn, or vader")
	flags.Float64Var(&f.threshold, "threshold", 0, "Decision threshold (default: per-scorer)")
	flags.StringVar(&f.lexicon, "lexicon", "", "Extra lexicon file merged over the bundled one")
	flags.StringVar(&f.configPath, "config", "", "YAML config file with defaults")
	flags.StringVar(&f.format, "format", "text", "Output format: text or json")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runScore(text string, f *scoreFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return exitError(3, "%v", err)
	}

	name := f.scorer
	if !f.hasScorer && cfg.Scorer != "" {
		name = cfg.Scorer
	}
	lexicon := f.lexicon
	if lexicon == "" {
		lexicon = cfg.Lexicon
	}

	verbose("Building scorer: %s", name)
	scorer, err := buildScorer(name, lexicon)
	if err != nil {
		return exitError(3, "%v", err)
	}

	threshold := f.threshold
	if !f.hasThresh {
		if cfg.Threshold != nil {
			threshold = *cfg.Threshold
		} else {
			threshold, err = moodlex.DefaultThreshold(name)
			if err != nil {
				return exitError(3, "%v", err)
			}
		}
	}
	verbose("Threshold: %g", threshold)

	clf := moodlex.NewClassifier(scorer, threshold)
	pred := clf.Predict(text)

	switch f.format {
	case "json":
		out := struct {
			Scorer    string        `json:"scorer"`
			Threshold float64       `json:"threshold"`
			Score     moodlex.Score `json:"score"`
			Label     moodlex.Label `json:"label"`
		}{name, threshold, pred.Score, pred.Label}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		fmt.Printf("scorer:    %s\n", name)
		fmt.Printf("score:     %.4f\n", pred.Score.Value)
		fmt.Printf("threshold: %g\n", threshold)
		fmt.Printf("label:     %s\n", pred.Label)
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	return nil
}
