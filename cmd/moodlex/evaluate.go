package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sjoram/moodlex"
	"github.com/spf13/cobra"
)

type evaluateFlags struct {
	scorer     string
	hasScorer  bool
	threshold  float64
	hasThresh  bool
	testSize   int
	hasSize    bool
	lexicon    string
	configPath string
	verbose    bool
}

func newEvaluateCmd() *cobra.Command {
	f := &evaluateFlags{}

	cmd := &cobra.Command{
		Use:   "evaluate <dataset.csv>",
		Short: "Evaluate a scorer against a labeled review dataset",
		Long: `Evaluate loads a CSV of labeled reviews (columns "review" and
"sentiment"), classifies each one, and reports accuracy, per-class precision,
recall, and F1, and the confusion matrix. With --test-size only the last N
rows are scored. With --scorer all every scorer is run in turn, each at its
own default threshold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.hasScorer = cmd.Flags().Changed("scorer")
			f.hasThresh = cmd.Flags().Changed("threshold")
			f.hasSize = cmd.Flags().Changed("test-size")
			return runEvaluate(cmd.OutOrStdout(), args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.scorer, "scorer", "vader", "Scorer: pattern, afinn, vader, or all")
	flags.Float64Var(&f.threshold, "threshold", 0, "Decision threshold (default: per-scorer)")
	flags.IntVar(&f.testSize, "test-size", 0, "Evaluate only the last N rows (0 = all)")
	flags.StringVar(&f.lexicon, "lexicon", "", "Extra lexicon file merged over the bundled one")
	flags.StringVar(&f.configPath, "config", "", "YAML config file with defaults")
	flags.BoolVar(&f.verbose, "verbose", false, "Print dataset statistics to stderr")

	return cmd
}

func runEvaluate(out io.Writer, path string, f *evaluateFlags) error {
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
	testSize := f.testSize
	if !f.hasSize && cfg.TestSize != nil {
		testSize = *cfg.TestSize
	}

	verbose("Loading dataset: %s", path)
	reviews, err := moodlex.LoadReviews(path)
	if err != nil {
		return exitError(3, "%v", err)
	}
	verbose("Loaded %d reviews", len(reviews))

	if testSize > 0 {
		_, tail, err := moodlex.Split(reviews, testSize)
		if err != nil {
			return exitError(3, "%v", err)
		}
		reviews = tail
		verbose("Evaluating last %d reviews", len(reviews))
	}

	if f.verbose {
		for label, count := range moodlex.LabelBalance(reviews) {
			verbose("  %s: %d", label, count)
		}
		for _, wc := range moodlex.TopWords(reviews, 10) {
			verbose("  top word %q (%d)", wc.Word, wc.Count)
		}
	}

	names := []string{name}
	all := name == "all"
	if all {
		names = moodlex.ScorerNames()
	}

	for _, n := range names {
		verbose("Building scorer: %s", n)
		scorer, err := buildScorer(n, lexicon)
		if err != nil {
			return exitError(3, "%v", err)
		}

		threshold := f.threshold
		if !f.hasThresh {
			// A config threshold is tied to a single scorer; in all mode
			// each scorer falls back to its own default.
			if cfg.Threshold != nil && !all {
				threshold = *cfg.Threshold
			} else {
				threshold, err = moodlex.DefaultThreshold(n)
				if err != nil {
					return exitError(3, "%v", err)
				}
			}
		}
		verbose("Threshold: %g", threshold)

		if all {
			fmt.Fprintf(out, "== %s ==\n", n)
		}
		metrics := moodlex.Evaluate(moodlex.NewClassifier(scorer, threshold), reviews)
		io.WriteString(out, metrics.Report())
	}

	return nil
}
