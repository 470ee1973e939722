package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/mathrush/internal/audit"
	"github.com/abhisek/mathrush/internal/problemgen"
	"github.com/abhisek/mathrush/internal/ui/components"
	"github.com/abhisek/mathrush/internal/ui/theme"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxListedFailures bounds the failures printed per tier.
const maxListedFailures = 10

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Sweep every tier and verify question integrity",
	Long: `Generate questions for all six tiers and verify that every answer is an
exact integer, every option set is valid, HARD arithmetic questions contain an
exponent or parentheses, and no signature repeats within a quiz.

Exits non-zero when any question fails.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("count", 100, "Questions checked per tier")
	checkCmd.Flags().Int("quiz-size", 10, "Questions per generated quiz")
	checkCmd.Flags().Float64("similarity", audit.DefaultSimilarity, "Near-duplicate similarity threshold (0-1]")
	checkCmd.Flags().Uint64("seed", 0, "Seed for a reproducible sweep")
}

func runCheck(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	quizSize, _ := cmd.Flags().GetInt("quiz-size")
	similarity, _ := cmd.Flags().GetFloat64("similarity")

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := audit.Options{
		Count:      count,
		QuizSize:   quizSize,
		Similarity: similarity,
		Logger:     log,
	}
	opts.Seed, opts.Seeded = seedFlag(cmd)
	if path := resolveProfilesPath(cmd); path != "" {
		profiles, err := problemgen.LoadProfiles(path)
		if err != nil {
			return err
		}
		opts.Profiles = profiles
	}

	report, err := audit.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	writeReport(cmd.OutOrStdout(), report)
	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d questions failed", failed, report.Total())
	}
	return nil
}

func writeReport(w io.Writer, report audit.Report) {
	title := cases.Title(language.English)

	fmt.Fprintln(w, theme.Title.Render("Integrity check"))
	fmt.Fprintln(w)

	for _, tier := range report.Tiers {
		label := fmt.Sprintf("%s - %s", title.String(tier.Type.DisplayName()), title.String(string(tier.Difficulty)))
		status := theme.Correct.Render(fmt.Sprintf("%d/%d passed", tier.Passed, tier.Total))
		if len(tier.Failures) > 0 {
			status = theme.Incorrect.Render(fmt.Sprintf("%d/%d passed", tier.Passed, tier.Total))
		}
		fmt.Fprintf(w, "%-22s %s\n", label, status)
		fmt.Fprintln(w, "  "+components.NewProgressBar("fallback", tier.FallbackRatio(), true, 40).View())

		if n := len(tier.NearDuplicates); n > 0 {
			fmt.Fprintln(w, theme.Warning.Render(fmt.Sprintf("  %d near-duplicate pairs, e.g. %q ~ %q",
				n, tier.NearDuplicates[0].A, tier.NearDuplicates[0].B)))
		}
		for i, f := range tier.Failures {
			if i == maxListedFailures {
				fmt.Fprintln(w, theme.Hint.Render(fmt.Sprintf("  ... %d more", len(tier.Failures)-i)))
				break
			}
			fmt.Fprintf(w, "  %s %s (answer %d): %s\n", theme.Incorrect.Render("✗"), f.Question, f.Answer, f.Reason)
		}
	}

	fmt.Fprintln(w)
	total, failed := report.Total(), report.Failed()
	rate := 100.0
	if total > 0 {
		rate = float64(total-failed) / float64(total) * 100
	}
	fmt.Fprintln(w, theme.Body.Render(fmt.Sprintf("Total: %d  Passed: %d  Failed: %d  Success rate: %.2f%%",
		total, total-failed, failed, rate)))
}
