package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/mathrush/internal/problemgen"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate a quiz",
	Long: `Generate a multiple-choice quiz for one tier.

With --json the quiz is printed as an array of question records, checked
against the question schema first.`,
	RunE: runQuiz,
}

func init() {
	addTierFlags(quizCmd, 10)
	quizCmd.Flags().Bool("json", false, "Print questions as JSON records")
	quizCmd.Flags().Uint64("seed", 0, "Seed for reproducible output")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	qt, d, err := parseTier(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	asJSON, _ := cmd.Flags().GetBool("json")

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	seed, seeded := seedFlag(cmd)
	gen, err := newGenerator(cmd, log, generatorOptions{seed: seed, seeded: seeded})
	if err != nil {
		return err
	}

	quiz, err := gen.GenerateQuiz(qt, d, count)
	if err != nil {
		return err
	}

	if asJSON {
		return writeQuizJSON(cmd.OutOrStdout(), quiz)
	}
	writeQuizText(cmd.OutOrStdout(), quiz)
	return nil
}

func writeQuizJSON(w io.Writer, quiz []*problemgen.Question) error {
	data, err := json.MarshalIndent(quiz, "", "  ")
	if err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}
	if err := problemgen.ValidateJSON(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeQuizText(w io.Writer, quiz []*problemgen.Question) {
	for i, q := range quiz {
		fmt.Fprintf(w, "%d. %s\n", i+1, q.Text)
		opts := make([]string, len(q.Options))
		for j, o := range q.Options {
			opts[j] = optionText(j, o)
		}
		fmt.Fprintf(w, "   %s\n", strings.Join(opts, "   "))
	}
}

// optionText formats an option as "a) 12".
func optionText(i, value int) string {
	return problemgen.OptionLabel(i) + ") " + strconv.Itoa(value)
}
