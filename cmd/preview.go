package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/mathrush/internal/problemgen"
	"github.com/abhisek/mathrush/internal/ui/components"
	"github.com/abhisek/mathrush/internal/ui/theme"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer generated questions interactively",
	Long: `Generate and interactively answer questions for one tier.

Answer with the option letter (a-d) or the number itself. An empty line
skips the question.`,
	RunE: runPreview,
}

func init() {
	addTierFlags(previewCmd, 5)
	previewCmd.Flags().Uint64("seed", 0, "Seed for reproducible questions")
}

func runPreview(cmd *cobra.Command, args []string) error {
	qt, d, err := parseTier(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")

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

	correct := preview(cmd.InOrStdin(), cmd.OutOrStdout(), quiz)
	fmt.Fprintln(cmd.OutOrStdout(), theme.Title.Render(
		fmt.Sprintf("── Summary: %d/%d correct ──", correct, len(quiz))))
	return nil
}

// preview asks each question on out, reads answers from in, and returns
// the number answered correctly.
func preview(in io.Reader, out io.Writer, quiz []*problemgen.Question) int {
	scanner := bufio.NewScanner(in)
	var correct int

	for i, q := range quiz {
		fmt.Fprintln(out, theme.Subtitle.Render(fmt.Sprintf("── Question %d/%d ──", i+1, len(quiz))))
		fmt.Fprintln(out, components.QuestionCard(q.Text))
		fmt.Fprintln(out, optionList(q, -1).View())

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprintln(out, theme.Hint.Render("(skipped)"))
			fmt.Fprintln(out)
			continue
		}

		if problemgen.CheckAnswer(answer, q) {
			correct++
			fmt.Fprintln(out, theme.Correct.Render("✓ Correct!"))
		} else {
			fmt.Fprintf(out, "%s Answer: %d\n", theme.Incorrect.Render("✗ Wrong."), q.CorrectAnswer)
			fmt.Fprintln(out, optionList(q, answerIndex(q)).View())
		}

		if q.Explanation != "" {
			fmt.Fprintln(out, theme.Hint.Render("Explanation: "+q.Explanation))
		}
		fmt.Fprintln(out)
	}
	return correct
}

func optionList(q *problemgen.Question, marked int) components.OptionList {
	list := components.OptionList{Marked: marked}
	for i, o := range q.Options {
		list.Labels = append(list.Labels, problemgen.OptionLabel(i))
		list.Options = append(list.Options, strconv.Itoa(o))
	}
	return list
}

func answerIndex(q *problemgen.Question) int {
	for i, o := range q.Options {
		if o == q.CorrectAnswer {
			return i
		}
	}
	return -1
}
