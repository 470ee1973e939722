package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/mathrush/internal/problemgen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// profilesEnv names the environment variable holding the default profile file.
const profilesEnv = "MATHRUSH_PROFILES"

var rootCmd = &cobra.Command{
	Use:          "mathrush",
	Short:        "Procedural arithmetic and equation quizzes",
	Long:         "Mathrush generates multiple-choice arithmetic and equation quizzes at three difficulty tiers.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Log generator decisions to stderr")
	rootCmd.PersistentFlags().String("profiles", "", "Path to a YAML difficulty profile file (overrides MATHRUSH_PROFILES env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveProfilesPath returns the profile path using --profiles flag
// (highest priority), then MATHRUSH_PROFILES env var. Empty means the
// built-in profiles.
func resolveProfilesPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("profiles"); p != "" {
		return p
	}
	return os.Getenv(profilesEnv)
}

// newLogger returns a development logger under --verbose and a no-op
// logger otherwise.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		return zap.NewNop(), nil
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// generatorOptions carries the per-command knobs for newGenerator.
type generatorOptions struct {
	seed   uint64
	seeded bool
}

// newGenerator builds a Generator from the shared flags.
func newGenerator(cmd *cobra.Command, log *zap.Logger, opts generatorOptions) (*problemgen.Generator, error) {
	cfg := problemgen.DefaultConfig()
	cfg.Logger = log

	if path := resolveProfilesPath(cmd); path != "" {
		profiles, err := problemgen.LoadProfiles(path)
		if err != nil {
			return nil, err
		}
		cfg.Profiles = profiles
		log.Debug("loaded difficulty profiles", zap.String("path", path))
	}
	if opts.seeded {
		cfg.Rand = problemgen.NewSeededRand(opts.seed)
	}
	return problemgen.New(cfg), nil
}

// parseTier parses the --type and --difficulty flags.
func parseTier(cmd *cobra.Command) (problemgen.QuizType, problemgen.Difficulty, error) {
	typeVal, _ := cmd.Flags().GetString("type")
	diffVal, _ := cmd.Flags().GetString("difficulty")

	qt, err := problemgen.ParseQuizType(typeVal)
	if err != nil {
		return "", "", err
	}
	d, err := problemgen.ParseDifficulty(diffVal)
	if err != nil {
		return "", "", err
	}
	return qt, d, nil
}

// addTierFlags registers --type, --difficulty and --count.
func addTierFlags(cmd *cobra.Command, count int) {
	cmd.Flags().String("type", "arithmetics", "Quiz type: arithmetics or equations")
	cmd.Flags().String("difficulty", "easy", "Difficulty: easy, medium or hard")
	cmd.Flags().Int("count", count, "Number of questions")
}

// seedFlag returns the --seed value and whether it was set.
func seedFlag(cmd *cobra.Command) (uint64, bool) {
	seed, _ := cmd.Flags().GetUint64("seed")
	return seed, cmd.Flags().Changed("seed")
}
