package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqdrill/internal/catalog"
	"github.com/abhisek/mcqdrill/internal/store"
)

// defaultQuestionsPath is used when neither --questions nor
// MCQDRILL_QUESTIONS is set.
const defaultQuestionsPath = "questions.json"

var rootCmd = &cobra.Command{
	Use:   "mcqdrill",
	Short: "Multiple-choice quiz drill for the terminal",
	Long: `mcqdrill drills a bank of multiple-choice questions in three modes:
Learning repeats wrong answers until every question is answered correctly,
Test-Exam scores a fixed number of questions, and Random cycles forever.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Path to the question file (overrides MCQDRILL_QUESTIONS env var)")
	rootCmd.PersistentFlags().String("journal", "", "Path to the SQLite journal (overrides MCQDRILL_JOURNAL env var)")
	rootCmd.PersistentFlags().Bool("no-journal", false, "Do not record answers")

	rootCmd.Flags().String("mode", "learning", "Initial mode: learning, exam or random")
	rootCmd.Flags().String("category", catalog.AllCategories, "Initial category")
	rootCmd.Flags().Int("exam-count", 0, "Questions per test (overrides MCQDRILL_EXAM_COUNT env var)")
	rootCmd.Flags().Int64("seed", 0, "Shuffle seed for reproducible order (0 = random)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveQuestionsPath returns the question file path using --questions
// (highest priority), then MCQDRILL_QUESTIONS, then ./questions.json.
func resolveQuestionsPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		return p
	}
	if p := os.Getenv("MCQDRILL_QUESTIONS"); p != "" {
		return p
	}
	return defaultQuestionsPath
}

// resolveDBPath returns the journal path using --journal (highest priority),
// then MCQDRILL_JOURNAL env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("journal"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cat, err := catalog.Load(resolveQuestionsPath(cmd))
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// openJournal opens the journal store unless --no-journal is set.
// A nil store means the journal is disabled.
func openJournal(cmd *cobra.Command) (*store.Store, error) {
	if off, _ := cmd.Flags().GetBool("no-journal"); off {
		return nil, nil
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve journal path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return st, nil
}
