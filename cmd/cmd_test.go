package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mcqdrill/internal/catalog"
	"github.com/abhisek/mcqdrill/internal/session"
	"github.com/abhisek/mcqdrill/internal/store"
)

const testQuestions = "../internal/catalog/testdata/questions.json"

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// sessionFlagsCmd returns a command carrying the flags newSession reads.
func sessionFlagsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().String("mode", "learning", "")
	c.Flags().String("category", catalog.AllCategories, "")
	c.Flags().Int("exam-count", 0, "")
	c.Flags().Int64("seed", 0, "")
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestResolveQuestionsPath(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	c.Flags().String("questions", "", "")

	t.Setenv("MCQDRILL_QUESTIONS", "")
	assert.Equal(t, defaultQuestionsPath, resolveQuestionsPath(c))

	t.Setenv("MCQDRILL_QUESTIONS", "/tmp/env.json")
	assert.Equal(t, "/tmp/env.json", resolveQuestionsPath(c))

	require.NoError(t, c.Flags().Set("questions", "/tmp/flag.json"))
	assert.Equal(t, "/tmp/flag.json", resolveQuestionsPath(c))
}

func TestCategoriesCommand(t *testing.T) {
	out, err := execute(t, "categories", "--questions", testQuestions)
	require.NoError(t, err)

	assert.Contains(t, out, "All")
	assert.Contains(t, out, "Networking")
	assert.Contains(t, out, "Storage")
	assert.Regexp(t, `All\s+5`, out)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", testQuestions)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (2 categories, 5 questions)")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"Empty": []}`), 0o644))
	_, err = execute(t, "validate", bad)
	require.Error(t, err)

	var loadErr *catalog.LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, bad, loadErr.Path)
}

func TestJournalCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)

	rec := store.NewRecorder(st.EventRepo(), "run-1234567890")
	ctx := context.Background()
	require.NoError(t, rec.Session(ctx, store.ActionSessionStart, "learning", "All", 0, 0))
	require.NoError(t, rec.Answer(ctx, store.AnswerEventData{
		Mode: "learning", Category: "All", QuestionText: "port?", Selected: "443", CorrectChoice: "443", Correct: true,
	}))
	require.NoError(t, st.Close())

	out, err := execute(t, "journal", "--journal", dbPath, "-n", "1", "--session", "")
	require.NoError(t, err)
	assert.Contains(t, out, `✓ learning [All] "port?" → "443"`)
	assert.NotContains(t, out, "session_start")
	assert.Contains(t, out, "run-1234")

	empty := filepath.Join(t.TempDir(), "empty.db")
	out, err = execute(t, "journal", "--journal", empty, "-n", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "No events recorded.")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mcqdrill (devel)\n", out)
}

func TestNewSession_Flags(t *testing.T) {
	cat, err := catalog.Load(testQuestions)
	require.NoError(t, err)

	t.Setenv("MCQDRILL_EXAM_COUNT", "")
	c := sessionFlagsCmd(t, "--mode", "exam", "--category", "Storage", "--exam-count", "2", "--seed", "7")
	sess, err := newSession(c, cat)
	require.NoError(t, err)

	assert.Equal(t, session.ModeExam, sess.Mode())
	assert.Equal(t, "Storage", sess.Category())
	assert.Equal(t, 2, sess.View().Exam.RequestedCount)
}

func TestNewSession_RejectsBadFlags(t *testing.T) {
	cat, err := catalog.Load(testQuestions)
	require.NoError(t, err)

	_, err = newSession(sessionFlagsCmd(t, "--category", "Cooking"), cat)
	assert.ErrorIs(t, err, catalog.ErrUnknownCategory)

	_, err = newSession(sessionFlagsCmd(t, "--mode", "speedrun"), cat)
	assert.Error(t, err)
}

func TestNewShuffler_SeedIsReproducible(t *testing.T) {
	a, b := newShuffler(42), newShuffler(42)
	for range 10 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
