package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/mcqdrill/internal/app"
	"github.com/abhisek/mcqdrill/internal/catalog"
	"github.com/abhisek/mcqdrill/internal/session"
	"github.com/abhisek/mcqdrill/internal/store"
)

// runApp loads the questions, opens the journal, builds the session and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	sess, err := newSession(cmd, cat)
	if err != nil {
		return err
	}

	opts := app.Options{Session: sess}
	opts.SkipSplash, _ = cmd.Flags().GetBool("no-splash")

	st, err := openJournal(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Journal unavailable:", err)
		fmt.Fprintln(os.Stderr, "Answers will not be recorded.")
	}
	if st != nil {
		defer st.Close()
		opts.Recorder = store.NewRecorder(st.EventRepo(), uuid.New().String())
	}

	return app.Run(ctx, opts)
}

// newSession builds the quiz session from flags and environment.
func newSession(cmd *cobra.Command, cat *catalog.Catalog) (*session.Session, error) {
	cfg := session.ConfigFromEnv()
	if n, _ := cmd.Flags().GetInt("exam-count"); n > 0 {
		cfg.ExamQuestionCount = n
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	sess, err := session.New(cat, cfg, newShuffler(seed))
	if err != nil {
		return nil, err
	}

	if name, _ := cmd.Flags().GetString("category"); name != "" {
		if err := sess.SetCategory(name); err != nil {
			return nil, err
		}
	}
	if s, _ := cmd.Flags().GetString("mode"); s != "" {
		mode, err := session.ParseMode(s)
		if err != nil {
			return nil, err
		}
		if err := sess.SetMode(mode); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// newShuffler returns a PCG source seeded with seed, or with the clock
// when seed is zero.
func newShuffler(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
