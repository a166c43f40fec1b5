package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqdrill/internal/store"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent journal events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")

		st, err := openJournal(cmd)
		if err != nil {
			return err
		}
		if st == nil {
			return errors.New("journal is disabled (--no-journal)")
		}
		defer st.Close()

		events, err := st.EventRepo().RecentEvents(cmd.Context(), store.QueryOpts{
			Limit:     limit,
			SessionID: sessionID,
		})
		if err != nil {
			return fmt.Errorf("query journal: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No events recorded.")
			return nil
		}
		for _, e := range events {
			fmt.Fprintf(out, "%s  %-8.8s  %s\n",
				e.Timestamp.Format("2006-01-02 15:04:05"), e.SessionID, e.Describe())
		}
		return nil
	},
}

func init() {
	journalCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	journalCmd.Flags().StringP("session", "s", "", "Only show events of this run")
}
