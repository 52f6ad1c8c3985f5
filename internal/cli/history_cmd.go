package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wordpick/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently drawn words",
		Long:  "Show recently drawn words. History is kept across ledger resets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			picks, err := app.History.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(picks, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of picks to show (0 for all)")

	return cmd
}
