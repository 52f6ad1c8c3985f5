package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/wordpick/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLedgerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect or reset the words already shown",
	}

	cmd.AddCommand(
		newLedgerListCmd(app),
		newLedgerResetCmd(app),
	)

	return cmd
}

func newLedgerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List used words, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLedger(app.Ledger.List(cmd.Context())))
			return nil
		},
	}
}

func newLedgerResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget every used word so the whole pool is eligible again",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			n := len(app.Ledger.List(ctx))

			if !yes {
				if !app.interactive() {
					return errors.New("refusing to reset without a terminal; pass --yes")
				}
				ok, err := app.confirm(fmt.Sprintf("Forget %d used words?", n))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Ledger.Reset(ctx); err != nil {
				return fmt.Errorf("resetting ledger: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ledger cleared (%d words).\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
