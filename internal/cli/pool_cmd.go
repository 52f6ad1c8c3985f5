package cli

import (
	"fmt"

	"github.com/alexanderramin/wordpick/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPoolCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pool",
		Short: "Show word categories and how many words are left",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPoolSummary(app.Pool.Summary(cmd.Context())))
			return nil
		},
	}
}
