package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the full-screen word picker (default in a terminal)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}
}

func runTUI(cmd *cobra.Command, app *App) error {
	notifier := &programNotifier{}
	m, err := newAppModel(app, notifier)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	notifier.attach(p.Send)
	defer notifier.attach(nil)

	_, err = p.Run()
	m.state.Session.alerts.Wait()
	return err
}
