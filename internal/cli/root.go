package cli

import (
	"fmt"
	"log/slog"

	"github.com/alexanderramin/wordpick/internal/alert"
	"github.com/alexanderramin/wordpick/internal/config"
	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/alexanderramin/wordpick/internal/service"
	"github.com/alexanderramin/wordpick/internal/timer"
	"github.com/spf13/cobra"
)

// GameFactory builds a game session for one surface. The TUI and the headless
// pick command drive ticks and show notifications differently.
type GameFactory func(sched timer.Scheduler, alerts service.Alerter) (service.GameService, error)

// App holds the services and settings used by CLI commands.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	Pool    service.PoolService
	Ledger  service.LedgerService
	History service.HistoryService
	NewGame GameFactory

	// Alert channels shared by every surface. Nil means unsupported.
	Vibrator alert.Vibrator
	Tones    alert.TonePlayer

	// Boot wires the services above once flags are parsed. Tests leave it nil
	// and fill the fields directly.
	Boot func(app *App) error

	IsInteractive func() bool
	// Confirm asks a yes/no question on the terminal.
	Confirm func(title string) (bool, error)

	booted bool
}

func (a *App) boot() error {
	if a.booted {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if a.Boot != nil {
		if err := a.Boot(a); err != nil {
			return err
		}
	}
	a.booted = true
	return nil
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	return confirmPrompt(title)
}

func (a *App) newDispatcher(n alert.Notifier) *alert.Dispatcher {
	return alert.NewDispatcher(a.Vibrator, a.Tones, n, a.Logger)
}

// NewRootCmd creates the top-level "wordpick" command and registers all
// subcommands against the provided App. Persistent flags write into
// app.Config, overriding values read from the environment.
func NewRootCmd(app *App) *cobra.Command {
	if app.Config == nil {
		app.Config = &config.Config{
			Duration:  domain.DefaultDuration,
			Sound:     true,
			LogLevel:  "info",
			LogFormat: "text",
		}
	}

	root := &cobra.Command{
		Use:   "wordpick",
		Short: "Pictionary word picker with a countdown timer",
		Long: "wordpick draws a random word for Pictionary, keeps it hidden until you\n" +
			"hold the reveal key, and runs the drawing countdown. Words are not\n" +
			"repeated until every word has been used or the ledger is reset.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.boot()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(cmd, app)
			}
			return runPick(cmd, app, pickOptions{})
		},
	}

	cfg := app.Config
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (env WORDPICK_DB)")
	pf.StringVar(&cfg.PoolPath, "pool", cfg.PoolPath, "word pool file, JSON or YAML (env WORDPICK_POOL; default built-in)")
	pf.Var(newDurationValue(&cfg.Duration), "duration", fmt.Sprintf("countdown length in seconds, one of %v (env WORDPICK_DURATION)", domain.DurationOptions))
	pf.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a fresh one (env WORDPICK_SEED)")

	root.AddCommand(
		newPlayCmd(app),
		newPickCmd(app),
		newPoolCmd(app),
		newLedgerCmd(app),
		newHistoryCmd(app),
	)

	return root
}
