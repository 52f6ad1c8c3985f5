package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/wordpick/internal/alert"
	"github.com/alexanderramin/wordpick/internal/cli"
	"github.com/alexanderramin/wordpick/internal/config"
	"github.com/alexanderramin/wordpick/internal/db"
	"github.com/alexanderramin/wordpick/internal/ledger"
	"github.com/alexanderramin/wordpick/internal/random"
	"github.com/alexanderramin/wordpick/internal/repository"
	"github.com/alexanderramin/wordpick/internal/service"
	"github.com/alexanderramin/wordpick/internal/timer"
	"github.com/alexanderramin/wordpick/internal/wordpool"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i].Close()
		}
	}()

	app := &cli.App{
		Config: cfg,
		Boot: func(app *cli.App) error {
			return wire(app, &closers)
		},
	}

	// Detect interactive terminal for the full-screen picker.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// wire opens storage and builds services once flags have been applied to
// app.Config.
func wire(app *cli.App, closers *[]io.Closer) error {
	ctx := context.Background()
	cfg := app.Config

	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	*closers = append(*closers, logCloser)

	pool, err := wordpool.Load(cfg.PoolPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	*closers = append(*closers, database)

	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		return fmt.Errorf("seeding random source: %w", err)
	}
	logger.Debug("random_seed", "seed", seed)

	// Wire repositories
	kvRepo := repository.NewSQLiteKVRepo(database)
	pickRepo := repository.NewSQLitePickRepo(database)

	used := ledger.Open(ctx, kvRepo, logger)
	observer := service.NewLogUseCaseObserver(logger)

	// Wire services
	app.Logger = logger
	app.Pool = service.NewPoolService(pool, used)
	app.Ledger = service.NewLedgerService(used, observer)
	app.History = service.NewHistoryService(pickRepo)
	app.NewGame = func(sched timer.Scheduler, alerts service.Alerter) (service.GameService, error) {
		return service.NewGameService(service.GameConfig{
			Pool:      pool,
			Ledger:    used,
			Picks:     pickRepo,
			Rand:      rng,
			Scheduler: sched,
			Alerts:    alerts,
			Duration:  cfg.Duration,
			Logger:    logger,
		}, observer)
	}

	app.Vibrator = alert.NoVibration{}
	app.Tones = alert.Silent{}
	if cfg.Sound {
		app.Tones = alert.NewBellPlayer(os.Stderr)
	}
	return nil
}
