package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/wordpick/internal/alert"
	"github.com/alexanderramin/wordpick/internal/cli/formatter"
	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/alexanderramin/wordpick/internal/service"
	"github.com/alexanderramin/wordpick/internal/timer"
	"github.com/spf13/cobra"
)

// headlessTick is the countdown interval of pick --timer.
var headlessTick = time.Second

type pickOptions struct {
	timer  bool
	reveal bool
}

func newPickCmd(app *App) *cobra.Command {
	var opts pickOptions

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Draw one word without the full-screen interface",
		Example: "  wordpick pick --reveal\n" +
			"  wordpick pick --timer --duration 90",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.timer, "timer", false, "run the countdown after drawing")
	cmd.Flags().BoolVar(&opts.reveal, "reveal", false, "print the word (hidden by default)")

	return cmd
}

func runPick(cmd *cobra.Command, app *App, opts pickOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	sched := timer.NewTickerScheduler(headlessTick)
	defer sched.Cancel()
	dispatcher := app.newDispatcher(alert.NewWriterNotifier(cmd.ErrOrStderr(), renderNotificationLine))

	game, err := app.NewGame(sched, dispatcher)
	if err != nil {
		return err
	}

	sel, err := game.SelectWord(ctx)
	if errors.Is(err, domain.ErrExhausted) && app.interactive() {
		ok, cerr := app.confirm("All words used. Reset the ledger?")
		if cerr != nil {
			return cerr
		}
		if ok {
			game.Reset(ctx)
			sel, err = game.SelectWord(ctx)
		}
	}
	if err != nil {
		if errors.Is(err, domain.ErrExhausted) {
			return fmt.Errorf("%w: run 'wordpick ledger reset' to start over", err)
		}
		return err
	}

	fmt.Fprint(out, formatter.FormatSelection(sel, game.Snapshot().Color, opts.reveal))
	if !opts.timer {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return runCountdown(ctx, out, game, sched, dispatcher)
}

// runCountdown drives the timer from the ticker until it expires or ctx ends.
func runCountdown(ctx context.Context, out io.Writer, game service.GameService, sched *timer.TickerScheduler, dispatcher *alert.Dispatcher) error {
	if err := game.Start(ctx); err != nil {
		return err
	}
	snap := game.Snapshot()
	fmt.Fprintf(out, "\r%s", formatter.FormatCountdown(snap.Remaining, snap.Duration))

	for {
		select {
		case <-ctx.Done():
			game.Stop(context.WithoutCancel(ctx))
			snap := game.Snapshot()
			fmt.Fprintf(out, "\n%s\n", formatter.Dim("Stopped with "+formatter.Clock(snap.Remaining)+" left."))
			return nil
		case <-sched.C():
			expired := game.Tick(ctx)
			snap := game.Snapshot()
			fmt.Fprintf(out, "\r%s", formatter.FormatCountdown(snap.Remaining, snap.Duration))
			if expired {
				fmt.Fprintln(out)
				dispatcher.Wait()
				return nil
			}
		}
	}
}

func renderNotificationLine(n alert.Notification) string {
	return formatter.StyleRed.Bold(true).Render(n.Title) + " " + n.Body
}
