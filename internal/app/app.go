// Package app wires configuration, the arithmetic engine, presentation and
// observability into the bigcalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"

	"github.com/agbru/bigcalc/bigint"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/server"
)

// Application represents the bigcalc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Source    bigint.Source
	Metrics   *server.Metrics
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSource sets a custom randomness source, used by tests to make rand
// and isprime deterministic.
func WithSource(src bigint.Source) AppOption {
	return func(a *Application) { a.Source = src }
}

// WithLogger sets a custom logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args is the full argument vector including the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	var cmdArgs []string
	if len(args) > 0 {
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseFlags(cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Source == nil {
		app.Source = bigint.DefaultSource()
	}
	if app.Logger == nil {
		switch {
		case cfg.Verbose:
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		case cfg.Quiet:
			zerolog.SetGlobalLevel(zerolog.ErrorLevel)
		default:
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		app.Logger = logging.NewDefaultLogger()
	}

	return app, nil
}

// Run executes the requested operation and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	presenter := cli.Presenter{Verbose: a.Config.Verbose, Quiet: a.Config.Quiet}

	if a.Config.Op == "" {
		return presenter.PresentError(a.ErrWriter, "bigcalc",
			apperrors.ValidationError{Field: "operation", Message: "no operation given, see -h"})
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.MetricsListen != "" {
		a.Metrics = server.NewMetrics()
		srv := server.NewServer(a.Config.MetricsListen, a.Metrics, a.Logger)
		go func() {
			if err := srv.Start(ctx); err != nil {
				a.Logger.Error("metrics server failed", err)
			}
		}()
	}

	var spin cli.Spinner
	if !a.Config.Quiet {
		spin = cli.NewSpinner(spinner.WithWriter(a.ErrWriter))
		spin.UpdateSuffix(" computing " + a.Config.Op)
		spin.Start()
	}

	start := time.Now()
	result, err := a.executeWithTimeout(ctx, a.Config.Op, a.Config.Args)
	elapsed := time.Since(start)

	if spin != nil {
		spin.Stop()
	}
	if a.Metrics != nil {
		a.Metrics.ObserveOperation(a.Config.Op, elapsed, err)
	}

	if err != nil {
		a.Logger.Error("operation failed", err,
			logging.String("op", a.Config.Op),
			logging.Float64("seconds", elapsed.Seconds()))
		return presenter.PresentError(a.ErrWriter, a.Config.Op, err)
	}

	a.Logger.Debug("operation complete",
		logging.String("op", a.Config.Op),
		logging.Float64("seconds", elapsed.Seconds()))
	presenter.PresentResult(out, a.Config.Op, result, elapsed)
	return apperrors.ExitSuccess
}

// executeWithTimeout runs the operation in its own goroutine so a hung or
// long computation cannot outlive the deadline or a SIGINT.
func (a *Application) executeWithTimeout(ctx context.Context, op string, args []string) (string, error) {
	type outcome struct {
		result string
		err    error
	}
	ch := make(chan outcome, 1)
	go func() {
		r, err := a.execute(op, args)
		ch <- outcome{r, err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", apperrors.TimeoutError{Operation: op, Limit: a.Config.Timeout}
		}
		return "", ctx.Err()
	case o := <-ch:
		return o.result, o.err
	}
}

// IsHelpError checks if the error is a help flag error (-h was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
