package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// RunApp - plays one game on the given console.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return runSession(ctx, logger, conf, in, out)
}

func runSession(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	controller := tictactoe.NewGameController(logger, entity.NewGame())
	renderer := console.NewRenderer(out, conf.Console.Color)
	session := console.NewSession(logger, controller, renderer, in, out, conf.Console.Prompt)

	// the session blocks on input, so it runs aside while we watch the context
	sessionErrCh := make(chan error, 1)
	go func() {
		log.Debug("Starting console session")
		sessionErrCh <- session.Run(ctx)
	}()

	select {
	case err := <-sessionErrCh:
		if errors.Is(err, context.Canceled) {
			log.Info("Console session interrupted")
			return nil
		}
		if err != nil {
			return fmt.Errorf("console session error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// RunCheck - prints the state of a board given as a row-major string.
func RunCheck(logger *slog.Logger, raw string, out io.Writer) error {
	log := logger.With("component", "app", "method", "RunCheck")

	state, err := tictactoe.CheckBoard(raw)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	log.Debug("board checked", "board", raw, "state", state)

	if _, err = fmt.Fprintln(out, state); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}
