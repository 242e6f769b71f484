package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// Session drives one game from a line-oriented input until it ends.
type Session struct {
	logger     *slog.Logger
	controller *tictactoe.GameController
	renderer   *Renderer

	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

func NewSession(
	logger *slog.Logger,
	controller *tictactoe.GameController,
	renderer *Renderer,
	in io.Reader,
	out io.Writer,
	prompt string,
) *Session {
	return &Session{
		logger:     logger.With("component", "console"),
		controller: controller,
		renderer:   renderer,
		scanner:    bufio.NewScanner(in),
		out:        out,
		prompt:     prompt,
	}
}

// Run - plays until a win or a draw. Returns apperror.ErrInputClosed if the input ends first.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	if err := that.renderer.Draw(that.controller.Game().Snapshot()); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		line, err := that.readLine()
		if err != nil {
			return err
		}

		x, y, err := ParseCoordinates(line)
		if err != nil {
			log.Debug("input rejected", "input", line, "error", err)
			if err = that.println(MsgNotNumbers); err != nil {
				return err
			}
			continue
		}

		outcome := that.controller.Play(x, y)
		if outcome.IsRejected() {
			if err = that.println(tictactoe.Message(outcome)); err != nil {
				return err
			}
			continue
		}

		if err = that.renderer.Draw(that.controller.Game().Snapshot()); err != nil {
			return err
		}

		if outcome.IsTerminal() {
			log.Info("game finished", "result", outcome.String())
			return that.println(tictactoe.Message(outcome))
		}
	}
}

func (that *Session) readLine() (string, error) {
	if _, err := io.WriteString(that.out, that.prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", apperror.ErrInputClosed
	}

	return that.scanner.Text(), nil
}

func (that *Session) println(msg string) error {
	if _, err := fmt.Fprintln(that.out, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
