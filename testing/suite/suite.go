package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const maxWaitDuration = 10 * time.Second

const Prompt = "Enter the coordinates: "

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Logs collects everything written through Logger, as JSON lines.
	Logs *bytes.Buffer
	// Out collects the console output of sessions built by NewSession.
	Out *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Logs:   logs,
		Out:    &bytes.Buffer{},
	}
}

// Input - joins lines into a reader the way a user would type them.
func Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// NewSession - builds an uncolored session over a fresh game that writes to Out.
func (that *Suite) NewSession(lines ...string) (*console.Session, *entity.Game) {
	that.Helper()

	game := entity.NewGame()
	controller := tictactoe.NewGameController(that.Logger, game)
	renderer := console.NewRenderer(that.Out, config.ColorNever)

	return console.NewSession(that.Logger, controller, renderer, Input(lines...), that.Out, Prompt), game
}
