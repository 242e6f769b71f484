package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	MsgOutOfRange = "Coordinates should be from 1 to 3!"
	MsgOccupied   = "This cell is occupied! Choose another one!"
	MsgFinished   = "Game is already finished!"
)

type GameController struct {
	logger *slog.Logger
	game   *entity.Game
}

func NewGameController(logger *slog.Logger, game *entity.Game) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller"),
		game:   game,
	}
}

func (that *GameController) Game() *entity.Game {
	return that.game
}

// Play - applies a move given in player coordinates: x is the column counted from the left,
// y is the row counted from the bottom, both starting at 1.
func (that *GameController) Play(x, y int) entity.MoveOutcome {
	row, col := ToEngine(x, y)
	mark := that.game.Turn

	outcome := that.game.ApplyMove(row, col)

	that.logger.Debug("move applied",
		"mark", mark,
		"row", row,
		"col", col,
		"outcome", outcome.String(),
	)

	return outcome
}

// ToEngine - converts player coordinates into the zero-indexed row and column.
func ToEngine(x, y int) (int, int) {
	return entity.BoardSize - y, x - 1
}

// Message - text shown to the player for an outcome; empty for an ordinary move.
func Message(outcome entity.MoveOutcome) string {
	switch outcome {
	case entity.MoveOutOfRange:
		return MsgOutOfRange
	case entity.MoveOccupied:
		return MsgOccupied
	case entity.MoveXWins:
		return string(entity.StateXWins)
	case entity.MoveOWins:
		return string(entity.StateOWins)
	case entity.MoveDraw:
		return string(entity.StateDraw)
	case entity.MoveFinished:
		return MsgFinished
	default:
		return ""
	}
}

// CheckBoard - evaluates a board given as a row-major string.
func CheckBoard(raw string) (entity.State, error) {
	board, err := entity.ParseBoard(raw)
	if err != nil {
		return "", fmt.Errorf("invalid board: %w", err)
	}

	return entity.EvaluateState(board), nil
}
