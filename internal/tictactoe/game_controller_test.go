package tictactoe

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController() *GameController {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewGameController(logger, entity.NewGame())
}

func TestToEngine(t *testing.T) {
	cases := []struct {
		x, y     int
		row, col int
	}{
		{1, 1, 2, 0},
		{1, 3, 0, 0},
		{3, 3, 0, 2},
		{2, 2, 1, 1},
		{3, 1, 2, 2},
		{0, 4, -1, -1},
	}

	for _, tc := range cases {
		row, col := ToEngine(tc.x, tc.y)

		assert.Equal(t, tc.row, row, "x=%d y=%d", tc.x, tc.y)
		assert.Equal(t, tc.col, col, "x=%d y=%d", tc.x, tc.y)
	}
}

func TestGameController_Play(t *testing.T) {
	t.Run("Places mark in player coordinates", func(t *testing.T) {
		// Given: a new game
		controller := newController()

		// When: X plays "1 3", the top left corner
		outcome := controller.Play(1, 3)

		// Then: the engine cell (0,0) holds X and it is O's turn
		require.Equal(t, entity.MoveOK, outcome)
		assert.Equal(t, entity.PlayerX, controller.Game().Cell(0, 0))
		assert.Equal(t, entity.PlayerO, controller.Game().Turn)
	})

	t.Run("Out of range coordinates", func(t *testing.T) {
		// Given: a new game
		controller := newController()

		// When: a coordinate of 4 is played
		outcome := controller.Play(4, 1)

		// Then: the move is rejected and X still moves
		assert.Equal(t, entity.MoveOutOfRange, outcome)
		assert.Equal(t, entity.PlayerX, controller.Game().Turn)
		assert.Equal(t, MsgOutOfRange, Message(outcome))
	})

	t.Run("Full game until X wins", func(t *testing.T) {
		// Given: a new game
		controller := newController()

		// When: X completes the bottom row
		require.Equal(t, entity.MoveOK, controller.Play(1, 1))
		require.Equal(t, entity.MoveOK, controller.Play(1, 2))
		require.Equal(t, entity.MoveOK, controller.Play(2, 1))
		require.Equal(t, entity.MoveOccupied, controller.Play(2, 1))
		require.Equal(t, entity.MoveOK, controller.Play(2, 2))
		outcome := controller.Play(3, 1)

		// Then: X wins and later moves are refused
		assert.Equal(t, entity.MoveXWins, outcome)
		assert.Equal(t, "X wins", Message(outcome))
		assert.Equal(t, entity.MoveFinished, controller.Play(3, 3))
	})
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Message(entity.MoveOK))
	assert.Equal(t, MsgOccupied, Message(entity.MoveOccupied))
	assert.Equal(t, "O wins", Message(entity.MoveOWins))
	assert.Equal(t, "Draw", Message(entity.MoveDraw))
	assert.Equal(t, MsgFinished, Message(entity.MoveFinished))
}

func TestCheckBoard(t *testing.T) {
	t.Run("Valid board", func(t *testing.T) {
		state, err := CheckBoard("XXXOO    ")

		require.NoError(t, err)
		assert.Equal(t, entity.StateXWins, state)
	})

	t.Run("Invalid board", func(t *testing.T) {
		state, err := CheckBoard("XXXOO")

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Empty(t, state)
	})
}
