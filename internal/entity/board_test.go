package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("Parses marks and blanks", func(t *testing.T) {
		// When: a board string with spaces and underscores is parsed
		board, err := ParseBoard("XO_ X  _O")

		// Then: marks land in row-major order
		require.NoError(t, err)
		expected := Board{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		}
		assert.Equal(t, expected, board)
		assert.Equal(t, "XO  X   O", board.String())
	})

	t.Run("Rejects wrong length", func(t *testing.T) {
		_, err := ParseBoard("XXO")

		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects unknown symbol", func(t *testing.T) {
		_, err := ParseBoard("XXOx     ")

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Contains(t, err.Error(), "'x'")
	})
}

func TestEvaluateState(t *testing.T) {
	cases := []struct {
		name     string
		board    string
		expected State
	}{
		{"X wins on top row", "XXXOO    ", StateXWins},
		{"O wins on anti diagonal", "XXOXO O  ", StateOWins},
		{"Draw", "XOXXOOOXX", StateDraw},
		{"Empty board", "         ", StateInProgress},
		{"Game in progress", "XO  X    ", StateInProgress},
		{"Both players win", "XXXOOO   ", StateImpossible},
		{"Too many X", "XXX      ", StateImpossible},
		{"Too many O", "OOOX     ", StateImpossible},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a parsed board
			board, err := ParseBoard(tc.board)
			require.NoError(t, err)

			// When: its state is evaluated twice
			first := EvaluateState(board)
			second := EvaluateState(board)

			// Then: the verdict matches and the query has no side effects
			assert.Equal(t, tc.expected, first)
			assert.Equal(t, first, second)
			assert.Equal(t, tc.board, board.String())
		})
	}
}

func TestBoard_IsWinner(t *testing.T) {
	for i, combo := range WinCombos {
		var board Board
		for _, idx := range combo {
			board[idx] = PlayerO
		}

		assert.True(t, board.IsWinner(PlayerO), "line %d", i)
		assert.False(t, board.IsWinner(PlayerX), "line %d", i)
	}

	assert.False(t, Board{}.IsWinner(EmptyCell))
}

func TestBoard_Cell(t *testing.T) {
	board, err := ParseBoard("XO      O")
	require.NoError(t, err)

	assert.Equal(t, PlayerX, board.Cell(0, 0))
	assert.Equal(t, PlayerO, board.Cell(0, 1))
	assert.Equal(t, PlayerO, board.Cell(2, 2))
	assert.Equal(t, EmptyCell, board.Cell(1, 1))
}
