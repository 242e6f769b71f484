package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// WinCombos - rows, columns and both diagonals, interleaved row/column first.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{0, 3, 6},
	{3, 4, 5},
	{1, 4, 7},
	{6, 7, 8},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// State is the verdict of EvaluateState.
type State string

const (
	StateImpossible State = "Impossible"
	StateXWins      State = "X wins"
	StateOWins      State = "O wins"
	StateDraw       State = "Draw"
	StateInProgress State = "Game not finished"
)

// Board holds the cells in row-major order.
type Board [CellCount]string

// ParseBoard - builds a board from a row-major string like "XXXOO    ".
// Spaces and underscores are empty cells.
func ParseBoard(raw string) (Board, error) {
	var board Board

	if len(raw) != CellCount {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, CellCount, len(raw))
	}

	for i, symbol := range []byte(raw) {
		switch symbol {
		case 'X':
			board[i] = PlayerX
		case 'O':
			board[i] = PlayerO
		case ' ', '_':
			board[i] = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q at %d", apperror.ErrInvalidBoard, symbol, i)
		}
	}

	return board, nil
}

func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func CellIndex(row, col int) int {
	return row*BoardSize + col
}

// Cell - returns the mark at (row, col); the coordinates must be in range.
func (that Board) Cell(row, col int) string {
	return that[CellIndex(row, col)]
}

func (that Board) Count(mark string) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

func (that Board) IsWinner(mark string) bool {
	if mark == EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

// String - row-major form accepted by ParseBoard, with blanks for empty cells.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(cell)
	}

	return sb.String()
}

// EvaluateState - checks whether the board could come from a real game and who won it.
// It does not look at whose turn it is.
func EvaluateState(board Board) State {
	countX := board.Count(PlayerX)
	countO := board.Count(PlayerO)
	winnerX := board.IsWinner(PlayerX)
	winnerO := board.IsWinner(PlayerO)

	diff := countX - countO
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff >= 2, winnerX && winnerO:
		return StateImpossible
	case winnerX:
		return StateXWins
	case winnerO:
		return StateOWins
	case board.IsFull():
		return StateDraw
	default:
		return StateInProgress
	}
}
