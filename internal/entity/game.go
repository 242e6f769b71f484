package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

// MoveOutcome is the result of ApplyMove. Rejections are outcomes, not errors.
type MoveOutcome int

const (
	MoveOK MoveOutcome = iota
	MoveOutOfRange
	MoveOccupied
	MoveXWins
	MoveOWins
	MoveDraw
	MoveFinished
)

func (that MoveOutcome) String() string {
	switch that {
	case MoveOK:
		return "ok"
	case MoveOutOfRange:
		return "out_of_range"
	case MoveOccupied:
		return "occupied"
	case MoveXWins:
		return "x_wins"
	case MoveOWins:
		return "o_wins"
	case MoveDraw:
		return "draw"
	case MoveFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// IsTerminal - true for outcomes that end the game.
func (that MoveOutcome) IsTerminal() bool {
	return that == MoveXWins || that == MoveOWins || that == MoveDraw
}

// IsRejected - true for outcomes that left the game untouched.
func (that MoveOutcome) IsRejected() bool {
	return that == MoveOutOfRange || that == MoveOccupied || that == MoveFinished
}

type Game struct {
	Board  Board  `json:"board"`
	Turn   string `json:"player_turn"`
	Winner string `json:"winner"`
	Status string `json:"status"`
}

func NewGame() *Game {
	return &Game{
		Board:  Board{},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// ApplyMove - places the current player's mark at (row, col) and reports what happened.
// The board changes only on a placement; the turn changes only on MoveOK.
func (that *Game) ApplyMove(row, col int) MoveOutcome {
	if !InRange(row, col) {
		return MoveOutOfRange
	}

	if that.IsFinished() {
		return MoveFinished
	}

	if that.Board.Cell(row, col) != EmptyCell {
		return MoveOccupied
	}

	mark := that.Turn
	that.Board[CellIndex(row, col)] = mark

	switch {
	case that.Board.IsWinner(mark):
		that.finish(mark)
		if mark == PlayerX {
			return MoveXWins
		}
		return MoveOWins
	case that.Board.IsFull():
		that.finish(PlayerTie)
		return MoveDraw
	default:
		that.Turn = toggleMark(mark)
		return MoveOK
	}
}

func (that *Game) finish(winner string) {
	that.Winner = winner
	that.Status = StatusFinished
}

// Cell - mark at (row, col), EmptyCell when out of range.
func (that *Game) Cell(row, col int) string {
	if !InRange(row, col) {
		return EmptyCell
	}

	return that.Board.Cell(row, col)
}

// Snapshot - copy of the board, safe to keep after further moves.
func (that *Game) Snapshot() Board {
	return that.Board
}

// State - same verdict EvaluateState gives for the current board.
func (that *Game) State() State {
	return EvaluateState(that.Board)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
