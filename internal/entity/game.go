package entity

import "fmt"

// Mark is the content of a single board cell.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// BoardSize is the number of cells on a 3x3 board.
const BoardSize = 9

// WinCombos are the rows, columns and diagonals, in scan order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) String() string {
	if that == EmptyCell {
		return "-"
	}
	return string(that)
}

// Board is indexed row-major: row = i/3, column = i%3.
type Board [BoardSize]Mark

// EmptyCells returns the indices of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that Board) IsValidCell(cell int) bool {
	return cell >= 0 && cell < len(that)
}

// Status of a game, derived from the board.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome is never stored; it is recomputed from a board on demand.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(mark Mark) Outcome {
	return Outcome{Status: StatusWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return fmt.Sprintf("player %s wins", that.Winner)
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// Game is the authoritative board and the side to move.
type Game struct {
	Board Board `json:"board"`
	Turn  Mark  `json:"player_turn"`
}

func NewGame() *Game {
	return &Game{
		Board: Board{},
		Turn:  PlayerX,
	}
}
