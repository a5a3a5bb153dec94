package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// GameController owns a single game and validates every move applied to it.
type GameController struct {
	game *entity.Game
}

func NewGameController(game *entity.Game) *GameController {
	if game == nil {
		game = entity.NewGame()
	}

	return &GameController{game: game}
}

// ApplyMove places the current player's mark on cell and passes the turn
// unless the move ended the game. Rejected moves leave the game untouched.
func (that *GameController) ApplyMove(cell int) (entity.Outcome, error) {
	if err := validateMove(that.game, cell); err != nil {
		return CheckOutcome(that.game.Board), fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	that.game.Board[cell] = that.game.Turn

	outcome := CheckOutcome(that.game.Board)
	if !outcome.IsTerminal() {
		that.game.Turn = that.game.Turn.Opponent()
	}

	return outcome, nil
}

// Reset clears the board and gives the first move to X.
func (that *GameController) Reset() {
	that.game.Board = entity.Board{}
	that.game.Turn = entity.PlayerX
}

// Board returns a copy of the current board.
func (that *GameController) Board() entity.Board {
	return that.game.Board
}

func (that *GameController) Turn() entity.Mark {
	return that.game.Turn
}

func (that *GameController) Outcome() entity.Outcome {
	return CheckOutcome(that.game.Board)
}

func (that *GameController) MoveCount() int {
	return entity.BoardSize - len(that.game.Board.EmptyCells())
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, cell int) error {
	if CheckOutcome(game.Board).IsTerminal() {
		return apperror.ErrGameFinished
	}

	if !game.Board.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// CheckOutcome works on any board, legal or not: the first winning line in
// WinCombos order decides the winner.
func CheckOutcome(board entity.Board) entity.Outcome {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Win(a)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.InProgress()
	}

	return entity.Draw()
}
