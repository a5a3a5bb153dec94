package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Scores of a finished position. X is the minimizing side: an X win scores
// below an O win no matter which side asked for the move.
const (
	scoreXWins = -1
	scoreOWins = 1
	scoreDraw  = 0

	scoreFloor   = -1000
	scoreCeiling = 1000
)

// Minimax is an exhaustive game-tree search without pruning or memoization.
// Boards are copied on every ply, so a search never mutates the caller's board.
type Minimax struct {
	nodes int
}

func NewMinimax() *Minimax {
	return &Minimax{}
}

// Nodes returns the number of positions visited by the last BestMove or OptimalMove call.
func (that *Minimax) Nodes() int {
	return that.nodes
}

// BestMove places player on every empty cell in index order, scores the
// result with Score(next, false) whoever player is, and keeps the first cell
// with the highest score. With X minimizing, the chosen move is the one the
// fixed scoring prefers for O, not the strongest move for X.
func (that *Minimax) BestMove(board entity.Board, player entity.Mark) (int, error) {
	if player != entity.PlayerX && player != entity.PlayerO {
		return -1, fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidMove, player)
	}

	that.nodes = 0
	bestScore, bestMove := scoreFloor, -1

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = player

		if score := that.score(next, false); score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	if bestMove < 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	return bestMove, nil
}

// Score evaluates board by full search. When maximizing, O is placed next
// and the highest score is kept; otherwise X is placed and the lowest is kept.
func (that *Minimax) Score(board entity.Board, maximizing bool) int {
	return that.score(board, maximizing)
}

func (that *Minimax) score(board entity.Board, maximizing bool) int {
	that.nodes++

	outcome := CheckOutcome(board)
	switch outcome.Status {
	case entity.StatusWin:
		if outcome.Winner == entity.PlayerX {
			return scoreXWins
		}
		return scoreOWins
	case entity.StatusDraw:
		return scoreDraw
	case entity.StatusInProgress:
	}

	if maximizing {
		best := scoreFloor
		for _, cell := range board.EmptyCells() {
			next := board
			next[cell] = entity.PlayerO
			best = max(best, that.score(next, false))
		}
		return best
	}

	best := scoreCeiling
	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = entity.PlayerX
		best = min(best, that.score(next, true))
	}
	return best
}

// OptimalMove is the corrected search: both sides alternate properly and the
// score is taken from the mover's point of view. Ties go to the lowest index.
func (that *Minimax) OptimalMove(board entity.Board, player entity.Mark) (int, error) {
	if player != entity.PlayerX && player != entity.PlayerO {
		return -1, fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidMove, player)
	}

	that.nodes = 0
	bestScore, bestMove := scoreFloor, -1

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = player

		if score := -that.negamax(next, player.Opponent()); score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	if bestMove < 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	return bestMove, nil
}

// negamax scores board for mover: 1 win, 0 draw, -1 loss.
func (that *Minimax) negamax(board entity.Board, mover entity.Mark) int {
	that.nodes++

	outcome := CheckOutcome(board)
	switch outcome.Status {
	case entity.StatusWin:
		if outcome.Winner == mover {
			return 1
		}
		return -1
	case entity.StatusDraw:
		return 0
	case entity.StatusInProgress:
	}

	best := scoreFloor
	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = mover
		best = max(best, -that.negamax(next, mover.Opponent()))
	}

	return best
}
