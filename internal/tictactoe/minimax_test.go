package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestMinimax_Score(t *testing.T) {
	engine := NewMinimax()

	t.Run("X win scores -1 and O win scores +1", func(t *testing.T) {
		assert.Equal(t, -1, engine.Score(entity.Board{x, x, x, o, o, e, e, e, e}, true))
		assert.Equal(t, 1, engine.Score(entity.Board{o, o, o, x, x, e, x, e, e}, false))
	})

	t.Run("Draw scores 0", func(t *testing.T) {
		assert.Equal(t, 0, engine.Score(entity.Board{x, o, x, x, o, o, o, x, x}, true))
	})

	t.Run("Empty board is a draw under both flags", func(t *testing.T) {
		assert.Equal(t, 0, engine.Score(entity.Board{}, false))
		assert.Equal(t, 0, engine.Score(entity.Board{}, true))
	})

	t.Run("Does not mutate the board", func(t *testing.T) {
		board := entity.Board{x, e, e, e, o, e, e, e, e}
		snapshot := board

		engine.Score(board, false)

		assert.Equal(t, snapshot, board)
	})
}

func TestMinimax_BestMove(t *testing.T) {
	t.Run("Empty board picks the first cell for either player", func(t *testing.T) {
		// Given: an empty board where every cell ties
		engine := NewMinimax()

		// When: asking for the best move
		moveX, err := engine.BestMove(entity.Board{}, entity.PlayerX)
		require.NoError(t, err)
		moveO, err := engine.BestMove(entity.Board{}, entity.PlayerO)
		require.NoError(t, err)

		// Then: the lowest index wins the tie
		assert.Equal(t, 0, moveX)
		assert.Equal(t, 0, moveO)
		assert.Positive(t, engine.Nodes())
	})

	t.Run("Result is reproducible", func(t *testing.T) {
		engine := NewMinimax()
		board := entity.Board{x, e, e, e, o, e, e, e, e}

		first, err := engine.BestMove(board, entity.PlayerX)
		require.NoError(t, err)
		nodes := engine.Nodes()

		second, err := engine.BestMove(board, entity.PlayerX)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, nodes, engine.Nodes())
	})

	t.Run("Completes an open row for X", func(t *testing.T) {
		// Given: X to move with two in the top row
		engine := NewMinimax()
		board := entity.Board{x, x, e, o, o, e, e, e, e}

		// When: asking for X's best move
		move, err := engine.BestMove(board, entity.PlayerX)
		require.NoError(t, err)

		// Then: cell 2 is chosen and wins
		assert.Equal(t, 2, move)
		board[move] = entity.PlayerX
		assert.Equal(t, entity.Win(entity.PlayerX), CheckOutcome(board))
	})

	t.Run("Never returns an occupied cell", func(t *testing.T) {
		engine := NewMinimax()
		boards := []entity.Board{
			{x, e, e, e, e, e, e, e, e},
			{x, o, e, e, x, e, e, e, e},
			{x, o, x, o, x, e, e, e, o},
			{x, o, x, x, o, o, o, e, e},
			{o, x, o, x, x, o, e, o, x},
		}

		for _, board := range boards {
			for _, player := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
				move, err := engine.BestMove(board, player)
				require.NoError(t, err)
				assert.Equal(t, entity.EmptyCell, board[move], "board %v player %s", board, player)
			}
		}
	})

	t.Run("Full board has no available moves", func(t *testing.T) {
		engine := NewMinimax()

		_, err := engine.BestMove(entity.Board{x, o, x, x, o, o, o, x, x}, entity.PlayerX)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Rejects an empty mark as the player", func(t *testing.T) {
		engine := NewMinimax()

		_, err := engine.BestMove(entity.Board{}, entity.EmptyCell)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

// With minimax on both sides the fixed X-min/O-max scoring makes X pick moves
// that are good for O, so self-play does not reach the draw that correct
// play guarantees.
func TestMinimax_BestMove_SelfPlayExposesInvertedScoring(t *testing.T) {
	// Given: an empty game where both sides use BestMove
	engine := NewMinimax()
	controller := NewGameController(entity.NewGame())

	var (
		played  []int
		outcome = controller.Outcome()
	)

	// When: the game is played out
	for !outcome.IsTerminal() {
		move, err := engine.BestMove(controller.Board(), controller.Turn())
		require.NoError(t, err)

		played = append(played, move)
		outcome, err = controller.ApplyMove(move)
		require.NoError(t, err)
	}

	// Then: O wins instead of the expected draw
	assert.Equal(t, []int{0, 4, 1, 2, 5, 6}, played)
	assert.Equal(t, entity.Win(entity.PlayerO), outcome)
}

func TestMinimax_OptimalMove(t *testing.T) {
	t.Run("Self-play ends in a draw", func(t *testing.T) {
		// Given: an empty game where both sides use OptimalMove
		engine := NewMinimax()
		controller := NewGameController(entity.NewGame())

		var (
			played  []int
			outcome = controller.Outcome()
		)

		// When: the game is played out
		for !outcome.IsTerminal() {
			move, err := engine.OptimalMove(controller.Board(), controller.Turn())
			require.NoError(t, err)

			played = append(played, move)
			outcome, err = controller.ApplyMove(move)
			require.NoError(t, err)
		}

		// Then: perfect play by both sides is a draw
		assert.Equal(t, []int{0, 4, 1, 2, 6, 3, 5, 7, 8}, played)
		assert.Equal(t, entity.Draw(), outcome)
	})

	t.Run("Takes an immediate win", func(t *testing.T) {
		engine := NewMinimax()

		move, err := engine.OptimalMove(entity.Board{x, x, e, o, o, e, e, e, e}, entity.PlayerX)

		require.NoError(t, err)
		assert.Equal(t, 2, move)
	})

	t.Run("Blocks the opponent's row", func(t *testing.T) {
		// Given: X threatens the top row and O is to move
		engine := NewMinimax()
		board := entity.Board{x, x, e, o, e, e, e, e, e}

		// When: asking for O's move
		move, err := engine.OptimalMove(board, entity.PlayerO)

		// Then: O blocks at cell 2
		require.NoError(t, err)
		assert.Equal(t, 2, move)
	})

	t.Run("Full board has no available moves", func(t *testing.T) {
		engine := NewMinimax()

		_, err := engine.OptimalMove(entity.Board{x, o, x, x, o, o, o, x, x}, entity.PlayerO)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}
