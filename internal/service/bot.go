package service

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type BotService interface {
	ChooseCell(board entity.Board, player entity.Mark) (int, error)
}

type moveEngine interface {
	BestMove(board entity.Board, player entity.Mark) (int, error)
	OptimalMove(board entity.Board, player entity.Mark) (int, error)
	Nodes() int
}

type botService struct {
	logger *slog.Logger

	policy entity.Policy
	engine moveEngine
	random *rand.Rand
}

func NewBotService(logger *slog.Logger, policy entity.Policy, engine moveEngine, seed uint64) BotService {
	return &botService{
		logger: logger.With("component", "bot", "policy", policy.String()),
		policy: policy,
		engine: engine,
		random: rand.New(rand.NewSource(seed)),
	}
}

// ChooseCell picks the computer's cell for player. The classic policy only
// searches for X; O takes a uniformly random empty cell.
func (that *botService) ChooseCell(board entity.Board, player entity.Mark) (int, error) {
	log := that.logger.With("method", "ChooseCell", "player", player.String())

	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	var (
		cell int
		err  error
	)

	switch that.policy {
	case entity.PolicySymmetric:
		cell, err = that.engine.OptimalMove(board, player)
	case entity.PolicyClassic:
		if player != entity.PlayerX {
			cell = availableCells[that.random.Intn(len(availableCells))]
			log.Debug("random cell chosen", "cell", cell)
			return cell, nil
		}
		cell, err = that.engine.BestMove(board, player)
	default:
		return -1, fmt.Errorf("%w: %d", apperror.ErrUnknownPolicy, that.policy)
	}

	if err != nil {
		return -1, fmt.Errorf("search failed: %w", err)
	}

	log.Debug("searched cell chosen", "cell", cell, "nodes", that.engine.Nodes())

	return cell, nil
}
