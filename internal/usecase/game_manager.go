package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameController interface {
	ApplyMove(cell int) (entity.Outcome, error)
	Reset()

	Board() entity.Board
	Turn() entity.Mark
	Outcome() entity.Outcome
}

type botService interface {
	ChooseCell(board entity.Board, player entity.Mark) (int, error)
}

// GameManager applies the mode's rules on top of a single game: human moves
// come in through Play, computer moves are made for every side the mode hands
// to the computer.
type GameManager struct {
	logger *slog.Logger

	mode       entity.Mode
	controller gameController
	bot        botService
}

func NewGameManager(logger *slog.Logger, mode entity.Mode, controller gameController, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		mode:       mode,
		controller: controller,
		bot:        bot,
	}
}

func (that *GameManager) Mode() entity.Mode {
	return that.mode
}

func (that *GameManager) Board() entity.Board {
	return that.controller.Board()
}

func (that *GameManager) Turn() entity.Mark {
	return that.controller.Turn()
}

func (that *GameManager) Outcome() entity.Outcome {
	return that.controller.Outcome()
}

// NewGame switches to mode and starts over.
func (that *GameManager) NewGame(mode entity.Mode) (entity.Outcome, error) {
	that.mode = mode

	return that.Reset()
}

// Reset clears the board. In CvC the computer then plays the game out.
func (that *GameManager) Reset() (entity.Outcome, error) {
	that.controller.Reset()
	that.logger.Info("game reset", "mode", that.mode.String())

	return that.playComputer()
}

// Play applies a human move and lets the computer answer when the mode gives
// it the side to move next.
func (that *GameManager) Play(cell int) (entity.Outcome, error) {
	log := that.logger.With("method", "Play", "cell", cell)

	turn := that.controller.Turn()
	if that.mode.ComputerPlays(turn) {
		return that.controller.Outcome(), fmt.Errorf("%w: %s is played by the computer", apperror.ErrNotYourTurn, turn)
	}

	outcome, err := that.controller.ApplyMove(cell)
	if err != nil {
		log.Debug("move rejected", "error", err)
		return outcome, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Info("human move", "player", turn.String())

	if outcome.IsTerminal() {
		that.logOutcome(outcome)
		return outcome, nil
	}

	return that.playComputer()
}

// Step makes one computer move for the side to move, whatever the mode.
func (that *GameManager) Step() (entity.Outcome, error) {
	outcome := that.controller.Outcome()
	if outcome.IsTerminal() {
		return outcome, apperror.ErrGameFinished
	}

	turn := that.controller.Turn()

	cell, err := that.bot.ChooseCell(that.controller.Board(), turn)
	if err != nil {
		return outcome, fmt.Errorf("bot failed to choose cell: %w", err)
	}

	if outcome, err = that.controller.ApplyMove(cell); err != nil {
		return outcome, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Info("computer move", "player", turn.String(), "cell", cell)

	if outcome.IsTerminal() {
		that.logOutcome(outcome)
	}

	return outcome, nil
}

func (that *GameManager) playComputer() (entity.Outcome, error) {
	outcome := that.controller.Outcome()

	for !outcome.IsTerminal() && that.mode.ComputerPlays(that.controller.Turn()) {
		var err error
		if outcome, err = that.Step(); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}

func (that *GameManager) logOutcome(outcome entity.Outcome) {
	that.logger.Info("game over", "mode", that.mode.String(), "outcome", outcome.String())
}
