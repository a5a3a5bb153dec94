package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrNoMatches = errors.New("matches must be positive")

type gameManager interface {
	Reset() (entity.Outcome, error)
	Play(cell int) (entity.Outcome, error)
	Board() entity.Board
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return runMatches(ctx, logger, conf)
}

func runMatches(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	mode, err := conf.GetMode()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	policy, err := conf.GetPolicy()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if conf.Matches <= 0 {
		return fmt.Errorf("%w: got %d", ErrNoMatches, conf.Matches)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // clock value is never negative
	}

	bot := service.NewBotService(logger, policy, tictactoe.NewMinimax(), seed)
	manager := usecase.NewGameManager(logger, mode, tictactoe.NewGameController(entity.NewGame()), bot)

	log.Info("Starting matches", "mode", mode.String(), "policy", policy.String(), "seed", seed, "matches", conf.Matches)

	results := make(map[string]int)
	for match := 1; match <= conf.Matches; match++ {
		if ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		outcome, err := playMatch(logger, manager, conf.Moves)
		if err != nil {
			return fmt.Errorf("match %d failed: %w", match, err)
		}

		results[outcome.String()]++
		log.Info("Match finished", "match", match, "outcome", outcome.String(), "board", manager.Board())
	}

	log.Info("All matches finished", "results", results)

	return nil
}

// playMatch starts a fresh game and feeds it the scripted human moves until
// the moves run out or the game ends. Rejected moves are skipped.
func playMatch(logger *slog.Logger, manager gameManager, moves []int) (entity.Outcome, error) {
	log := logger.With("method", "playMatch")

	outcome, err := manager.Reset()
	if err != nil {
		return outcome, fmt.Errorf("failed to start game: %w", err)
	}

	for _, cell := range moves {
		if outcome.IsTerminal() {
			break
		}

		next, err := manager.Play(cell)
		if err != nil {
			if errors.Is(err, apperror.ErrInvalidMove) || errors.Is(err, apperror.ErrNotYourTurn) {
				log.Warn("move ignored", "cell", cell, "error", err)
				continue
			}

			return next, fmt.Errorf("failed to play cell %d: %w", cell, err)
		}

		outcome = next
	}

	return outcome, nil
}
