package engine

import (
	"fmt"
	"time"

	"spill/experiments/metrics"
	"spill/game"
	"spill/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Local runs a synchronous game between two in-process players on one
// authoritative board.
type Local struct {
	ID    uuid.UUID
	Board *game.Board
	red   player.Player
	blue  player.Player
}

func NewLocal(size int, red, blue player.Player) *Local {
	if red.Side() != game.Red || blue.Side() != game.Blue {
		panic("players wired to the wrong sides")
	}
	return &Local{
		ID:    uuid.New(),
		Board: game.New(size),
		red:   red,
		blue:  blue,
	}
}

// Run executes the game loop until a winner is found or MaxMoves is reached.
func (e *Local) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	log.Info().
		Str("game", e.ID.String()).
		Int("size", e.Board.Size()).
		Msgf("game started, %s to move", e.Board.WhoseMove())

	var moveMetrics []metrics.MoveMetric
	step := 0
	for e.Board.Winner() == game.None && step < MaxMoves {
		side := e.Board.WhoseMove()
		current := e.red
		if side == game.Blue {
			current = e.blue
		}

		n, searchMetric, err := current.PickMove(e.Board)
		if err != nil {
			return game.None, metrics.GameMetric{}, moveMetrics,
				fmt.Errorf("%s could not pick a move: %w", side, err)
		}
		if err := e.Board.AddSpot(side, n); err != nil {
			return game.None, metrics.GameMetric{}, moveMetrics,
				fmt.Errorf("%s picked a bad move: %w", side, err)
		}
		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         side.String(),
			Move:         e.Board.MoveString(n),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("move %d: %s played %s", step, side, e.Board.MoveString(n))
	}

	winner := e.Board.Winner()
	gameMetric := metrics.GameMetric{
		Size:       e.Board.Size(),
		Winner:     winner.String(),
		TotalMoves: step,
		StartTime:  start,
		EndTime:    time.Now(),
		Duration:   time.Since(start),
	}
	if winner != game.None {
		log.Info().Str("game", e.ID.String()).Msgf("%s wins after %d moves", winner, step)
	} else {
		gameMetric.Winner = ""
		log.Warn().Str("game", e.ID.String()).Msgf("stopped after %d moves with no winner", step)
	}
	return winner, gameMetric, moveMetrics, nil
}
