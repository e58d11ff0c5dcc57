package engine

import (
	"spill/experiments/metrics"
	"spill/game"
)

// MaxMoves caps a runaway game. Chain reactions end games far sooner in
// practice; the cap only guards a misbehaving player pairing.
const MaxMoves = 10000

type Engine interface {
	// Run starts a game till there's a winner or a max number of moves is
	// reached.
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
