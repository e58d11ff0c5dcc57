package searcher

import (
	"fmt"
	"math"
	"time"

	"spill/experiments/metrics"
	"spill/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// DefaultDepth is the search depth in plies when no option overrides it.
const DefaultDepth = 2

type Option func(*Minimax)

// Minimax finds moves by bounded-depth minimax search with alpha-beta
// pruning. One instance serves one caller at a time: the search keeps its
// working state on the struct between recursive calls.
type Minimax struct {
	depth    int
	evaluate Evaluate
	rng      *rand.Rand

	// Per-FindMove working state.
	found   int
	nodes   int
	cutoffs int
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithSeed seeds the engine's random-number generator. The generator is
// reserved for randomizing among equal-valued moves; the current search is
// deterministic and does not consult it.
func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func New(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    DefaultDepth,
		evaluate: Material,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best square index for side to add a spot to,
// searching a private working copy of board. The caller must ensure the
// game is not over; FindMove fails if side has no legal move.
func (m *Minimax) FindMove(board *game.Board, side game.Side) (int, metrics.SearchMetric, error) {
	start := time.Now()
	work := game.NewFrom(board)
	m.found = -1
	m.nodes = 0
	m.cutoffs = 0

	sense := 1
	if side == game.Blue {
		sense = -1
	}
	value := m.minMax(work, m.depth, true, sense, math.MinInt, math.MaxInt)

	metric := metrics.SearchMetric{
		Depth:    m.depth,
		Nodes:    m.nodes,
		Cutoffs:  m.cutoffs,
		Duration: time.Since(start),
	}
	if m.found < 0 {
		return -1, metric, fmt.Errorf("no legal move for %s", side)
	}
	log.Debug().
		Str("side", side.String()).
		Str("move", board.MoveString(m.found)).
		Int("value", value).
		Int("nodes", m.nodes).
		Msg("search complete")
	return m.found, metric, nil
}

// minMax finds a move from position b and returns its value, recording the
// move in m.found iff saveMove (true only at the root). The move has maximal
// value when sense is +1 (Red to move) and minimal value when sense is -1
// (Blue to move). Depth 0 or a won board returns the static evaluation.
// Candidates are tried in increasing index order; on equal value the later
// move overwrites the earlier choice. Each branch is explored by mutating b
// in place and must be unwound with Undo before its sibling.
func (m *Minimax) minMax(b *game.Board, depth int, saveMove bool, sense, alpha, beta int) int {
	m.nodes++
	if depth == 0 || b.Winner() != game.None {
		return m.evaluate(b)
	}

	bestMove := -1
	var bestSoFar int
	if sense == 1 {
		bestSoFar = math.MinInt
		for i := 0; i < b.Size()*b.Size(); i++ {
			if !b.IsLegal(game.Red, i) {
				continue
			}
			if err := b.AddSpot(game.Red, i); err != nil {
				panic(err) // move was verified legal
			}
			eval := m.minMax(b, depth-1, false, -1, alpha, beta)
			b.Undo()
			if eval >= bestSoFar {
				bestMove = i
				bestSoFar = eval
			}
			alpha = max(alpha, bestSoFar)
			if beta < alpha {
				m.cutoffs++
				break
			}
		}
	} else {
		bestSoFar = math.MaxInt
		for i := 0; i < b.Size()*b.Size(); i++ {
			if !b.IsLegal(game.Blue, i) {
				continue
			}
			if err := b.AddSpot(game.Blue, i); err != nil {
				panic(err) // move was verified legal
			}
			eval := m.minMax(b, depth-1, false, 1, alpha, beta)
			b.Undo()
			if eval <= bestSoFar {
				bestMove = i
				bestSoFar = eval
			}
			beta = min(beta, bestSoFar)
			if beta < alpha {
				m.cutoffs++
				break
			}
		}
	}

	if saveMove {
		m.found = bestMove
	}
	return bestSoFar
}
