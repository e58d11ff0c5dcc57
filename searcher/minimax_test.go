package searcher

import (
	"math"
	"testing"
	"time"

	"spill/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMaterial(t *testing.T) {
	b := game.New(3)
	require.Equal(t, 0, Material(b), "fresh board is level")

	require.NoError(t, b.AddSpot(game.Red, 4))
	require.Equal(t, 1, Material(b))

	for r := 1; r <= 3; r++ {
		for c := 1; c <= 3; c++ {
			require.NoError(t, b.Set(r, c, 1, game.Blue))
		}
	}
	require.Equal(t, -WinValue, Material(b), "a Blue win dominates any material count")
}

func TestFindMoveForcedWin(t *testing.T) {
	t.Run("Red to move", func(t *testing.T) {
		// Red holds three squares; exploding either loaded corner sweeps the
		// board. 6 spots in total keeps Red on move.
		b := game.New(2)
		require.NoError(t, b.Set(1, 1, 2, game.Red))
		require.NoError(t, b.Set(1, 2, 2, game.Red))
		require.NoError(t, b.Set(2, 1, 1, game.Red))
		require.NoError(t, b.Set(2, 2, 1, game.Blue))
		require.Equal(t, game.Red, b.WhoseMove())

		move, _, err := New().FindMove(b, game.Red)

		require.NoError(t, err)
		// Squares 0 and 1 both win; equal values keep the later move.
		require.Equal(t, 1, move)
	})

	t.Run("Blue to move", func(t *testing.T) {
		b := game.New(2)
		require.NoError(t, b.Set(1, 1, 2, game.Blue))
		require.NoError(t, b.Set(1, 2, 2, game.Blue))
		require.NoError(t, b.Set(2, 1, 2, game.Blue))
		require.NoError(t, b.Set(2, 2, 1, game.Red))
		require.Equal(t, game.Blue, b.WhoseMove())

		move, _, err := New().FindMove(b, game.Blue)

		require.NoError(t, err)
		// Every Blue move wins; the last one examined is kept.
		require.Equal(t, 2, move)
	})
}

func TestFindMoveTieBreak(t *testing.T) {
	// On a fresh 2x2 board every move evaluates level, so the engine keeps
	// the last candidate in increasing index order.
	b := game.New(2)

	move, _, err := New().FindMove(b, game.Red)

	require.NoError(t, err)
	require.Equal(t, 3, move)
}

func TestFindMoveLeavesBoardAlone(t *testing.T) {
	b := game.New(3)
	require.NoError(t, b.AddSpot(game.Red, 4))
	before := game.NewFrom(b)

	move, _, err := New().FindMove(b, game.Blue)

	require.NoError(t, err)
	require.True(t, b.IsLegal(game.Blue, move))
	require.True(t, b.Equal(before), "the search works on a private copy")
}

func TestFindMoveNoLegalMove(t *testing.T) {
	t.Run("game already won", func(t *testing.T) {
		b := game.New(2)
		for r := 1; r <= 2; r++ {
			for c := 1; c <= 2; c++ {
				require.NoError(t, b.Set(r, c, 1, game.Blue))
			}
		}

		_, _, err := New().FindMove(b, game.Red)
		require.Error(t, err)
	})

	t.Run("not the side's turn", func(t *testing.T) {
		b := game.New(3)

		_, _, err := New().FindMove(b, game.Blue)
		require.Error(t, err)
	})
}

// plainMinimax is an unpruned reference search used to check that alpha-beta
// never changes the computed value.
func plainMinimax(b *game.Board, depth, sense int, evaluate Evaluate) int {
	if depth == 0 || b.Winner() != game.None {
		return evaluate(b)
	}
	side, best := game.Red, math.MinInt
	if sense == -1 {
		side, best = game.Blue, math.MaxInt
	}
	for i := 0; i < b.Size()*b.Size(); i++ {
		if !b.IsLegal(side, i) {
			continue
		}
		if err := b.AddSpot(side, i); err != nil {
			panic(err)
		}
		value := plainMinimax(b, depth-1, -sense, evaluate)
		b.Undo()
		if sense == 1 {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	return best
}

func TestPruningPreservesValue(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b := game.New(3)
	m := New()

	moves := 0
	for b.Winner() == game.None {
		require.Less(t, moves, 100, "a 3x3 game must end long before 100 moves")
		moves++
		sense := 1
		side := b.WhoseMove()
		if side == game.Blue {
			sense = -1
		}

		work := game.NewFrom(b)
		got := m.minMax(work, 2, false, sense, math.MinInt, math.MaxInt)
		want := plainMinimax(game.NewFrom(b), 2, sense, Material)
		require.Equal(t, want, got, "pruned and plain search disagree on %s", b)

		legal := []int{}
		for i := 0; i < 9; i++ {
			if b.IsLegal(side, i) {
				legal = append(legal, i)
			}
		}
		require.NoError(t, b.AddSpot(side, legal[rng.Intn(len(legal))]))
	}
}

func TestFindMoveMetrics(t *testing.T) {
	b := game.New(3)

	_, metric, err := New(WithDepth(3)).FindMove(b, game.Red)

	require.NoError(t, err)
	require.Equal(t, 3, metric.Depth)
	require.Greater(t, metric.Nodes, 9, "a 3-ply search visits more than the root's children")
	require.GreaterOrEqual(t, metric.Cutoffs, 0)
	require.Greater(t, metric.Duration, time.Duration(0))
}

func TestOptions(t *testing.T) {
	flat := func(*game.Board) int { return 0 }
	m := New(WithDepth(4), WithEvaluationFn(flat), WithSeed(7))

	require.Equal(t, 4, m.depth)
	require.NotNil(t, m.rng)

	m = New(WithDepth(0))
	require.Equal(t, DefaultDepth, m.depth, "non-positive depth keeps the default")
}
