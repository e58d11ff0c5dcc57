package searcher

import "spill/game"

// WinValue is a large winning value, chosen to dominate any feasible
// material differential (at most 10*10 squares).
const WinValue = 10000

// Evaluate is a static evaluator: it scores a position from Red's
// perspective, positive values favoring Red.
type Evaluate func(*game.Board) int

// Material is the default evaluator: a won board dominates everything,
// otherwise the difference in squares held.
func Material(b *game.Board) int {
	switch b.Winner() {
	case game.Red:
		return WinValue
	case game.Blue:
		return -WinValue
	default:
		return b.NumOfSide(game.Red) - b.NumOfSide(game.Blue)
	}
}
