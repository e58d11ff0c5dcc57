package game

import "errors"

var (
	// ErrOutOfRange reports a row/column or square index outside the board.
	ErrOutOfRange = errors.New("square out of range")

	// ErrIllegalMove reports an attempt to add a spot when the move is not
	// legal: wrong side's turn, game already won, or the target square is
	// held by the opponent.
	ErrIllegalMove = errors.New("illegal move")
)
