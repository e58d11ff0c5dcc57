package game

// Side identifies who holds a square: one of the two players, or nobody.
type Side int

const (
	None Side = iota // neutral
	Red              // first mover
	Blue
)

// Opposite returns the opposing player, or None for None.
func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return None
	}
}

func (s Side) String() string {
	switch s {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	default:
		return "Neutral"
	}
}

// letter is the one-character encoding used in board dumps.
func (s Side) letter() rune {
	switch s {
	case Red:
		return 'r'
	case Blue:
		return 'b'
	default:
		return '-'
	}
}

// Square is the contents of one board position: its holder and its spot count.
// Squares are plain values; the board replaces them wholesale on mutation.
type Square struct {
	Side  Side
	Spots int
}

// Initial is the starting contents of every square: one neutral spot.
var Initial = Square{Side: None, Spots: 1}

// square builds a Square, forcing neutral ownership on an empty square.
func square(side Side, spots int) Square {
	if spots <= 0 {
		return Square{Side: None, Spots: 0}
	}
	return Square{Side: side, Spots: spots}
}
