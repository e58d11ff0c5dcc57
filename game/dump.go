package game

import (
	"fmt"
	"strings"
)

// String returns the dumped representation: "===" fences around rows of
// "<spots><letter>" tokens, with a trailing win announcement once a side
// holds the whole board.
func (b *Board) String() string {
	var out strings.Builder
	out.WriteString("===\n")
	for r := 1; r <= b.size; r++ {
		out.WriteString("    ")
		for c := 1; c <= b.size; c++ {
			sq := b.squares[b.SqNum(r, c)]
			fmt.Fprintf(&out, "%d%c ", sq.Spots, sq.Side.letter())
		}
		out.WriteString("\n")
	}
	out.WriteString("===")
	if winner := b.Winner(); winner != None {
		fmt.Fprintf(&out, "%s wins.", winner)
	}
	return out.String()
}

// DisplayString returns a rendition suitable for human-readable textual
// display, with row and column numbers. This is distinct from the dumped
// representation returned by String.
func (b *Board) DisplayString() string {
	var out strings.Builder
	for r := 1; r <= b.size; r++ {
		row := make([]string, 0, b.size)
		for c := 1; c <= b.size; c++ {
			sq := b.squares[b.SqNum(r, c)]
			row = append(row, fmt.Sprintf("%d%c", sq.Spots, sq.Side.letter()))
		}
		fmt.Fprintf(&out, "%2d %s\n", r, strings.Join(row, " "))
	}
	out.WriteString("  ")
	for c := 1; c <= b.size; c++ {
		fmt.Fprintf(&out, "%3d", c)
	}
	return out.String()
}

// MoveString returns the textual encoding "<row> <col>" of square #n.
func (b *Board) MoveString(n int) string {
	return fmt.Sprintf("%d %d", b.Row(n), b.Col(n))
}

// MoveStringRC returns the textual encoding "<row> <col>" of row r, column c.
func (b *Board) MoveStringRC(r, c int) string {
	return fmt.Sprintf("%d %d", r, c)
}
