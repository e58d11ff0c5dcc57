package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"spill/experiments/metrics"
	"spill/game"
	"spill/searcher"

	"github.com/rs/zerolog/log"
)

// Player supplies moves for one side of a game.
type Player interface {
	Side() game.Side
	// PickMove returns the square index the player wants to add a spot to
	// on board. Implementations never mutate board.
	PickMove(board *game.Board) (int, metrics.SearchMetric, error)
}

// AI plays a side by delegating to a search engine.
type AI struct {
	side   game.Side
	engine *searcher.Minimax
}

func NewAI(side game.Side, engine *searcher.Minimax) *AI {
	return &AI{side: side, engine: engine}
}

func (p *AI) Side() game.Side {
	return p.side
}

func (p *AI) PickMove(board *game.Board) (int, metrics.SearchMetric, error) {
	return p.engine.FindMove(board, p.side)
}

// Human plays a side by reading "<row> <col>" moves (1-indexed) from an
// input stream, re-prompting until a legal move arrives.
type Human struct {
	side game.Side
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(side game.Side, in io.Reader, out io.Writer) *Human {
	return &Human{side: side, in: bufio.NewScanner(in), out: out}
}

func (p *Human) Side() game.Side {
	return p.side
}

func (p *Human) PickMove(board *game.Board) (int, metrics.SearchMetric, error) {
	for {
		fmt.Fprintf(p.out, "%s> ", p.side)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return -1, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
			}
			return -1, metrics.SearchMetric{}, io.EOF
		}

		var r, c int
		_, err := fmt.Sscanf(strings.TrimSpace(p.in.Text()), "%d %d", &r, &c)
		if err != nil {
			fmt.Fprintln(p.out, "moves look like: <row> <col>")
			continue
		}
		if !board.IsLegalRC(p.side, r, c) {
			log.Warn().Msgf("%s tried illegal move %s", p.side, board.MoveStringRC(r, c))
			fmt.Fprintf(p.out, "%s is not a legal move for %s\n", board.MoveStringRC(r, c), p.side)
			continue
		}
		return board.SqNum(r, c), metrics.SearchMetric{}, nil
	}
}
