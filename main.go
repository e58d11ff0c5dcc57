package main

import (
	"flag"
	"fmt"
	"os"

	"spill/engine"
	"spill/experiments"
	"spill/game"
	"spill/player"
	"spill/searcher"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	size := flag.Int("size", 6, "board size, 2 to 10")
	depth := flag.Int("depth", searcher.DefaultDepth, "AI search depth in plies")
	seed := flag.Uint64("seed", 0, "AI random seed (0 picks one)")
	mode := flag.String("mode", "play", "play, selfplay, or experiment")
	level := flag.String("log", "info", "log level")
	out := flag.String("out", "results", "experiment output directory")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", *level)
		os.Exit(2)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: colorable.NewColorableStdout()})
	zerolog.SetGlobalLevel(lvl)

	// The core leaves board sizing to its caller.
	if *size < 2 || *size > 10 {
		log.Fatal().Msgf("board size %d out of range 2-10", *size)
	}

	switch *mode {
	case "play":
		runPlay(*size, *depth, *seed)
	case "selfplay":
		runSelfplay(*size, *depth, *seed)
	case "experiment":
		if err := experiments.RunDepthToStrength(*out); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// runPlay pits a human on Red against the AI on Blue.
func runPlay(size, depth int, seed uint64) {
	red := player.NewHuman(game.Red, os.Stdin, os.Stdout)
	blue := player.NewAI(game.Blue, createEngine(depth, seed))
	e := engine.NewLocal(size, red, blue)
	e.Board.SetNotifier(func(b *game.Board) {
		fmt.Println(b.DisplayString())
	})

	winner, _, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	if winner != game.None {
		fmt.Printf("%s wins.\n", winner)
	}
}

func runSelfplay(size, depth int, seed uint64) {
	red := player.NewAI(game.Red, createEngine(depth, seed))
	blue := player.NewAI(game.Blue, createEngine(depth, seed))
	e := engine.NewLocal(size, red, blue)

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	fmt.Println(e.Board)
	if winner != game.None {
		fmt.Printf("%s wins in %d moves (%s).\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
	}
}

func createEngine(depth int, seed uint64) *searcher.Minimax {
	options := []searcher.Option{searcher.WithDepth(depth)}
	if seed > 0 {
		options = append(options, searcher.WithSeed(seed))
	}
	return searcher.New(options...)
}
