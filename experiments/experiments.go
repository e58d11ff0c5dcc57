package experiments

import (
	"fmt"

	"spill/engine"
	"spill/experiments/metrics"
	"spill/game"
	"spill/player"
	"spill/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Board sizes per matchup. Play is deterministic for a given size and depth
// pairing, so variety comes from the board, not from repetition.
var boardSizes = []int{3, 4, 5, 6}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 3},
	{ID: 4, Depth: 4},
}

// RunDepthToStrength pits each search depth against the depth-2 baseline
// across several board sizes and stores the results under dir.
func RunDepthToStrength(dir string) error {
	baseline := metrics.AgentConfig{ID: 0, Depth: searcher.DefaultDepth}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(dir, "depth_to_strength", append(depthConfigs, baseline), matchUps)
}

func runExperiment(dir, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), config1, config2)

		for _, size := range boardSizes {
			winner, gameMetric, moveMetrics, err := runGame(size, config1, config2)
			if err != nil {
				return fmt.Errorf("matchup %d size %d: %w", mi+1, size, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d on size %d with winner: %s",
				mi+1, len(matchUps), size, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	run := fmt.Sprintf("%s_%s", name, uuid.New().String())
	writer, err := metrics.NewWriter(dir, run)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results under %s", writer.Dir())
	return nil
}

// runGame executes a single game between two agents and returns the winner.
func runGame(size int, config1, config2 metrics.AgentConfig) (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	red := player.NewAI(game.Red, createEngine(config1))
	blue := player.NewAI(game.Blue, createEngine(config2))
	e := engine.NewLocal(size, red, blue)
	return e.Run()
}

func createEngine(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}
	return searcher.New(options...)
}
