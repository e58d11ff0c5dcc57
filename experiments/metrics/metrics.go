package metrics

import "time"

// SearchMetric describes one search invocation.
type SearchMetric struct {
	Depth    int           // search depth in plies
	Nodes    int           // positions visited, leaves included
	Cutoffs  int           // branches abandoned by alpha-beta pruning
	Duration time.Duration // wall time spent searching
}

// MoveMetric describes one completed move of a game.
type MoveMetric struct {
	Step int    // 1-based move number
	Side string // side that moved
	Move string // "<row> <col>"
	SearchMetric
}

// GameMetric describes one completed game.
type GameMetric struct {
	Size       int    // board size
	Winner     string // winning side, "" if the game was cut off
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// AgentConfig identifies one search configuration under comparison.
type AgentConfig struct {
	ID    int
	Depth int
	Seed  uint64
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing Red
	Agent2 int // AgentConfig.ID, playing Blue
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
