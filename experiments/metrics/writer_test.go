package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "run1")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Depth: 2},
		{ID: 2, Depth: 3, Seed: 61},
	}))
	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "depth", "seed"},
		{"1", "2", "0"},
		{"2", "3", "61"},
	}, rows)

	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{
			ID:     1,
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				Size:       3,
				Winner:     "Red",
				TotalMoves: 12,
				Duration:   time.Second,
			},
		},
	}))
	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "2", "3", "Red", "12", "1s"}, rows[1])

	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{
			Game: 1,
			MoveMetric: MoveMetric{
				Step: 1,
				Side: "Red",
				Move: "2 2",
				SearchMetric: SearchMetric{
					Depth:    2,
					Nodes:    81,
					Cutoffs:  7,
					Duration: time.Millisecond,
				},
			},
		},
	}))
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "Red", "2 2", "2", "81", "7", "1ms"}, rows[1])
}
