package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Run("fresh board", func(t *testing.T) {
		b := New(2)
		want := "===\n" +
			"    1- 1- \n" +
			"    1- 1- \n" +
			"==="
		require.Equal(t, want, b.String())
	})

	t.Run("mid game", func(t *testing.T) {
		b := New(2)
		require.NoError(t, b.AddSpot(Red, 0))
		require.NoError(t, b.AddSpot(Blue, 3))
		want := "===\n" +
			"    2r 1- \n" +
			"    1- 2b \n" +
			"==="
		require.Equal(t, want, b.String())
	})

	t.Run("won board announces the winner", func(t *testing.T) {
		b := New(2)
		for r := 1; r <= 2; r++ {
			for c := 1; c <= 2; c++ {
				require.NoError(t, b.Set(r, c, 1, Red))
			}
		}
		want := "===\n" +
			"    1r 1r \n" +
			"    1r 1r \n" +
			"===Red wins."
		require.Equal(t, want, b.String())
	})
}

func TestDisplayString(t *testing.T) {
	b := New(2)
	want := " 1 1- 1-\n" +
		" 2 1- 1-\n" +
		"    1  2"
	require.Equal(t, want, b.DisplayString())
}

func TestMoveString(t *testing.T) {
	b := New(3)
	require.Equal(t, "2 2", b.MoveString(4))
	require.Equal(t, "1 1", b.MoveString(0))
	require.Equal(t, "3 1", b.MoveString(6))
	require.Equal(t, "2 3", b.MoveStringRC(2, 3))
}
