package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPossibleMoves(t *testing.T) {
	t.Run("empty board offers every column in ascending order", func(t *testing.T) {
		gs := NewGameState()

		got := gs.PossibleMoves()

		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, got)
	})

	t.Run("full column is excluded", func(t *testing.T) {
		gs := fillColumn(t, NewGameState(), 3)

		got := gs.PossibleMoves()

		require.Equal(t, []int{0, 1, 2, 4, 5, 6}, got)
	})

	t.Run("full board offers no moves", func(t *testing.T) {
		gs := drawnBoard(t)

		require.Empty(t, gs.PossibleMoves())
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("mark lands in the lowest empty row", func(t *testing.T) {
		gs := NewGameState()

		next, err := gs.ApplyMove(2, PlayerA)

		require.NoError(t, err)
		require.Equal(t, PlayerA, next.(GameState).Board[Rows-1][2])
	})

	t.Run("marks stack upward in the same column", func(t *testing.T) {
		gs := NewGameState()

		first, err := gs.ApplyMove(2, PlayerA)
		require.NoError(t, err)
		second, err := first.ApplyMove(2, PlayerB)
		require.NoError(t, err)

		require.Equal(t, PlayerA, second.(GameState).Board[Rows-1][2])
		require.Equal(t, PlayerB, second.(GameState).Board[Rows-2][2])
	})

	t.Run("receiver is unmodified", func(t *testing.T) {
		gs := NewGameState()

		_, err := gs.ApplyMove(0, PlayerA)

		require.NoError(t, err)
		require.Equal(t, NewGameState(), gs, "ApplyMove should not mutate the receiver")
	})

	t.Run("seventh move into a column is illegal", func(t *testing.T) {
		gs := fillColumn(t, NewGameState(), 5)

		_, err := gs.ApplyMove(5, PlayerA)

		var illegal *IllegalMoveError
		require.ErrorAs(t, err, &illegal)
		require.Equal(t, 5, illegal.Column)
	})

	t.Run("out of range column is illegal", func(t *testing.T) {
		gs := NewGameState()

		_, err := gs.ApplyMove(-1, PlayerA)
		require.Error(t, err)

		_, err = gs.ApplyMove(Columns, PlayerA)
		require.Error(t, err)
	})

	t.Run("every possible move is applicable", func(t *testing.T) {
		gs := fillColumn(t, NewGameState(), 0)

		for _, col := range gs.PossibleMoves() {
			_, err := gs.ApplyMove(col, PlayerB)
			require.NoError(t, err)
		}
	})
}

func TestIsTerminalAndEvaluate(t *testing.T) {
	t.Run("empty board is not terminal", func(t *testing.T) {
		gs := NewGameState()

		require.False(t, gs.IsTerminal())
		require.Equal(t, Draw, gs.Evaluate())
	})

	t.Run("horizontal four on the bottom row wins for A", func(t *testing.T) {
		gs := NewGameState()
		for col := 0; col <= 3; col++ {
			gs.Board[Rows-1][col] = PlayerA
		}

		require.True(t, gs.IsTerminal())
		require.Equal(t, WinA, gs.Evaluate())
	})

	t.Run("vertical four wins for B", func(t *testing.T) {
		gs := NewGameState()
		for row := Rows - 4; row < Rows; row++ {
			gs.Board[row][6] = PlayerB
		}

		require.True(t, gs.IsTerminal())
		require.Equal(t, WinB, gs.Evaluate())
	})

	t.Run("down-right diagonal four wins", func(t *testing.T) {
		gs := NewGameState()
		for i := 0; i < 4; i++ {
			gs.Board[1+i][2+i] = PlayerA
		}

		require.True(t, gs.IsTerminal())
		require.Equal(t, WinA, gs.Evaluate())
	})

	t.Run("down-left diagonal four wins", func(t *testing.T) {
		gs := NewGameState()
		for i := 0; i < 4; i++ {
			gs.Board[1+i][5-i] = PlayerB
		}

		require.True(t, gs.IsTerminal())
		require.Equal(t, WinB, gs.Evaluate())
	})

	t.Run("three in a row is not terminal", func(t *testing.T) {
		gs := NewGameState()
		for col := 0; col <= 2; col++ {
			gs.Board[Rows-1][col] = PlayerA
		}

		require.False(t, gs.IsTerminal())
		require.Equal(t, Draw, gs.Evaluate())
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		gs := drawnBoard(t)

		require.True(t, gs.IsTerminal())
		require.Equal(t, Draw, gs.Evaluate())
	})
}

func TestHash(t *testing.T) {
	t.Run("boards differing by one cell hash differently", func(t *testing.T) {
		gs := NewGameState()
		next, err := gs.ApplyMove(0, PlayerA)
		require.NoError(t, err)

		require.NotEqual(t, gs.Hash(), next.Hash())
	})

	t.Run("equal boards hash equally", func(t *testing.T) {
		require.Equal(t, NewGameState().Hash(), NewGameState().Hash())
	})
}

func fillColumn(t *testing.T, gs GameState, column int) GameState {
	t.Helper()
	// Alternate marks to avoid creating a four-in-a-row
	marks := []Player{PlayerA, PlayerA, PlayerB, PlayerB, PlayerA, PlayerA}
	state := State(gs)
	for row := 0; row < Rows; row++ {
		next, err := state.ApplyMove(column, marks[row])
		require.NoError(t, err)
		state = next
	}
	return state.(GameState)
}

// drawnBoard builds a completely full board with no four-in-a-row.
func drawnBoard(t *testing.T) GameState {
	t.Helper()
	// Even columns hold AABBAA bottom-up, odd columns the inverse. Rows
	// alternate marks and runs never exceed two in any direction.
	gs := NewGameState()
	for col := 0; col < Columns; col++ {
		base, other := PlayerA, PlayerB
		if col%2 == 1 {
			base, other = PlayerB, PlayerA
		}
		pattern := []Player{base, base, other, other, base, base}
		for i, mark := range pattern {
			gs.Board[Rows-1-i][col] = mark
		}
	}
	require.Equal(t, Empty, gs.winner(), "fixture must not contain a line")
	require.Empty(t, gs.PossibleMoves())
	return gs
}
