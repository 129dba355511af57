package game

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

const (
	Rows    = 6
	Columns = 7
)

// Outcome scores from Evaluate, from the fixed PlayerA perspective.
const (
	WinA = 1.0
	Draw = 0.0
	WinB = -1.0
)

// GameState is a connect-four board. Cells fill from the bottom of a column
// upward; row 0 is the top row. The zero value is an empty board.
type GameState struct {
	Board [Rows][Columns]Player
}

// NewGameState returns an empty board.
func NewGameState() GameState {
	return GameState{}
}

// PossibleMoves returns every playable column in ascending order. It is
// empty if and only if the board is full.
func (gs GameState) PossibleMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if gs.Board[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// ApplyMove drops the player's mark into the lowest empty row of the column
// and returns the resulting board. The receiver is unmodified.
func (gs GameState) ApplyMove(column int, player Player) (State, error) {
	if column < 0 || column >= Columns || gs.Board[0][column] != Empty {
		return nil, &IllegalMoveError{Column: column}
	}

	next := gs // Arrays copy by value
	for row := Rows - 1; row >= 0; row-- {
		if next.Board[row][column] == Empty {
			next.Board[row][column] = player
			break
		}
	}
	return next, nil
}

// IsTerminal reports whether the game is over: a four-in-a-row exists or the
// board is completely full.
func (gs GameState) IsTerminal() bool {
	if gs.winner() != Empty {
		return true
	}
	return len(gs.PossibleMoves()) == 0
}

// Evaluate scores the board from PlayerA's perspective: +1 if a PlayerA line
// exists, -1 for PlayerB, 0 otherwise (including draws).
func (gs GameState) Evaluate() float64 {
	switch gs.winner() {
	case PlayerA:
		return WinA
	case PlayerB:
		return WinB
	default:
		return Draw
	}
}

// winner returns the owner of a four-in-a-row, or Empty if none exists.
// Every cell anchors four windows: right, down, down-right, down-left,
// bounded so the window stays on-board.
func (gs GameState) winner() Player {
	directions := [4][2]int{
		{0, 1},  // Right
		{1, 0},  // Down
		{1, 1},  // Down-right
		{1, -1}, // Down-left
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			mark := gs.Board[row][col]
			if mark == Empty {
				continue
			}
			for _, dir := range directions {
				endRow := row + 3*dir[0]
				endCol := col + 3*dir[1]
				if endRow >= Rows || endCol < 0 || endCol >= Columns {
					continue
				}
				if gs.Board[row+dir[0]][col+dir[1]] == mark &&
					gs.Board[row+2*dir[0]][col+2*dir[1]] == mark &&
					gs.Board[endRow][endCol] == mark {
					return mark
				}
			}
		}
	}
	return Empty
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			binary.Write(hasher, binary.LittleEndian, int8(gs.Board[row][col]))
		}
	}
	return StateHash(hasher.Sum64())
}

func (gs GameState) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			sb.WriteString(gs.Board[row][col].String())
		}
		if row < Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
