package game

import "fmt"

// Player identifies a cell owner. Empty marks an unclaimed cell.
type Player int8

const (
	Empty Player = iota
	PlayerA
	PlayerB
)

func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "."
	}
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	PossibleMoves() []int
	ApplyMove(column int, player Player) (State, error)
	IsTerminal() bool
	Evaluate() float64
	Hash() StateHash
}

// IllegalMoveError reports a move into a column that is out of range or
// already full.
type IllegalMoveError struct {
	Column int
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: column %d is out of range or full", e.Column)
}
