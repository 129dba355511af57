package engine

import (
	"connectfour/game"
	"connectfour/searcher"

	"github.com/rs/zerolog/log"
)

// MoveSummary records one played move and the search that produced it.
type MoveSummary struct {
	Step   int
	Player game.Player
	Column int
	Search searcher.MoveMetrics
}

// Engine drives a local game between two search agents over one shared
// tree. Each adopted best child becomes the next search root, so statistics
// accumulate across moves and games.
type Engine struct {
	node   *searcher.Node
	agents map[game.Player]*searcher.MCTS
}

func Local(agentA, agentB *searcher.MCTS, root *searcher.Node) *Engine {
	if agentA == nil || agentB == nil {
		panic("need an agent per player")
	}
	if root == nil {
		root = searcher.NewRoot(game.NewGameState(), game.PlayerA)
	}
	return &Engine{
		node: root,
		agents: map[game.Player]*searcher.MCTS{
			game.PlayerA: agentA,
			game.PlayerB: agentB,
		},
	}
}

// Run plays until the position is terminal, credits the realized outcome
// back into the tree, and returns the outcome with per-move summaries.
func (e *Engine) Run() (float64, []MoveSummary) {
	log.Info().Stringer("player", e.node.Player()).Msg("game starting")

	var moves []MoveSummary
	step := 1
	for !e.node.State().IsTerminal() {
		player := e.node.Player()
		agent := e.agents[player]

		best := agent.Run(e.node)
		if best == e.node { // Terminal root, no move to adopt
			break
		}

		moves = append(moves, MoveSummary{
			Step:   step,
			Player: player,
			Column: best.Move(),
			Search: agent.Metrics(),
		})
		log.Info().
			Int("step", step).
			Stringer("player", player).
			Int("column", best.Move()).
			Int("visits", best.Visits()).
			Msg("move played")

		e.node = best
		step++
	}

	outcome := e.node.State().Evaluate()
	// Credit the realized outcome into the persisted statistics
	e.node.Backpropagate(outcome)

	log.Info().
		Float64("outcome", outcome).
		Int("moves", len(moves)).
		Msg("game over")
	return outcome, moves
}

// Node returns the engine's current position in the tree, for persistence
// after a game.
func (e *Engine) Node() *searcher.Node {
	return e.node
}
