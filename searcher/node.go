package searcher

import (
	"math"

	"connectfour/game"

	"golang.org/x/exp/rand"
)

// Node is one vertex of the search tree. It owns its state and children;
// the parent pointer is non-owning and exists only for backpropagation.
type Node struct {
	state    game.State
	player   game.Player // Player to move from state
	move     int         // Column that led here, -1 for the root
	visits   int
	score    float64
	children []*Node
	parent   *Node
}

// NewRoot returns a fresh tree root with zero statistics and no children.
func NewRoot(state game.State, player game.Player) *Node {
	return &Node{
		state:  state,
		player: player,
		move:   -1,
	}
}

func (n *Node) State() game.State   { return n.state }
func (n *Node) Player() game.Player { return n.player }
func (n *Node) Move() int           { return n.move }
func (n *Node) Visits() int         { return n.visits }
func (n *Node) Score() float64      { return n.score }
func (n *Node) Children() []*Node   { return n.children }
func (n *Node) Parent() *Node       { return n.parent }

// SelectChild returns the child maximizing UCB1. Ties resolve to the first
// child in move order.
func (n *Node) SelectChild() *Node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	totalVisits := 0
	for _, child := range n.children {
		totalVisits += child.visits
	}
	logTotal := 0.0
	if totalVisits > 0 {
		logTotal = math.Log(float64(totalVisits) + epsilon)
	}

	best := n.children[0]
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		if score := ucb1(child.score, child.visits, logTotal); score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// Expand populates one child per legal move, in PossibleMoves order, with
// the opponent to move. A node expands at most once.
func (n *Node) Expand() []*Node {
	if len(n.children) > 0 {
		panic("node is already expanded")
	}
	if n.state.IsTerminal() {
		panic("cannot expand a terminal node")
	}

	moves := n.state.PossibleMoves()
	n.children = make([]*Node, 0, len(moves))
	for _, move := range moves {
		childState, err := n.state.ApplyMove(move, n.player)
		if err != nil {
			panic(err) // Moves come from PossibleMoves
		}
		n.children = append(n.children, &Node{
			state:  childState,
			player: n.player.Opponent(),
			move:   move,
			parent: n,
		})
	}
	return n.children
}

// Simulate plays uniform-random moves from this node's position until a
// terminal state and returns its evaluation. The node is unmodified.
func (n *Node) Simulate(rng *rand.Rand) float64 {
	state := n.state
	player := n.player
	for !state.IsTerminal() {
		moves := state.PossibleMoves()
		next, err := state.ApplyMove(moves[rng.Intn(len(moves))], player)
		if err != nil {
			panic(err) // Moves come from PossibleMoves
		}
		state = next
		player = player.Opponent()
	}
	return state.Evaluate()
}

// Backpropagate credits the score up the tree, negating it at every level:
// a score favorable at a child is unfavorable to its parent's mover.
func (n *Node) Backpropagate(score float64) {
	for node := n; node != nil; node = node.parent {
		node.visits++
		node.score += score
		score = -score
	}
}

// bestChild returns the most-visited child (robust child). Ties resolve to
// the first child in move order.
func (n *Node) bestChild() *Node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.visits > best.visits {
			best = child
		}
	}
	return best
}
