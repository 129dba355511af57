package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS runs the four-phase search loop: select, expand, simulate,
// backpropagate. A search mutates only the tree reachable from the root it
// is given; the caller owns that tree for the duration of Run.
type MCTS struct {
	iterations int
	duration   time.Duration
	rng        *rand.Rand
	metrics    MetricsCollector
	lastSearch MoveMetrics
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithDuration trades the fixed iteration budget for a wall-clock one: the
// loop stops issuing iterations once the budget elapses.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithSeed makes rollouts reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 && m.duration <= 0 {
		panic("Must specify search iterations or duration")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Run grows the tree under root for the configured budget and returns the
// most-visited child as the move to play. A root holding a terminal state
// grows no children; Run then returns the root itself unchanged.
func (m *MCTS) Run(root *Node) *Node {
	m.metrics.Start()

	if m.iterations > 0 {
		m.iterate(root)
	} else {
		m.countdown(root)
	}

	m.lastSearch = m.metrics.Complete()

	if len(root.children) == 0 {
		log.Warn().Msg("search root is terminal: no move to return")
		return root
	}
	return root.bestChild()
}

// Metrics returns the metrics of the most recent Run. Zero unless the
// searcher was built WithMetrics.
func (m *MCTS) Metrics() MoveMetrics {
	return m.lastSearch
}

func (m *MCTS) iterate(root *Node) {
	for i := 0; i < m.iterations; i++ {
		m.simulate(root)
		m.metrics.AddIteration()
	}
}

func (m *MCTS) countdown(root *Node) {
	start := time.Now()
	for time.Since(start) < m.duration {
		m.simulate(root)
		m.metrics.AddIteration()
	}
}

// simulate runs one search iteration end to end.
func (m *MCTS) simulate(root *Node) {
	node := root
	for len(node.children) > 0 && !node.state.IsTerminal() {
		node = node.SelectChild()
	}

	if !node.state.IsTerminal() {
		node = node.Expand()[0] // Continue with the first new child
		m.metrics.AddExpansion()
	}

	score := node.Simulate(m.rng)
	node.Backpropagate(score)
}
