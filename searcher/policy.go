package searcher

import "math"

// Hyperparameters for MCTS

// epsilon keeps UCB1 defined for unvisited children instead of dividing by
// zero or taking log(0).
const epsilon = 1e-8

// ucb1 balances exploitation (average score so far) against exploration
// (under-sampled children). logTotal is ln of the summed sibling visits.
func ucb1(score float64, visits int, logTotal float64) float64 {
	return score/(float64(visits)+epsilon) +
		math.Sqrt(logTotal/(float64(visits)+epsilon))
}
