package metrics

import (
	"time"

	"connectfour/game"
)

// AgentConfig is one search configuration under comparison.
type AgentConfig struct {
	ID         int
	Iterations int
	Duration   time.Duration
	Seed       uint64
}

type GameMetric struct {
	StartingPlayer game.Player
	Outcome        float64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type MoveMetric struct {
	Step       int
	Player     game.Player
	Column     int
	Duration   time.Duration
	Iterations int64
	Expansions int64
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
