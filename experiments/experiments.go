package experiments

import (
	"fmt"
	"time"

	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per match up

var budgetConfigs = []metrics.AgentConfig{
	{ID: 1, Iterations: 100},
	{ID: 2, Iterations: 250},
	{ID: 3, Iterations: 500},
	{ID: 4, Iterations: 1000},
	{ID: 5, Iterations: 2500},
	{ID: 6, Iterations: 5000},
}

// RunBudgetToStrength pits each iteration budget against a fixed baseline
// to measure how playing strength scales with rollout count.
func RunBudgetToStrength() {
	baseline := metrics.AgentConfig{ID: 0, Iterations: 100}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range budgetConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("budget_to_strength", append(budgetConfigs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			outcome, gameMetric, moveMetrics := runGame(config1, config2)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with outcome: %+v", mi+1, len(matchUps), i+1, NumGames, outcome)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")
}

// runGame executes a single game between two agents on a fresh tree and
// returns the outcome with its records.
func runGame(config1, config2 metrics.AgentConfig) (float64, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.Local(createMCTS(config1), createMCTS(config2), nil)

	start := time.Now()
	outcome, moves := e.Run()
	end := time.Now()

	gameMetric := metrics.GameMetric{
		StartingPlayer: game.PlayerA,
		Outcome:        outcome,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     len(moves),
	}

	moveMetrics := make([]metrics.MoveMetric, 0, len(moves))
	for _, move := range moves {
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:       move.Step,
			Player:     move.Player,
			Column:     move.Column,
			Duration:   move.Search.Duration,
			Iterations: move.Search.Iterations,
			Expansions: move.Search.Expansions,
		})
	}

	return outcome, gameMetric, moveMetrics
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}
