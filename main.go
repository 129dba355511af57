package main

import (
	"os"
	"time"

	"connectfour/engine"
	"connectfour/experiments"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	iterationsPerMove = 1000
	treePath          = "game_tree.gob"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if len(os.Args) > 1 && os.Args[1] == "experiment" {
		experiments.RunBudgetToStrength()
		return
	}

	playGame()
}

// playGame runs one self-play game, reusing the persisted tree when one
// exists and saving the grown tree afterwards.
func playGame() {
	root := loadOrCreateTree()

	agentA := searcher.NewMCTS(searcher.WithIterations(iterationsPerMove), searcher.WithMetrics())
	agentB := searcher.NewMCTS(searcher.WithIterations(iterationsPerMove), searcher.WithMetrics())
	e := engine.Local(agentA, agentB, root)

	outcome, _ := e.Run()
	log.Info().Msgf("final position:\n%s", e.Node().State())

	switch outcome {
	case game.WinA:
		log.Info().Msg("PlayerA wins")
	case game.WinB:
		log.Info().Msg("PlayerB wins")
	default:
		log.Info().Msg("draw")
	}

	if err := searcher.SaveTree(treePath, e.Node()); err != nil {
		log.Error().Err(err).Msg("failed to save search tree")
	}
}

func loadOrCreateTree() *searcher.Node {
	root, err := searcher.LoadTree(treePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to load search tree, starting fresh")
	}
	if root == nil {
		return searcher.NewRoot(game.NewGameState(), game.PlayerA)
	}
	return root
}
