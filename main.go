package main

import (
	"flag"
	"fmt"
	"os"

	"amazons/engine"
	"amazons/experiments"
	"amazons/game"
	"amazons/gamemaster"
	"amazons/meta"
	"amazons/player"
	"amazons/searcher"
	"amazons/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "selfplay", "What to run: selfplay, play or experiment")
	side := flag.String("side", "white", "Side the human plays in play mode")
	numGames := flag.Int("games", meta.NumGames, "Number of games per experiment matchup")
	workers := flag.Int("workers", meta.Workers, "Number of experiment games played concurrently")
	maxDepth := flag.Int("max-depth", searcher.MaxDepth, "Cap on the adaptive search depth")
	seed := flag.Uint64("seed", 0, "Seed for random agents (0 draws a fresh seed)")
	outDir := flag.String("out", "experiments", "Directory for experiment records")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	ai := agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithMaxDepth(*maxDepth), searcher.WithMetrics()))

	switch *mode {
	case "selfplay":
		e := engine.LocalEngine([2]agent.Agent{ai, ai})
		winner, gameMetric, _ := e.Run()
		fmt.Printf("%s wins after %d moves in %s\n", winner.Name(), gameMetric.TotalMoves, gameMetric.Duration)
	case "play":
		human, err := parseSide(*side)
		if err != nil {
			log.Fatal().Err(err).Msg("bad side")
		}
		controller := player.NewTextController(human, ai, gamemaster.NewLocalEngine(), os.Stdin, os.Stdout)
		if err := controller.Run(); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
	case "experiment":
		err := experiments.RunDepthExperiment(experiments.Settings{
			OutDir:   *outDir,
			NumGames: *numGames,
			Workers:  *workers,
			Seed:     *seed,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func parseSide(name string) (game.Piece, error) {
	switch name {
	case game.White.Name():
		return game.White, nil
	case game.Black.Name():
		return game.Black, nil
	}
	return game.Empty, fmt.Errorf("side must be white or black, got %q", name)
}
