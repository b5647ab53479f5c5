package experiments

import (
	"fmt"
	"math"

	"amazons/engine"
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/searcher"
	"amazons/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

// Settings controls how an experiment is run and where its records go.
type Settings struct {
	OutDir   string
	NumGames int    // Per match up
	Workers  int    // Games played concurrently
	Seed     uint64 // 0 draws fresh seeds for random agents
}

// baseline plays uniformly random moves.
var baseline = metrics.AgentConfig{ID: 0, Random: true}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, MaxDepth: 1},
	{ID: 2, MaxDepth: 2},
	{ID: 3, MaxDepth: 3},
	{ID: 4}, // Adaptive depth
	{ID: 5, Strict: true},
}

// RunDepthExperiment pairs each search agent against the random baseline,
// then the adaptive agent against its strict counterpart.
func RunDepthExperiment(settings Settings) error {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}
	matchUps = append(matchUps, [2]metrics.AgentConfig{depthConfigs[3], depthConfigs[4]})

	return Run("depth", append([]metrics.AgentConfig{baseline}, depthConfigs...), matchUps, settings)
}

// Run plays settings.NumGames games for each matchup, the first config of a
// matchup playing White, and writes the agent configs, game records and
// move records to a fresh directory under settings.OutDir.
func Run(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, settings Settings) error {
	if settings.NumGames <= 0 {
		return fmt.Errorf("need at least one game per matchup, got %d", settings.NumGames)
	}
	seeds := newSeeder(settings.Seed)

	type job struct {
		id      int
		matchUp [2]metrics.AgentConfig
	}
	jobs := []job{}
	for _, matchUp := range matchUps {
		for i := 0; i < settings.NumGames; i++ {
			for side := range matchUp {
				if matchUp[side].Random {
					matchUp[side].Seed = seeds()
				}
			}
			jobs = append(jobs, job{id: len(jobs) + 1, matchUp: matchUp})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", name, len(jobs))

	// Each game writes only its own slot
	gameRecords := make([]metrics.GameRecord, len(jobs))
	moveRecords := make([][]metrics.MoveRecord, len(jobs))

	g := errgroup.Group{}
	g.SetLimit(max(settings.Workers, 1))
	for i, j := range jobs {
		g.Go(func() error {
			log.Info().Msgf("starting game %d of %d between agent%d and agent%d...", j.id, len(jobs), j.matchUp[0].ID, j.matchUp[1].ID)

			winner, gameMetric, moveMetrics := runGame(j.matchUp[0], j.matchUp[1])
			gameRecords[i] = metrics.GameRecord{
				ID:         j.id,
				Agent1:     j.matchUp[0].ID,
				Agent2:     j.matchUp[1].ID,
				GameMetric: gameMetric,
			}
			for _, mm := range moveMetrics {
				moveRecords[i] = append(moveRecords[i], metrics.MoveRecord{
					Game:       j.id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed game %d with winner: %s", j.id, winner.Name())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(name, settings.OutDir, configs, gameRecords, moveRecords)
}

func store(name, outDir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords [][]metrics.MoveRecord) error {
	// Store experiment metadata
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	flat := []metrics.MoveRecord{}
	for _, records := range moveRecords {
		flat = append(flat, records...)
	}
	err = writer.WriteMoveRecords(flat)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(white, black metrics.AgentConfig) (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	agents := [2]agent.Agent{createAgent(white), createAgent(black)}
	return engine.LocalEngine(agents).Run()
}

func createAgent(config metrics.AgentConfig) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(config.Seed)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if config.Strict {
		options = append(options, searcher.WithStrictPruning())
	}
	return agent.NewSearchAgent(searcher.NewAlphaBeta(options...))
}

// newSeeder returns a source of agent seeds: reproducible from seed, or
// drawn from the system's entropy when seed is 0.
func newSeeder(seed uint64) func() uint64 {
	if seed == 0 {
		return func() uint64 { return frand.Uint64n(math.MaxUint64) }
	}
	rng := rand.New(rand.NewSource(seed))
	return rng.Uint64
}
