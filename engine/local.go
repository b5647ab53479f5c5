package engine

import (
	"time"

	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/gamemaster"
	"amazons/meta"
	"amazons/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

type localEngine struct {
	session  gamemaster.Engine
	agents   [2]agent.Agent // White, Black
	start    *game.Board
	maxTurns int
}

// WithStartingBoard plays from a copy of b instead of the opening position.
func WithStartingBoard(b *game.Board) Option {
	return func(e *localEngine) {
		if b != nil {
			e.start = b.Clone()
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// LocalEngine returns an engine playing agents[0] as White against
// agents[1] as Black.
func LocalEngine(agents [2]agent.Agent, options ...Option) Engine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	e := &localEngine{
		session:  gamemaster.NewLocalEngine(),
		agents:   agents,
		start:    game.NewBoard(),
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found. A side whose
// agent fails or answers with an illegal move forfeits.
func (e *localEngine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	board, getUpdate := e.session.Setup(e.start)
	gameMetric := metrics.GameMetric{
		StartingPlayer: board.Turn().Name(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", board.Turn().Name())

	winner := game.Empty
	for turn := 1; e.session.Winner() == game.Empty && turn <= e.maxTurns; turn++ {
		side := e.session.Turn()

		move, searchMetric, err := e.session.RequestMove(e.agents[agentIndex(side)])
		if err == nil {
			err = e.session.Play(move)
		}
		if err != nil {
			log.Warn().Err(err).Msgf("%s forfeits on turn %d", side.Name(), turn)
			winner = side.Opponent()
			gameMetric.Forfeit = true
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side.Name(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		if u, ok := getUpdate(); ok {
			log.Debug().
				Int("turn", turn).
				Str("side", side.Name()).
				Str("move", u.Move.String()).
				Uint64("hash", u.Hash).
				Int("depth", searchMetric.Depth).
				Int("nodes", searchMetric.Nodes).
				Msg("move played")
		}
	}

	if !gameMetric.Forfeit {
		winner = e.session.Winner()
	}
	if winner == game.Empty {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	} else {
		gameMetric.Winner = winner.Name()
		log.Info().Msgf("%s wins after %d moves", winner.Name(), e.session.Board().NumMoves())
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics
}

func agentIndex(side game.Piece) int {
	if side == game.Black {
		return 1
	}
	return 0
}
