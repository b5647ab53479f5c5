package engine

import (
	"testing"

	"amazons/game"
	"amazons/searcher"
	"amazons/searcher/agent"

	"github.com/stretchr/testify/require"
)

type illegalAgent struct{}

func (illegalAgent) FindMove(b *game.Board) (game.Move, searcher.SearchMetric, error) {
	return game.MustParseMove("a1-a2(a3)"), searcher.SearchMetric{}, nil
}

func trappedBlack() *game.Board {
	b := game.NewEmptyBoard()
	b.Put(game.Black, game.Sq(0, 0))
	b.Put(game.Spear, game.Sq(0, 1))
	b.Put(game.Spear, game.Sq(1, 0))
	b.Put(game.White, game.Sq(3, 3))
	return b
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("random self play reaches a winner", func(t *testing.T) {
		e := LocalEngine([2]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)})

		winner, gameMetric, moveMetrics := e.Run()

		require.NotEqual(t, game.Empty, winner, "Every game of Amazons is decided")
		require.Equal(t, winner.Name(), gameMetric.Winner)
		require.False(t, gameMetric.Forfeit)
		require.Equal(t, "white", gameMetric.StartingPlayer)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.LessOrEqual(t, gameMetric.TotalMoves, game.NumSquares-8)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			want := "white"
			if i%2 == 1 {
				want = "black"
			}
			require.Equal(t, want, mm.Player)
			_, err := game.ParseMove(mm.Move)
			require.NoError(t, err)
		}
		require.Equal(t, moveMetrics[len(moveMetrics)-1].Player, gameMetric.Winner, "The last side to move wins")
	})

	t.Run("search finds the winning move", func(t *testing.T) {
		ai := agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithFixedDepth(1), searcher.WithMetrics()))
		e := LocalEngine([2]agent.Agent{ai, agent.NewRandomAgent(3)}, WithStartingBoard(trappedBlack()))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.White, winner)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Positive(t, moveMetrics[0].Nodes)
	})

	t.Run("illegal move forfeits", func(t *testing.T) {
		e := LocalEngine([2]agent.Agent{illegalAgent{}, agent.NewRandomAgent(4)})

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.Black, winner)
		require.True(t, gameMetric.Forfeit)
		require.Equal(t, "black", gameMetric.Winner)
		require.Empty(t, moveMetrics)
	})

	t.Run("turn limit", func(t *testing.T) {
		e := LocalEngine([2]agent.Agent{agent.NewRandomAgent(5), agent.NewRandomAgent(6)}, WithMaxTurns(4))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.Empty, winner)
		require.Empty(t, gameMetric.Winner)
		require.Len(t, moveMetrics, 4)
	})

	t.Run("agents are required", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine([2]agent.Agent{agent.NewRandomAgent(1), nil}) })
	})
}
