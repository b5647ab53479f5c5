package searcher

import (
	"testing"

	"amazons/game"

	"github.com/stretchr/testify/require"
)

// trapped returns a board where mover shuts in the opponent's lone queen on
// a1 by playing d4-e5(b2) or similar.
func trapped(mover game.Piece) *game.Board {
	b := game.NewEmptyBoard()
	b.Put(mover.Opponent(), game.Sq(0, 0))
	b.Put(game.Spear, game.Sq(0, 1))
	b.Put(game.Spear, game.Sq(1, 0))
	b.Put(mover, game.Sq(3, 3))
	b.SetTurn(mover)
	return b
}

func TestDepthForMoves(t *testing.T) {
	cases := map[int]int{
		0: 1, 29: 1,
		30: 2, 49: 2,
		50: 3, 69: 3,
		70: 4, 79: 4,
		80: 5, 92: 5, 1000: 5,
	}
	for played, want := range cases {
		require.Equal(t, want, depthForMoves(played), "%d moves played", played)
	}
	require.Equal(t, 1, AdaptiveDepth(game.NewBoard()))
}

func TestDepth(t *testing.T) {
	b := game.NewBoard()
	require.Equal(t, 1, NewAlphaBeta().Depth(b))
	require.Equal(t, 3, NewAlphaBeta(WithFixedDepth(3)).Depth(b))
	require.Equal(t, 1, NewAlphaBeta(WithMaxDepth(4)).Depth(b), "Cap should not raise the adaptive depth")
	require.Equal(t, 1, NewAlphaBeta(WithFixedDepth(-2)).Depth(b), "Invalid depth keeps the adaptive depth")
}

func TestChooseMove(t *testing.T) {
	for _, side := range []game.Piece{game.White, game.Black} {
		for _, depth := range []int{1, 2} {
			for _, strict := range []bool{false, true} {
				options := []Option{WithFixedDepth(depth)}
				if strict {
					options = append(options, WithStrictPruning())
				}
				ab := NewAlphaBeta(options...)

				t.Run("mate in one", func(t *testing.T) {
					b := trapped(side)

					move, err := ab.ChooseMove(b, side)
					require.NoError(t, err)
					require.NoError(t, b.ApplyMove(move))

					require.Equal(t, side, b.Winner(), "%s at depth %d (strict %t) should win with %s", side.Name(), depth, strict, move)
				})
			}
		}
	}

	t.Run("winning score accounts for depth", func(t *testing.T) {
		result, err := NewAlphaBeta(WithFixedDepth(2)).Search(trapped(game.White))
		require.NoError(t, err)
		require.Equal(t, game.WinningValue+1, result.Score)

		result, err = NewAlphaBeta(WithFixedDepth(1)).Search(trapped(game.Black))
		require.NoError(t, err)
		require.Equal(t, -game.WinningValue, result.Score)
	})

	t.Run("wrong side", func(t *testing.T) {
		_, err := NewAlphaBeta().ChooseMove(game.NewBoard(), game.Black)
		require.ErrorIs(t, err, ErrWrongSide)
	})

	t.Run("decided game", func(t *testing.T) {
		b := trapped(game.White)
		require.NoError(t, b.ApplyMove(game.MustParseMove("d4-c3(b2)")))

		_, err := NewAlphaBeta().ChooseMove(b, b.Turn())
		require.ErrorIs(t, err, ErrNoMoves)
	})

	t.Run("side without moves", func(t *testing.T) {
		b := trapped(game.White)
		b.SetTurn(game.Black)
		b.Put(game.Spear, game.Sq(1, 1))

		_, err := NewAlphaBeta().ChooseMove(b, game.Black)
		require.ErrorIs(t, err, ErrNoMoves)
	})

	t.Run("caller's board is untouched", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.ApplyMove(game.MustParseMove("d1-d7(g4)")))
		layout, hash, moves := b.Layout(), b.Hash(), b.Moves()

		move, err := NewAlphaBeta().ChooseMove(b, game.Black)
		require.NoError(t, err)

		require.True(t, b.IsLegal(move))
		require.Equal(t, layout, b.Layout())
		require.Equal(t, hash, b.Hash())
		require.Equal(t, moves, b.Moves())
	})
}

func TestSearchOnePly(t *testing.T) {
	b := game.NewEmptyBoard()
	b.Put(game.White, game.Sq(0, 0))
	b.Put(game.White, game.Sq(2, 2))
	b.Put(game.Black, game.Sq(9, 9))
	b.Put(game.Spear, game.Sq(5, 5))

	best, first := -Infinity, game.Move{}
	for m := range b.LegalMoves() {
		child := b.Clone()
		require.NoError(t, child.ApplyMove(m))
		if score := game.Score(child); score > best {
			best, first = score, m
		}
	}

	result, err := NewAlphaBeta(WithFixedDepth(1)).Search(b)

	require.NoError(t, err)
	require.Equal(t, best, result.Score, "One ply should pick the best static score")
	require.Equal(t, first, result.Move, "Ties should go to the first move enumerated")
}

func TestSearchMetrics(t *testing.T) {
	t.Run("no metrics by default", func(t *testing.T) {
		result, err := NewAlphaBeta(WithFixedDepth(1)).Search(trapped(game.White))
		require.NoError(t, err)
		require.Equal(t, 1, result.Metric.Depth)
		require.Zero(t, result.Metric.Nodes)
	})

	t.Run("one ply visits the root and every child", func(t *testing.T) {
		b := trapped(game.White)
		result, err := NewAlphaBeta(WithFixedDepth(1), WithMetrics()).Search(b)
		require.NoError(t, err)
		require.Equal(t, 1+b.CountLegalMoves(game.White), result.Metric.Nodes)
		require.Equal(t, 945, result.Metric.Nodes)
	})

	t.Run("shortcut skips expansion", func(t *testing.T) {
		loose, err := NewAlphaBeta(WithFixedDepth(2), WithMetrics()).Search(trapped(game.White))
		require.NoError(t, err)
		strict, err := NewAlphaBeta(WithFixedDepth(2), WithMetrics(), WithStrictPruning()).Search(trapped(game.White))
		require.NoError(t, err)

		require.Positive(t, loose.Metric.Shortcuts)
		require.Zero(t, strict.Metric.Shortcuts)
		require.Positive(t, strict.Metric.Cutoffs)
		require.Less(t, loose.Metric.Nodes, strict.Metric.Nodes)
		require.Equal(t, strict.Score, loose.Score)
	})

	t.Run("custom evaluation", func(t *testing.T) {
		calls := 0
		flat := func(b *game.Board) int {
			calls++
			return 0
		}
		b := game.NewBoard()
		result, err := NewAlphaBeta(WithFixedDepth(1), WithEvaluationFn(flat)).Search(b)
		require.NoError(t, err)
		require.Equal(t, 0, result.Score)
		require.Positive(t, calls)
		require.Equal(t, "a4-a5(a6)", result.Move.String(), "Flat scores keep the first move enumerated")
	})
}
