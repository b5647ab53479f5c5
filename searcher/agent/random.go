package agent

import (
	"fmt"
	"iter"
	"time"

	"amazons/game"
	"amazons/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// Agents with the same seed play the same moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board) (game.Move, searcher.SearchMetric, error) {
	start := time.Now()
	move, n := sample(b.LegalMoves(), a.rng)
	metric := searcher.SearchMetric{StartTime: start, Duration: time.Since(start), Nodes: n}
	if n == 0 {
		return game.Move{}, metric, fmt.Errorf("%w: %s is stuck", searcher.ErrNoMoves, b.Turn().Name())
	}
	return move, metric, nil
}

// sample draws one move by reservoir sampling, so the legal moves are never
// held in memory at once. It also returns how many moves were seen.
func sample(moves iter.Seq[game.Move], rng *rand.Rand) (game.Move, int) {
	var chosen game.Move
	n := 0
	for m := range moves {
		n++
		if rng.Intn(n) == 0 {
			chosen = m
		}
	}
	return chosen, n
}
