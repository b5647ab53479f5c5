package agent

import (
	"amazons/game"
	"amazons/searcher"
)

type Agent interface {
	// FindMove returns a move for the side on turn in b and the search metrics
	// (if collected). b must not be modified.
	FindMove(b *game.Board) (game.Move, searcher.SearchMetric, error)
}
