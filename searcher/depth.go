package searcher

import "amazons/game"

// AdaptiveDepth returns how many plies to search from b. It grows with the
// number of moves played, since every move adds a spear and shrinks the
// branching factor.
func AdaptiveDepth(b *game.Board) int {
	return depthForMoves(b.NumMoves())
}

func depthForMoves(played int) int {
	for i, threshold := range depthThresholds {
		if played < threshold {
			return MinDepth + i
		}
	}
	return MaxDepth
}
