package searcher

import (
	"math"

	"amazons/game"
)

// Search depth bounds
const MinDepth = 1
const MaxDepth = 5

// Infinity bounds the initial search window.
const Infinity = math.MaxInt

// Move counts at which AdaptiveDepth steps up one ply, scaled by board size.
// Below the first threshold the search looks 1 ply ahead.
var depthThresholds = [MaxDepth - MinDepth]int{
	3 * game.Size,
	5 * game.Size,
	7 * game.Size,
	8 * game.Size,
}
