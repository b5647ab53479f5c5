package game

// WinningValue is the score of a decided game from White's point of view.
// It dominates any territory score plus any search depth.
const WinningValue = 1 << 30

// Evaluate scores a position; positive favours White.
type Evaluate func(b *Board) int

// Score returns ±WinningValue for a decided game and otherwise the
// territory balance: squares White reaches in fewer queen moves than Black,
// minus squares Black reaches first.
func Score(b *Board) int {
	switch b.winner {
	case White:
		return WinningValue
	case Black:
		return -WinningValue
	}

	white := b.ClaimLevels(White)
	black := b.ClaimLevels(Black)
	score := 0
	for i := range white {
		w, k := white[i], black[i]
		switch {
		case w > 0 && w < k:
			score++
		case k > 0 && k < w:
			score--
		}
	}
	return score
}

// ClaimLevels returns, for every square, the number of queen moves side's
// nearest queen needs to reach it, counting the queens' own squares as 1.
// Unreached squares are 0; squares holding a spear or another piece are -1.
func (b *Board) ClaimLevels(side Piece) [NumSquares]int {
	var level [NumSquares]int
	frontier := make([]Square, 0, 8)
	for s, p := range b.layout {
		switch p {
		case Empty:
		case side:
			level[s] = 1
			frontier = append(frontier, Square(s))
		default:
			level[s] = -1
		}
	}

	for depth := 2; len(frontier) > 0; depth++ {
		var next []Square
		for _, s := range frontier {
			for t := range b.ReachableFrom(s, NoSquare) {
				if level[t] == 0 {
					level[t] = depth
					next = append(next, t)
				}
			}
		}
		frontier = next
	}
	return level
}
