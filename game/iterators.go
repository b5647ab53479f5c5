package game

import "iter"

// ReachableFrom yields every square reachable from from by an unblocked
// queen move, treating asEmpty (which may be NoSquare) as empty. The
// contents of from itself are ignored. Directions are visited N, NE, ... NW
// and, within a direction, by increasing distance.
func (b *Board) ReachableFrom(from, asEmpty Square) iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for d := Direction(0); d < NumDirections; d++ {
			for _, s := range from.ray(d) {
				if s != asEmpty && b.layout[s] != Empty {
					break
				}
				if !yield(s) {
					return
				}
			}
		}
	}
}

// LegalMoves yields the legal moves of the side to move.
func (b *Board) LegalMoves() iter.Seq[Move] {
	return b.LegalMovesFor(b.turn)
}

// LegalMovesFor yields every move available to side, whether or not it is
// side's turn: for each of side's queens by square index, each destination,
// and each spear target from that destination. Nothing is materialised, so
// the board must not be mutated while the sequence is being consumed.
func (b *Board) LegalMovesFor(side Piece) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for from := Square(0); from < NumSquares; from++ {
			if b.layout[from] != side {
				continue
			}
			for to := range b.ReachableFrom(from, NoSquare) {
				for spear := range b.ReachableFrom(to, from) {
					if !yield(Move{From: from, To: to, Spear: spear}) {
						return
					}
				}
			}
		}
	}
}

// HasLegalMove reports whether side has at least one move.
func (b *Board) HasLegalMove(side Piece) bool {
	for range b.LegalMovesFor(side) {
		return true
	}
	return false
}

// CountLegalMoves counts the moves available to side.
func (b *Board) CountLegalMoves(side Piece) int {
	n := 0
	for range b.LegalMovesFor(side) {
		n++
	}
	return n
}
