package game

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Opening squares of the standard 10x10 position.
var (
	whiteStart = [...]Square{3, 30, 60, 93} // a4 d1 g1 j4
	blackStart = [...]Square{6, 39, 69, 96} // a7 d10 g10 j7
)

// Board is the mutable state of an Amazons game: the layout, the side to
// move, the moves played so far (for undo) and the cached winner.
// A Board is not safe for concurrent mutation.
type Board struct {
	layout [NumSquares]Piece
	turn   Piece
	winner Piece // Empty while undecided
	moves  []Move
}

// NewBoard returns a board in the opening position with White to move.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Init clears the board to the opening position.
func (b *Board) Init() {
	b.layout = [NumSquares]Piece{}
	for _, s := range whiteStart {
		b.layout[s] = White
	}
	for _, s := range blackStart {
		b.layout[s] = Black
	}
	b.turn = White
	b.winner = Empty
	b.moves = make([]Move, 0, NumSquares)
}

// NewEmptyBoard returns a board with no pieces and White to move, for
// setting up positions with Put.
func NewEmptyBoard() *Board {
	return &Board{turn: White, moves: make([]Move, 0, NumSquares)}
}

// Clone returns a deep copy of b with an independent move history.
func (b *Board) Clone() *Board {
	c := &Board{
		layout: b.layout,
		turn:   b.turn,
		winner: b.winner,
		moves:  make([]Move, len(b.moves), cap(b.moves)),
	}
	copy(c.moves, b.moves)
	return c
}

// CopyFrom makes b a deep copy of model.
func (b *Board) CopyFrom(model *Board) {
	if b == model {
		return
	}
	*b = *model.Clone()
}

// Turn returns the side to move (White or Black).
func (b *Board) Turn() Piece {
	return b.turn
}

// SetTurn sets the side to move. Used when setting up positions.
func (b *Board) SetTurn(side Piece) {
	b.turn = side
}

// Winner returns the winning side, or Empty if the game is not decided.
func (b *Board) Winner() Piece {
	return b.winner
}

// NumMoves returns the number of moves played and not undone.
func (b *Board) NumMoves() int {
	return len(b.moves)
}

// Moves returns a copy of the moves played so far.
func (b *Board) Moves() []Move {
	moves := make([]Move, len(b.moves))
	copy(moves, b.moves)
	return moves
}

// Get returns the contents of s.
func (b *Board) Get(s Square) Piece {
	return b.layout[s]
}

// Put sets s to p. It does not touch the history, the turn or the winner.
func (b *Board) Put(p Piece, s Square) {
	b.layout[s] = p
}

// Layout returns a copy of the contents of every square, by index.
func (b *Board) Layout() [NumSquares]Piece {
	return b.layout
}

// CountPieces returns how many squares hold p.
func (b *Board) CountPieces(p Piece) int {
	n := 0
	for _, q := range b.layout {
		if q == p {
			n++
		}
	}
	return n
}

// IsUnblockedMove reports whether from-to is a queen move whose squares
// after from, up to and including to, are empty. asEmpty (which may be
// NoSquare) is treated as empty wherever it is met.
func (b *Board) IsUnblockedMove(from, to, asEmpty Square) bool {
	if !from.IsQueenMove(to) {
		return false
	}
	for _, s := range from.ray(from.Direction(to)) {
		if s != asEmpty && b.layout[s] != Empty {
			return false
		}
		if s == to {
			return true
		}
	}
	return false
}

// IsLegalFrom reports whether from holds a piece of the side to move.
func (b *Board) IsLegalFrom(from Square) bool {
	return from >= 0 && from < NumSquares && b.layout[from] == b.turn
}

// IsLegalSlide reports whether from-to is a legal first part of a move,
// ignoring the spear.
func (b *Board) IsLegalSlide(from, to Square) bool {
	return b.IsLegalFrom(from) && b.IsUnblockedMove(from, to, NoSquare)
}

// IsLegal reports whether m is a legal move in the current position.
func (b *Board) IsLegal(m Move) bool {
	return b.IsLegalSlide(m.From, m.To) && b.IsUnblockedMove(m.To, m.Spear, m.From)
}

// ApplyMove plays m for the side to move and records a winner if the
// opponent is left without a legal move.
func (b *Board) ApplyMove(m Move) error {
	if b.winner != Empty {
		return fmt.Errorf("%w: %s after %s has won", ErrIllegalMove, m, b.winner.Name())
	}
	if !b.IsLegal(m) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, b.turn.Name())
	}

	mover := b.turn
	b.layout[m.From] = Empty
	b.layout[m.To] = mover
	b.layout[m.Spear] = Spear
	b.moves = append(b.moves, m)
	b.turn = mover.Opponent()

	if !b.HasLegalMove(b.turn) {
		b.winner = mover
	}
	return nil
}

// Undo takes back the last move. It has no effect on a board without history.
func (b *Board) Undo() {
	if len(b.moves) == 0 {
		return
	}
	last := len(b.moves) - 1
	m := b.moves[last]
	b.moves = b.moves[:last]

	b.turn = b.turn.Opponent()
	b.layout[m.Spear] = Empty
	b.layout[m.To] = Empty
	b.layout[m.From] = b.turn
	b.winner = Empty
}

// Hash returns an fnv-64a hash of the layout and the side to move.
func (b *Board) Hash() uint64 {
	var buf [NumSquares + 1]byte
	for i, p := range b.layout {
		buf[i] = byte(p)
	}
	buf[NumSquares] = byte(b.turn)

	hasher := fnv.New64a()
	hasher.Write(buf[:])
	return hasher.Sum64()
}

// String renders the board from row 10 down to row 1.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Size - 1; row >= 0; row-- {
		sb.WriteString("   ")
		for col := 0; col < Size; col++ {
			sb.WriteString(b.layout[Sq(col, row)].String())
			if col != Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
