package game

import (
	"fmt"
	"iter"
	"strconv"
)

// Size is the number of squares on a side of the board.
const Size = 10

// NumSquares is the number of squares on the board.
const NumSquares = Size * Size

// Square identifies one cell of the board by its dense index col*Size+row.
// Index 0 is a1 (lower-left) and index 99 is j10. Squares are plain values,
// so == compares identity and lookups never allocate.
type Square int

// NoSquare stands for "no such square" (off the board, or no square to ignore).
const NoSquare Square = -1

// Direction is one of the 8 compass directions, clockwise from north.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NumDirections is the number of queen-move directions.
const NumDirections = 8

// deltas[d] = (dcol, drow) for one step in direction d.
var deltas = [NumDirections][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "?"
	}
	return directionNames[d]
}

// Pre-built once: names and rays of every square. Read-only after init, so
// they are safe for concurrent use.
var (
	squareNames [NumSquares]string
	// rays[s][d] lists the squares 1, 2, ... steps from s in direction d.
	rays [NumSquares][NumDirections][]Square
)

func init() {
	for i := 0; i < NumSquares; i++ {
		col, row := i/Size, i%Size
		squareNames[i] = string(rune('a'+col)) + strconv.Itoa(row+1)
		for d := Direction(0); d < NumDirections; d++ {
			var ray []Square
			c, r := col+deltas[d][0], row+deltas[d][1]
			for Exists(c, r) {
				ray = append(ray, Square(c*Size+r))
				c, r = c+deltas[d][0], r+deltas[d][1]
			}
			rays[i][d] = ray
		}
	}
}

// Exists reports whether (col, row) lies on the board.
func Exists(col, row int) bool {
	return col >= 0 && row >= 0 && col < Size && row < Size
}

// SquareAt returns the square at (col, row).
func SquareAt(col, row int) (Square, error) {
	if !Exists(col, row) {
		return NoSquare, fmt.Errorf("%w: col %d row %d", ErrOutOfRange, col, row)
	}
	return Square(col*Size + row), nil
}

// SquareIndex returns the square with the given dense index.
func SquareIndex(index int) (Square, error) {
	if index < 0 || index >= NumSquares {
		return NoSquare, fmt.Errorf("%w: index %d", ErrOutOfRange, index)
	}
	return Square(index), nil
}

// Sq is SquareAt for coordinates known to be valid. It panics otherwise.
func Sq(col, row int) Square {
	s, err := SquareAt(col, row)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSquare parses the standard designation of a square, e.g. "a1" or "j10".
func ParseSquare(text string) (Square, error) {
	if len(text) < 2 || len(text) > 3 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrParse, text)
	}
	col := int(text[0]) - 'a'
	if col < 0 || col >= Size {
		return NoSquare, fmt.Errorf("%w: square %q has bad column", ErrParse, text)
	}
	row := 0
	for i, c := range text[1:] {
		if c < '0' || c > '9' || (i == 0 && c == '0') {
			return NoSquare, fmt.Errorf("%w: square %q has bad row", ErrParse, text)
		}
		row = row*10 + int(c-'0')
	}
	if row < 1 || row > Size {
		return NoSquare, fmt.Errorf("%w: square %q has bad row", ErrParse, text)
	}
	return Square(col*Size + row - 1), nil
}

// AllSquares yields every square in increasing index order.
func AllSquares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for i := Square(0); i < NumSquares; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func (s Square) Col() int   { return int(s) / Size }
func (s Square) Row() int   { return int(s) % Size }
func (s Square) Index() int { return int(s) }

func (s Square) String() string {
	if s < 0 || s >= NumSquares {
		return "--"
	}
	return squareNames[s]
}

// IsQueenMove reports whether s and to differ and share a row, column or diagonal.
func (s Square) IsQueenMove(to Square) bool {
	if s == to || s < 0 || to < 0 || s >= NumSquares || to >= NumSquares {
		return false
	}
	dc := abs(to.Col() - s.Col())
	dr := abs(to.Row() - s.Row())
	return dc == 0 || dr == 0 || dc == dr
}

// Direction returns the direction of the queen move s-to.
// It panics unless s.IsQueenMove(to).
func (s Square) Direction(to Square) Direction {
	if !s.IsQueenMove(to) {
		panic(fmt.Sprintf("%s-%s is not a queen move", s, to))
	}
	dc := sign(to.Col() - s.Col())
	dr := sign(to.Row() - s.Row())
	for d := Direction(0); d < NumDirections; d++ {
		if deltas[d][0] == dc && deltas[d][1] == dr {
			return d
		}
	}
	panic("unreachable direction")
}

// QueenMove returns the square steps (>= 1) away from s in direction dir.
// ok is false if that square is off the board.
func (s Square) QueenMove(dir Direction, steps int) (Square, bool) {
	if s < 0 || s >= NumSquares || dir < 0 || dir >= NumDirections || steps < 1 {
		return NoSquare, false
	}
	ray := rays[s][dir]
	if steps > len(ray) {
		return NoSquare, false
	}
	return ray[steps-1], true
}

// ray returns the pre-built squares from s outward in direction dir.
func (s Square) ray(dir Direction) []Square {
	return rays[s][dir]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
