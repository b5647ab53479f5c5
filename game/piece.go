package game

// Piece is the content of a square.
type Piece uint8

const (
	Empty Piece = iota
	White
	Black
	Spear
)

var pieceNames = [...]string{Empty: "-", White: "W", Black: "B", Spear: "S"}

func (p Piece) String() string {
	if int(p) >= len(pieceNames) {
		return "?"
	}
	return pieceNames[p]
}

// Opponent returns the other side. Only meaningful for White and Black.
func (p Piece) Opponent() Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	}
	return p
}

// Name returns the side's name for logs and records.
func (p Piece) Name() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	case Spear:
		return "spear"
	}
	return "empty"
}
