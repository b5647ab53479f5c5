package game

import (
	"fmt"
	"regexp"
	"strings"
)

// Move slides the queen on From to To and then throws a spear from To to Spear.
type Move struct {
	From  Square
	To    Square
	Spear Square
}

const squarePattern = `([a-j](?:10|[1-9]))`

// Canonical "d6-d10(j10)" form, or the space separated "d6 d10 j10" form.
var (
	movePattern       = regexp.MustCompile(`^` + squarePattern + `-` + squarePattern + `\(` + squarePattern + `\)$`)
	spacedMovePattern = regexp.MustCompile(`^` + squarePattern + `\s+` + squarePattern + `\s+` + squarePattern + `$`)
)

// NewMove returns the move from-to(spear).
func NewMove(from, to, spear Square) Move {
	return Move{From: from, To: to, Spear: spear}
}

// ParseMove parses a move designation such as "d6-d10(j10)" or "d6 d10 j10".
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	parts := movePattern.FindStringSubmatch(text)
	if parts == nil {
		parts = spacedMovePattern.FindStringSubmatch(text)
	}
	if parts == nil {
		return Move{}, fmt.Errorf("%w: move %q", ErrParse, text)
	}
	var squares [3]Square
	for i, part := range parts[1:] {
		s, err := ParseSquare(part)
		if err != nil {
			return Move{}, err
		}
		squares[i] = s
	}
	return NewMove(squares[0], squares[1], squares[2]), nil
}

// MustParseMove is ParseMove for designations known to be well formed.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Move) String() string {
	return fmt.Sprintf("%s-%s(%s)", m.From, m.To, m.Spear)
}
