package game

import "errors"

var (
	// ErrOutOfRange occurs when a square is built from coordinates off the board
	ErrOutOfRange = errors.New("square is out of range")
	// ErrParse occurs when a square or move designation is malformed
	ErrParse = errors.New("malformed designation")
	// ErrIllegalMove occurs when a move fails the legality checks of the board
	ErrIllegalMove = errors.New("illegal move")
)
