package model

import "fmt"

// Piece is the content of a single board cell
type Piece uint8

const (
	Empty Piece = iota
	Dark
	Light
)

// Opponent returns the other side's piece.
// Only Dark and Light have an opponent; anything else means the turn state is corrupt.
func (p Piece) Opponent() Piece {
	switch p {
	case Dark:
		return Light
	case Light:
		return Dark
	default:
		panic(fmt.Sprintf("model: no opponent for piece %d", p))
	}
}

// IsPlayer reports whether p is one of the two playing colors
func (p Piece) IsPlayer() bool {
	return p == Dark || p == Light
}

// Symbol returns the single-character marker used when printing boards
func (p Piece) Symbol() string {
	switch p {
	case Dark:
		return "X"
	case Light:
		return "O"
	default:
		return "_"
	}
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "Empty"
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	default:
		return fmt.Sprintf("Piece(%d)", uint8(p))
	}
}

// MarshalText encodes the piece as its board symbol
func (p Piece) MarshalText() ([]byte, error) {
	return []byte(p.Symbol()), nil
}
