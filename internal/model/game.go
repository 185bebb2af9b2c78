package model

import "fmt"

// MinDimension is the smallest supported board size
const MinDimension = 4

// GameID uniquely identifies a game session
type GameID string

// Game is a single Othello match: the board, the side to move and the number of moves played.
// It is not safe for concurrent use; one caller drives it at a time.
type Game struct {
	board     *Board
	turn      Piece
	moveCount int
}

// NewGame creates a game on a dimension x dimension board with the four
// centre cells filled diagonally and Dark to move.
func NewGame(dimension int) (*Game, error) {
	if dimension < MinDimension {
		return nil, fmt.Errorf("%w: %d is not big enough, needs to be at least %d", ErrInvalidDimension, dimension, MinDimension)
	}
	if dimension%2 != 0 {
		return nil, fmt.Errorf("%w: %d, dimension must be even", ErrInvalidDimension, dimension)
	}

	board := NewBoard(dimension)
	midSmall := dimension/2 - 1
	midLarge := dimension / 2
	board.Set(Position{Col: midSmall, Row: midSmall}, Dark)
	board.Set(Position{Col: midLarge, Row: midSmall}, Light)
	board.Set(Position{Col: midSmall, Row: midLarge}, Light)
	board.Set(Position{Col: midLarge, Row: midLarge}, Dark)

	return &Game{
		board: board,
		turn:  Dark,
	}, nil
}

// Size returns the board dimension
func (g *Game) Size() int {
	return g.board.Size
}

// Turn returns the piece of the side to move
func (g *Game) Turn() Piece {
	return g.turn
}

// MoveCount returns the number of moves applied so far
func (g *Game) MoveCount() int {
	return g.moveCount
}

// Cell returns the piece at (col, row), or Empty when off the board
func (g *Game) Cell(col, row int) Piece {
	return g.board.Get(Position{Col: col, Row: row})
}

// Board returns a copy of the grid for rendering
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Clone returns an independent copy of the game
func (g *Game) Clone() *Game {
	return &Game{
		board:     g.board.Clone(),
		turn:      g.turn,
		moveCount: g.moveCount,
	}
}

// CountPieces returns how many cells hold the given piece
func (g *Game) CountPieces(piece Piece) int {
	return g.board.Count(piece)
}

// IsLegalMove reports whether the side to move may play at (col, row).
// Any input is accepted; off-board and occupied cells are simply illegal.
func (g *Game) IsLegalMove(col, row int) bool {
	pos := Position{Col: col, Row: row}
	if !g.board.IsValidPosition(pos) || !g.board.IsEmpty(pos) {
		return false
	}
	for _, dir := range Directions {
		if g.captureLength(pos, dir) > 0 {
			return true
		}
	}
	return false
}

// Captures returns the opponent cells that playing at (col, row) would flip,
// in direction order. It returns nil for an illegal move.
func (g *Game) Captures(col, row int) []Position {
	if !g.IsLegalMove(col, row) {
		return nil
	}

	origin := Position{Col: col, Row: row}
	var captured []Position
	for _, dir := range Directions {
		pos := origin
		for n := g.captureLength(origin, dir); n > 0; n-- {
			pos = pos.Step(dir)
			captured = append(captured, pos)
		}
	}
	return captured
}

// ApplyMove plays the side to move at (col, row). An illegal move leaves the
// game untouched and returns false.
func (g *Game) ApplyMove(col, row int) bool {
	captured := g.Captures(col, row)
	if len(captured) == 0 {
		return false
	}

	opponent := g.turn.Opponent()
	for _, pos := range captured {
		if g.board.Get(pos) != opponent {
			panic(fmt.Sprintf("model: flipping %v at (%d,%d) which holds %v", opponent, pos.Col, pos.Row, g.board.Get(pos)))
		}
		g.board.Set(pos, g.turn)
	}
	g.board.Set(Position{Col: col, Row: row}, g.turn)

	g.moveCount++
	g.turn = g.turn.Opponent()
	return true
}

// LegalMoves returns every legal move for the side to move, row by row
func (g *Game) LegalMoves() []Position {
	moves := []Position{}
	for row := 0; row < g.board.Size; row++ {
		for col := 0; col < g.board.Size; col++ {
			if g.IsLegalMove(col, row) {
				moves = append(moves, Position{Col: col, Row: row})
			}
		}
	}
	return moves
}

// IsTerminal reports whether the side to move has no legal move.
// There is no pass: the game ends as soon as the current player is stuck,
// whatever the opponent could still do.
func (g *Game) IsTerminal() bool {
	return len(g.LegalMoves()) == 0
}

// captureLength scans from pos in direction dir and returns the length of the
// opponent run closed by a piece of the side to move, or 0 when nothing is captured.
func (g *Game) captureLength(pos Position, dir Direction) int {
	if dir.DCol == 0 && dir.DRow == 0 {
		panic("model: zero scan direction")
	}

	run := 0
	for cur := pos.Step(dir); g.board.IsValidPosition(cur); cur = cur.Step(dir) {
		switch g.board.Get(cur) {
		case Empty:
			return 0
		case g.turn:
			return run
		default:
			run++
		}
	}
	return 0
}
