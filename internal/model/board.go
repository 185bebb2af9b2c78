package model

// Position identifies a cell on the board
type Position struct {
	Col int `json:"col"` // 0-indexed from left
	Row int `json:"row"` // 0-indexed from top
}

// Direction is a unit step between neighbouring cells
type Direction struct {
	DCol int
	DRow int
}

// Directions are the eight scan directions: the four axes, then the four diagonals
var Directions = [8]Direction{
	{DCol: 0, DRow: -1},
	{DCol: 0, DRow: 1},
	{DCol: -1, DRow: 0},
	{DCol: 1, DRow: 0},
	{DCol: -1, DRow: -1},
	{DCol: 1, DRow: -1},
	{DCol: -1, DRow: 1},
	{DCol: 1, DRow: 1},
}

// Step returns the neighbouring position in direction d
func (p Position) Step(d Direction) Position {
	return Position{Col: p.Col + d.DCol, Row: p.Row + d.DRow}
}

// Board is a square grid of pieces
type Board struct {
	Size  int       // Grid dimension (e.g., 8 for 8x8)
	Cells [][]Piece // Row-major: Cells[row][col]
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	cells := make([][]Piece, size)
	for i := range cells {
		cells[i] = make([]Piece, size)
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}
}

// Get returns the piece at the given position, or Empty if out of bounds
func (b *Board) Get(pos Position) Piece {
	if !b.IsValidPosition(pos) {
		return Empty
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set places a piece at the given position
func (b *Board) Set(pos Position, piece Piece) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = piece
	}
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == Empty
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// Count returns the number of cells holding the given piece
func (b *Board) Count(piece Piece) int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] == piece {
				count++
			}
		}
	}
	return count
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	return b.Count(Empty)
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	clone := NewBoard(b.Size)
	for row := range b.Cells {
		copy(clone.Cells[row], b.Cells[row])
	}
	return clone
}
