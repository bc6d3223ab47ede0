// Package piece defines the seven falling shapes, their rotation states and
// the 7-bag randomizer that deals them.
package piece

import "iter"

// Cell is an absolute grid coordinate. Y grows downward and is negative above
// the visible grid.
type Cell struct {
	X, Y int
}

// Piece is a shape instance with a rotation and a position. X is the left
// column of the rotation matrix and Y its top row.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int

	shape *Shape
}

// New returns a piece of kind at the origin in its first rotation state.
func New(kind Kind) *Piece {
	return &Piece{Kind: kind, shape: Catalog(kind)}
}

// Spawn returns a piece centered over cols columns with hidden rows of its
// matrix above the visible grid.
func Spawn(kind Kind, cols, hidden int) *Piece {
	p := New(kind)
	p.X = cols/2 - p.Width()/2
	p.Y = -hidden
	return p
}

// Rotations returns the number of distinct rotation states.
func (p *Piece) Rotations() int {
	return len(p.shape.Rotations)
}

// RotationAfter returns the rotation index reached by turning dr steps
// clockwise (negative is counter-clockwise).
func (p *Piece) RotationAfter(dr int) int {
	n := len(p.shape.Rotations)
	return ((p.Rotation+dr)%n + n) % n
}

// Matrix returns the current rotation state.
func (p *Piece) Matrix() Matrix {
	return p.MatrixAt(p.Rotation)
}

// MatrixAt returns the rotation state at index rot, taken modulo the number
// of states.
func (p *Piece) MatrixAt(rot int) Matrix {
	n := len(p.shape.Rotations)
	return p.shape.Rotations[(rot%n+n)%n]
}

// Width returns the column count of the current rotation state.
func (p *Piece) Width() int {
	return len(p.Matrix()[0])
}

// Cells yields the occupied cells at the current rotation and position.
func (p *Piece) Cells() iter.Seq[Cell] {
	return p.CellsAt(p.Rotation, p.X, p.Y)
}

// CellsAt yields the cells the piece would occupy in rotation rot with its
// matrix at (x, y). The piece itself is not changed.
func (p *Piece) CellsAt(rot, x, y int) iter.Seq[Cell] {
	m := p.MatrixAt(rot)
	return func(yield func(Cell) bool) {
		for r, row := range m {
			for c, occupied := range row {
				if !occupied {
					continue
				}
				if !yield(Cell{X: x + c, Y: y + r}) {
					return
				}
			}
		}
	}
}

// Clone returns an independent copy sharing the same catalog entry.
func (p *Piece) Clone() *Piece {
	cp := *p
	return &cp
}
