package piece

import "strings"

// Matrix is one rotation state: a square occupancy grid indexed [row][col].
type Matrix [][]bool

// Size returns the side length of the matrix.
func (m Matrix) Size() int {
	return len(m)
}

// Rotate returns a copy of m turned 90 degrees clockwise.
func (m Matrix) Rotate() Matrix {
	size := len(m)
	rotated := make(Matrix, size)
	for i := range rotated {
		rotated[i] = make([]bool, size)
	}

	for i := range size {
		for j := range size {
			rotated[j][size-1-i] = m[i][j]
		}
	}

	return rotated
}

// Equal reports whether both matrices have the same occupancy.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Shape is the catalog entry for one kind. Entries are shared by every piece
// and must not be modified.
type Shape struct {
	Kind      Kind
	Rotations []Matrix
}

// seeds holds the defined rotation states of each kind. Kinds with more than
// one state are expanded to four by rotating the last one clockwise.
var seeds = map[Kind][][]string{
	I: {
		{
			"....",
			"####",
			"....",
			"....",
		},
		{
			"..#.",
			"..#.",
			"..#.",
			"..#.",
		},
	},
	J: {
		{"#..", "###", "..."},
		{".##", ".#.", ".#."},
		{"...", "###", "..#"},
		{".#.", ".#.", "##."},
	},
	L: {
		{"..#", "###", "..."},
		{".#.", ".#.", ".##"},
		{"...", "###", "#.."},
		{"##.", ".#.", ".#."},
	},
	O: {
		{"##", "##"},
	},
	S: {
		{".##", "##.", "..."},
		{".#.", ".##", "..#"},
	},
	T: {
		{".#.", "###", "..."},
		{".#.", ".##", ".#."},
		{"...", "###", ".#."},
		{".#.", "##.", ".#."},
	},
	Z: {
		{"##.", ".##", "..."},
		{"..#", ".##", ".#."},
	},
}

// catalog is built once and indexed by Kind.
var catalog = buildCatalog()

func buildCatalog() [Count + 1]*Shape {
	var shapes [Count + 1]*Shape
	for _, kind := range Kinds {
		defined := seeds[kind]
		rotations := make([]Matrix, 0, 4)
		for _, rows := range defined {
			rotations = append(rotations, parseMatrix(rows))
		}

		if len(rotations) > 1 {
			for len(rotations) < 4 {
				rotations = append(rotations, rotations[len(rotations)-1].Rotate())
			}
		}

		shapes[kind] = &Shape{Kind: kind, Rotations: rotations}
	}
	return shapes
}

func parseMatrix(rows []string) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		if len(row) != len(rows) {
			panic("piece: rotation state is not square: " + strings.Join(rows, "/"))
		}
		m[i] = make([]bool, len(row))
		for j := range row {
			m[i][j] = row[j] == '#'
		}
	}
	return m
}

// Catalog returns the shared catalog entry for kind. It panics for None or an
// out-of-range kind.
func Catalog(kind Kind) *Shape {
	if !kind.Valid() {
		panic("piece: no shape for kind " + kind.String())
	}
	return catalog[kind]
}
