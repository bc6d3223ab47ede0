package piece

import "image/color"

//go:generate go tool stringer -type=Kind

// Kind identifies one of the seven piece shapes. The zero value None marks an
// empty grid cell.
type Kind uint8

const (
	None Kind = iota
	I
	J
	L
	O
	S
	T
	Z
)

// Kinds lists every playable kind in catalog order.
var Kinds = [...]Kind{I, J, L, O, S, T, Z}

// Count is the number of playable kinds.
const Count = len(Kinds)

var colors = [...]color.RGBA{
	None: {0, 0, 0, 0},
	I:    {0, 186, 249, 255},
	J:    {0, 101, 189, 255},
	L:    {255, 140, 0, 255},
	O:    {255, 213, 0, 255},
	S:    {120, 190, 33, 255},
	T:    {149, 45, 137, 255},
	Z:    {226, 37, 48, 255},
}

// Valid reports whether k is a playable kind.
func (k Kind) Valid() bool {
	return k >= I && k <= Z
}

// Color returns the fill color for cells of this kind. None is transparent.
func (k Kind) Color() color.RGBA {
	if int(k) >= len(colors) {
		return colors[None]
	}
	return colors[k]
}
