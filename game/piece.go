package game

import "github.com/gdamore/tcell/v2"

// Kind identifies one of the seven standard tetromino shapes
type Kind int

const (
	KindO Kind = iota
	KindI
	KindS
	KindZ
	KindL
	KindJ
	KindT
)

// Kinds lists every tetromino kind, used to fill the piece bag
var Kinds = []Kind{KindO, KindI, KindS, KindZ, KindL, KindJ, KindT}

func (k Kind) String() string {
	switch k {
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindT:
		return "T"
	}
	return "?"
}

// Direction selects the rotation sense for Piece.Rotate
type Direction int

const (
	RotateLeft Direction = iota
	RotateRight
)

// shapeTable holds the canonical spawn orientation for each kind.
// Shapes are square matrices so in-place ring rotation applies to all.
var shapeTable = map[Kind][][]uint8{
	KindO: {
		{1, 1},
		{1, 1},
	},
	KindI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	KindS: {
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	},
	KindZ: {
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	},
	KindL: {
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
	},
	KindJ: {
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	KindT: {
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
}

// colorTable maps each kind to its guideline color
var colorTable = map[Kind]tcell.Color{
	KindO: tcell.ColorYellow,
	KindI: tcell.ColorAqua,
	KindS: tcell.ColorGreen,
	KindZ: tcell.ColorRed,
	KindL: tcell.ColorOrange,
	KindJ: tcell.ColorBlue,
	KindT: tcell.ColorPurple,
}

// Piece is an N×N occupancy matrix plus a color. Pieces are value types:
// Clone before any speculative mutation, never share one by reference.
type Piece struct {
	Kind  Kind
	Color tcell.Color
	shape [][]uint8
}

// NewPiece constructs kind k in its spawn orientation
func NewPiece(k Kind) Piece {
	src := shapeTable[k]
	shape := make([][]uint8, len(src))
	for i, row := range src {
		shape[i] = make([]uint8, len(row))
		copy(shape[i], row)
	}
	return Piece{Kind: k, Color: colorTable[k], shape: shape}
}

// Size returns the side length of the shape matrix
func (p *Piece) Size() int {
	return len(p.shape)
}

// Clone returns a deep copy safe to mutate independently
func (p *Piece) Clone() Piece {
	c := Piece{Kind: p.Kind, Color: p.Color, shape: make([][]uint8, len(p.shape))}
	for i, row := range p.shape {
		c.shape[i] = make([]uint8, len(row))
		copy(c.shape[i], row)
	}
	return c
}

// Rotate turns the shape matrix 90° in place using layer-by-layer
// four-way swaps, so no auxiliary grid is allocated. Equivalent to
// transpose+reverse for every matrix size.
func (p *Piece) Rotate(dir Direction) {
	size := len(p.shape)
	for row := 0; row < size/2; row++ {
		for col := row; col < size-row-1; col++ {
			t := p.shape[row][col]
			switch dir {
			case RotateLeft:
				p.shape[row][col] = p.shape[col][size-row-1]
				p.shape[col][size-row-1] = p.shape[size-row-1][size-col-1]
				p.shape[size-row-1][size-col-1] = p.shape[size-col-1][row]
				p.shape[size-col-1][row] = t
			case RotateRight:
				p.shape[row][col] = p.shape[size-col-1][row]
				p.shape[size-col-1][row] = p.shape[size-row-1][size-col-1]
				p.shape[size-row-1][size-col-1] = p.shape[col][size-row-1]
				p.shape[col][size-row-1] = t
			}
		}
	}
}

// EachCell calls fn for every filled cell in row-major order. Consumers
// are order-independent but the traversal is deterministic for tests.
func (p *Piece) EachCell(fn func(row, col int)) {
	for row := range p.shape {
		for col := range p.shape[row] {
			if p.shape[row][col] != 0 {
				fn(row, col)
			}
		}
	}
}
