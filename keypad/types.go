// Package keypad defines the symbol alphabets, grid cells and the Kind type
// shared by both keypad layouts.
package keypad

// Num is a key on the numeric keypad.
type Num uint8

const (
	Num0 Num = iota
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
	// NumActivate is the numeric keypad's A key and its resting position.
	NumActivate
)

var numNames = [...]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "A"}

// String renders the key as printed on the keypad.
func (n Num) String() string {
	if int(n) < len(numNames) {
		return numNames[n]
	}

	return "?"
}

// Digit returns the decimal value of a digit key; false for NumActivate.
func (n Num) Digit() (int, bool) {
	if n > Num9 {
		return 0, false
	}

	return int(n), true
}

// Dir is a key on the directional keypad. The four arrows double as the
// finger moves a robot can make on the keypad it operates.
type Dir uint8

const (
	Up Dir = iota
	Down
	Left
	Right
	// Activate is the directional keypad's A key and its resting position.
	Activate
)

var dirNames = [...]string{"^", "v", "<", ">", "A"}

// String renders the key as printed on the keypad.
func (d Dir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}

	return "?"
}

// Moves lists the four finger moves in exploration order.
var Moves = [4]Dir{Up, Down, Left, Right}

// Delta returns the row/column offset of a finger move.
// Activate does not move the finger and returns (0, 0).
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}

	return 0, 0
}

// Symbol constrains generic code to the two keypad alphabets.
type Symbol interface {
	Num | Dir
	String() string
}

// Cell is a grid position; row 0 is the top row, column 0 the leftmost.
type Cell struct {
	Row, Col int
}

// Add returns the cell reached by moving d from c.
func (c Cell) Add(d Dir) Cell {
	dr, dc := d.Delta()

	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| between two cells.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Kind is an immutable keypad layout: an alphabet placed on a grid with
// exactly one gap cell. Kinds are built once at package init.
type Kind[S Symbol] struct {
	name       string
	rows, cols int
	gap        Cell
	home       S
	order      []S             // alphabet in declaration order
	cells      map[S]Cell      // symbol → cell (bijection onto non-gap cells)
	neighbours map[S]map[Dir]S // hand-written adjacency
	keyAt      map[Cell]S      // inverse of cells
}
