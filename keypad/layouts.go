package keypad

// Numeric is the door keypad: digits 0-9 and A, gap at the bottom-left.
var Numeric = mustKind(layout[Num]{
	name: "numeric",
	rows: 4,
	cols: 3,
	gap:  Cell{Row: 3, Col: 0},
	home: NumActivate,
	keys: []Num{Num0, Num1, Num2, Num3, Num4, Num5, Num6, Num7, Num8, Num9, NumActivate},
	cells: map[Num]Cell{
		Num7: {0, 0}, Num8: {0, 1}, Num9: {0, 2},
		Num4: {1, 0}, Num5: {1, 1}, Num6: {1, 2},
		Num1: {2, 0}, Num2: {2, 1}, Num3: {2, 2},
		Num0: {3, 1}, NumActivate: {3, 2},
	},
	neighbours: map[Num]map[Dir]Num{
		Num7:        {Right: Num8, Down: Num4},
		Num8:        {Left: Num7, Right: Num9, Down: Num5},
		Num9:        {Left: Num8, Down: Num6},
		Num4:        {Up: Num7, Right: Num5, Down: Num1},
		Num5:        {Up: Num8, Left: Num4, Right: Num6, Down: Num2},
		Num6:        {Up: Num9, Left: Num5, Down: Num3},
		Num1:        {Up: Num4, Right: Num2},
		Num2:        {Up: Num5, Left: Num1, Right: Num3, Down: Num0},
		Num3:        {Up: Num6, Left: Num2, Down: NumActivate},
		Num0:        {Up: Num2, Right: NumActivate},
		NumActivate: {Up: Num3, Left: Num0},
	},
})

// Directional is the robot control keypad: four arrows and A, gap at the top-left.
var Directional = mustKind(layout[Dir]{
	name: "directional",
	rows: 2,
	cols: 3,
	gap:  Cell{Row: 0, Col: 0},
	home: Activate,
	keys: []Dir{Up, Down, Left, Right, Activate},
	cells: map[Dir]Cell{
		Up: {0, 1}, Activate: {0, 2},
		Left: {1, 0}, Down: {1, 1}, Right: {1, 2},
	},
	neighbours: map[Dir]map[Dir]Dir{
		Up:       {Right: Activate, Down: Down},
		Activate: {Left: Up, Down: Right},
		Left:     {Right: Down},
		Down:     {Up: Up, Left: Left, Right: Right},
		Right:    {Up: Activate, Left: Down},
	},
})
