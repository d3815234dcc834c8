package keypad

import "fmt"

// layout is the hand-specified description a Kind is built from.
type layout[S Symbol] struct {
	name       string
	rows, cols int
	gap        Cell
	home       S
	keys       []S
	cells      map[S]Cell
	neighbours map[S]map[Dir]S
}

// newKind validates a layout and freezes it into a Kind.
// Checks, in order:
//  1. gap lies inside the grid;
//  2. every key has an in-bounds, non-gap, unshared cell;
//  3. keys cover every non-gap cell;
//  4. home is a key;
//  5. each adjacency entry matches the cell delta of its direction, and every
//     geometric neighbour appears in the table.
//
// Complexity: O(K) for K keys.
func newKind[S Symbol](l layout[S]) (*Kind[S], error) {
	inBounds := func(c Cell) bool {
		return c.Row >= 0 && c.Row < l.rows && c.Col >= 0 && c.Col < l.cols
	}
	if !inBounds(l.gap) {
		return nil, fmt.Errorf("%w: %s gap %v", ErrOutOfBounds, l.name, l.gap)
	}

	k := &Kind[S]{
		name:       l.name,
		rows:       l.rows,
		cols:       l.cols,
		gap:        l.gap,
		home:       l.home,
		order:      make([]S, 0, len(l.keys)),
		cells:      make(map[S]Cell, len(l.keys)),
		neighbours: make(map[S]map[Dir]S, len(l.keys)),
		keyAt:      make(map[Cell]S, len(l.keys)),
	}
	for _, s := range l.keys {
		c, ok := l.cells[s]
		if !ok {
			return nil, fmt.Errorf("%w: %s key %s has no cell", ErrUnknownSymbol, l.name, s)
		}
		if !inBounds(c) {
			return nil, fmt.Errorf("%w: %s key %s at %v", ErrOutOfBounds, l.name, s, c)
		}
		if c == l.gap {
			return nil, fmt.Errorf("%w: %s key %s", ErrGapOccupied, l.name, s)
		}
		if other, dup := k.keyAt[c]; dup {
			return nil, fmt.Errorf("%w: %s keys %s and %s at %v", ErrDuplicateCell, l.name, other, s, c)
		}
		k.order = append(k.order, s)
		k.cells[s] = c
		k.keyAt[c] = s
	}
	if len(k.keyAt) != l.rows*l.cols-1 {
		return nil, fmt.Errorf("%w: %s has %d keys for %d cells", ErrIncompleteLayout, l.name, len(k.keyAt), l.rows*l.cols-1)
	}
	if _, ok := k.cells[l.home]; !ok {
		return nil, fmt.Errorf("%w: %s home %s", ErrUnknownSymbol, l.name, l.home)
	}

	for _, s := range k.order {
		from := k.cells[s]
		row := make(map[Dir]S, len(Moves))
		for d, to := range l.neighbours[s] {
			want, ok := k.keyAt[from.Add(d)]
			if d == Activate || !ok || want != to {
				return nil, fmt.Errorf("%w: %s %s%s=%s", ErrAdjacencyMismatch, l.name, s, d, to)
			}
			row[d] = to
		}
		for _, d := range Moves {
			if want, ok := k.keyAt[from.Add(d)]; ok {
				if _, listed := row[d]; !listed {
					return nil, fmt.Errorf("%w: %s %s%s=%s missing", ErrAdjacencyMismatch, l.name, s, d, want)
				}
			}
		}
		k.neighbours[s] = row
	}

	return k, nil
}

// mustKind is newKind for the package-level layouts; a failure means the
// tables in layouts.go are corrupted.
func mustKind[S Symbol](l layout[S]) *Kind[S] {
	k, err := newKind(l)
	if err != nil {
		panic(err)
	}

	return k
}

// Name returns the keypad's name ("numeric" or "directional").
func (k *Kind[S]) Name() string { return k.name }

// Dims returns the grid dimensions, gap included.
func (k *Kind[S]) Dims() (rows, cols int) { return k.rows, k.cols }

// Gap returns the cell that holds no key.
func (k *Kind[S]) Gap() Cell { return k.gap }

// Home returns the resting key a finger starts on (always the A key).
func (k *Kind[S]) Home() S { return k.home }

// Symbols returns the alphabet in declaration order. The slice is a copy.
func (k *Kind[S]) Symbols() []S {
	out := make([]S, len(k.order))
	copy(out, k.order)

	return out
}

// Contains reports whether s is a key on this keypad.
func (k *Kind[S]) Contains(s S) bool {
	_, ok := k.cells[s]

	return ok
}

// Position returns the cell of key s. It panics with ErrUnknownSymbol for
// a value outside the alphabet: every valid S has a cell by construction.
// Complexity: O(1).
func (k *Kind[S]) Position(s S) Cell {
	c, ok := k.cells[s]
	if !ok {
		panic(fmt.Errorf("%w: %s on %s keypad", ErrUnknownSymbol, s, k.name))
	}

	return c
}

// Move returns the key one step from s in direction d. It reports false at
// the grid edge, toward the gap, and for d == Activate.
// Complexity: O(1).
func (k *Kind[S]) Move(s S, d Dir) (S, bool) {
	to, ok := k.neighbours[s][d]

	return to, ok
}

// KeyAt returns the key on cell c; false for the gap and out-of-bounds cells.
func (k *Kind[S]) KeyAt(c Cell) (S, bool) {
	s, ok := k.keyAt[c]

	return s, ok
}
