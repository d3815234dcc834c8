package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validLine is a 1×3 directional strip: gap, Up, Activate.
func validLine() layout[Dir] {
	return layout[Dir]{
		name:  "line",
		rows:  1,
		cols:  3,
		gap:   Cell{0, 0},
		home:  Activate,
		keys:  []Dir{Up, Activate},
		cells: map[Dir]Cell{Up: {0, 1}, Activate: {0, 2}},
		neighbours: map[Dir]map[Dir]Dir{
			Up:       {Right: Activate},
			Activate: {Left: Up},
		},
	}
}

func TestNewKind_Valid(t *testing.T) {
	k, err := newKind(validLine())
	require.NoError(t, err)
	to, ok := k.Move(Up, Right)
	assert.True(t, ok)
	assert.Equal(t, Activate, to)
	_, ok = k.Move(Up, Left)
	assert.False(t, ok)
}

func TestNewKind_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(l *layout[Dir])
		err    error
	}{
		{"GapOutOfBounds", func(l *layout[Dir]) { l.gap = Cell{2, 0} }, ErrOutOfBounds},
		{"KeyWithoutCell", func(l *layout[Dir]) { delete(l.cells, Up) }, ErrUnknownSymbol},
		{"KeyOutOfBounds", func(l *layout[Dir]) { l.cells[Up] = Cell{0, 5} }, ErrOutOfBounds},
		{"KeyOnGap", func(l *layout[Dir]) { l.cells[Up] = Cell{0, 0} }, ErrGapOccupied},
		{"SharedCell", func(l *layout[Dir]) { l.cells[Up] = Cell{0, 2} }, ErrDuplicateCell},
		{"EmptyCell", func(l *layout[Dir]) { l.cols = 4 }, ErrIncompleteLayout},
		{"HomeMissing", func(l *layout[Dir]) { l.home = Down }, ErrUnknownSymbol},
		{"WrongNeighbour", func(l *layout[Dir]) { l.neighbours[Up] = map[Dir]Dir{Left: Activate} }, ErrAdjacencyMismatch},
		{"ActivateNeighbour", func(l *layout[Dir]) { l.neighbours[Up][Activate] = Up }, ErrAdjacencyMismatch},
		{"MissingNeighbour", func(l *layout[Dir]) { l.neighbours[Activate] = map[Dir]Dir{} }, ErrAdjacencyMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := validLine()
			tc.mutate(&l)
			k, err := newKind(l)
			assert.Nil(t, k)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMustKind_Panics(t *testing.T) {
	l := validLine()
	l.cells[Up] = Cell{0, 0}
	assert.Panics(t, func() { mustKind(l) })
}
