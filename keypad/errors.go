package keypad

import "errors"

var (
	// ErrUnknownSymbol indicates a symbol that does not belong to the keypad's alphabet.
	ErrUnknownSymbol = errors.New("keypad: symbol not on keypad")
	// ErrInvalidSymbol indicates a code character outside 0-9 and A.
	ErrInvalidSymbol = errors.New("keypad: invalid code symbol")
	// ErrEmptyCode indicates an empty code string.
	ErrEmptyCode = errors.New("keypad: code is empty")
	// ErrValueOverflow indicates a code whose digits exceed the int64 range.
	ErrValueOverflow = errors.New("keypad: code value overflows int64")

	// ErrDuplicateCell indicates two symbols mapped onto the same cell.
	ErrDuplicateCell = errors.New("keypad: two symbols share a cell")
	// ErrGapOccupied indicates a symbol placed on the gap cell.
	ErrGapOccupied = errors.New("keypad: symbol placed on gap cell")
	// ErrOutOfBounds indicates a cell outside the keypad dimensions.
	ErrOutOfBounds = errors.New("keypad: cell out of bounds")
	// ErrIncompleteLayout indicates a non-gap cell with no symbol on it.
	ErrIncompleteLayout = errors.New("keypad: layout leaves a non-gap cell empty")
	// ErrAdjacencyMismatch indicates an adjacency entry that disagrees with cell positions.
	ErrAdjacencyMismatch = errors.New("keypad: adjacency disagrees with layout")
)
