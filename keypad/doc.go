// Package keypad describes the two fixed keypad layouts a door-code robot
// chain operates: the numeric keypad and the directional keypad.
//
// What:
//
//   - Num and Dir are the two closed symbol alphabets. They never mix:
//     generic code is constrained by Symbol, which admits exactly these two.
//   - Kind[S] binds an alphabet to a 2-D grid, with one gap cell that holds
//     no key and must never be visited by a finger.
//   - Position and Move answer "where is this key" and "which key lies in
//     this direction", from hand-written tables validated once at init.
//   - ParseCode turns a door code such as "029A" into a Code.
//
// Layouts:
//
//	Numeric           Directional
//	+---+---+---+         +---+---+
//	| 7 | 8 | 9 |         | ^ | A |
//	+---+---+---+     +---+---+---+
//	| 4 | 5 | 6 |     | < | v | > |
//	+---+---+---+     +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Complexity:
//
//   - Position, Move, Contains: O(1) map lookups.
//   - ParseCode: O(n) for a code of n characters.
//
// Errors:
//
//   - ErrUnknownSymbol: symbol is not part of the keypad's alphabet (panic in Position).
//   - ErrInvalidSymbol: ParseCode met a character outside 0-9 and A.
//   - ErrEmptyCode: ParseCode was given an empty string.
//   - ErrDuplicateCell, ErrGapOccupied, ErrOutOfBounds, ErrAdjacencyMismatch:
//     layout table is corrupted; raised as a panic while building a Kind.
package keypad
