package keypad

import (
	"fmt"
	"math"
	"strings"
)

// Code is a door code: the numeric keys to press, in order. Typing always
// starts with the finger resting on NumActivate.
type Code []Num

// ParseCode maps a code string such as "029A" onto numeric keys.
// Only the characters 0-9 and A are accepted.
func ParseCode(s string) (Code, error) {
	if s == "" {
		return nil, ErrEmptyCode
	}
	code := make(Code, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			code = append(code, Num(ch-'0'))
		case ch == 'A':
			code = append(code, NumActivate)
		default:
			return nil, fmt.Errorf("%w: %q at offset %d in %q", ErrInvalidSymbol, ch, i, s)
		}
	}

	return code, nil
}

// MustParseCode is ParseCode for literals known to be valid; it panics on error.
func MustParseCode(s string) Code {
	code, err := ParseCode(s)
	if err != nil {
		panic(err)
	}

	return code
}

// Value reads the code's digits as a base-10 number, skipping A keys.
// "029A" has value 29 and "12A34A" has value 1234. A value beyond the int64
// range fails with ErrValueOverflow.
func (c Code) Value() (int64, error) {
	var v int64
	for _, n := range c {
		d, ok := n.Digit()
		if !ok {
			continue
		}
		if v > (math.MaxInt64-int64(d))/10 {
			return 0, fmt.Errorf("%w: %s", ErrValueOverflow, c)
		}
		v = v*10 + int64(d)
	}

	return v, nil
}

// String renders the code as typed, e.g. "029A".
func (c Code) String() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, n := range c {
		b.WriteString(n.String())
	}

	return b.String()
}
