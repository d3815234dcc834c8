package chain

import (
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

// Sequence expands code into one concrete optimal human press sequence.
// Its length always equals Presses(code). Expansion is refused with
// ErrSequenceTooLong once that length exceeds Options.MaxSequence, which
// happens quickly on deep chains.
func (c *Chain) Sequence(code keypad.Code) ([]keypad.Dir, error) {
	n, err := c.Presses(code)
	if err != nil {
		return nil, err
	}
	if n > int64(c.opts.MaxSequence) {
		return nil, fmt.Errorf("%w: %d presses for %s, limit %d", ErrSequenceTooLong, n, code, c.opts.MaxSequence)
	}

	out := make([]keypad.Dir, 0, n)
	prev := keypad.NumActivate
	for _, num := range code {
		if out, err = c.numeric.AppendPresses(out, prev, num); err != nil {
			return nil, err
		}
		prev = num
	}

	return out, nil
}

// Replay simulates a chain of depth directional robots driven by presses
// and returns the keys typed on the numeric keypad. Every finger starts on
// its keypad's A key.
//
// A press of an arrow moves the finger of the keypad it drives; a press of A
// presses the key under that finger, which in turn drives the next keypad up.
// Moving any finger off its keypad or onto the gap fails with ErrFingerOffPad.
func Replay(presses []keypad.Dir, depth int) (keypad.Code, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}

	// fingers[i] rests on directional layer i+1's keypad
	fingers := make([]keypad.Dir, depth)
	for i := range fingers {
		fingers[i] = keypad.Directional.Home()
	}
	num := keypad.Numeric.Home()
	var typed keypad.Code

	for i, p := range presses {
		key, level := p, depth
		for level > 0 {
			f := &fingers[level-1]
			if key != keypad.Activate {
				next, ok := keypad.Directional.Move(*f, key)
				if !ok {
					return typed, fmt.Errorf("%w: press %d moves layer %d finger %s from %s", ErrFingerOffPad, i, level, key, *f)
				}
				*f = next
				break
			}
			key = *f
			level--
		}
		if level > 0 {
			continue
		}

		// the key reached the numeric robot
		if key == keypad.Activate {
			typed = append(typed, num)
			continue
		}
		next, ok := keypad.Numeric.Move(num, key)
		if !ok {
			return typed, fmt.Errorf("%w: press %d moves numeric finger %s from %s", ErrFingerOffPad, i, key, num)
		}
		num = next
	}

	return typed, nil
}
