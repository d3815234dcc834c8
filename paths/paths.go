// Package paths implements depth-first enumeration of minimal keypad routes.
//
// Key features:
//   - Enumerate(k, from, to, opts...): all gap-avoiding routes of Manhattan length
//   - Axis pruning: a move is explored only if it closes an open axis
//   - Hooks: OnPath per discovered route, error aborts
//   - Limit: stop after n routes
//
// Complexity:
//
//   - Time:   O(P·L) for P routes of length L.
//   - Memory: O(L) for the recursion trail, plus the returned routes.
package paths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

// errLimit stops the walk once Options.Limit routes are collected.
var errLimit = errors.New("paths: limit reached")

// walker encapsulates state during enumeration.
type walker[S keypad.Symbol] struct {
	kind   *keypad.Kind[S] // keypad being walked
	target keypad.Cell     // destination cell
	opts   Options         // enumeration options
	trail  []keypad.Dir    // moves taken so far
	out    []Path          // collected routes
}

// Enumerate returns every minimal route from key from to key to on keypad k,
// each ending in Activate. Routes are discovered with moves tried in
// Up, Down, Left, Right order, so the result is deterministic.
func Enumerate[S keypad.Symbol](k *keypad.Kind[S], from, to S, opts ...Option) ([]Path, error) {
	// 1. Validate input keypad
	if k == nil {
		return nil, ErrNilKind
	}

	// 2. Apply options
	eopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&eopts)
	}

	// 3. Verify both keys exist
	if !k.Contains(from) || !k.Contains(to) {
		return nil, fmt.Errorf("%w: %s→%s on %s keypad", ErrUnknownSymbol, from, to, k.Name())
	}

	// 4. Walk from the source; the trail never outgrows the distance
	target := k.Position(to)
	w := &walker[S]{
		kind:   k,
		target: target,
		opts:   eopts,
		trail:  make([]keypad.Dir, 0, keypad.Manhattan(k.Position(from), target)),
	}
	if err := w.walk(from); err != nil && !errors.Is(err, errLimit) {
		return nil, err
	}

	// 5. At least one route must exist
	if len(w.out) == 0 {
		return nil, fmt.Errorf("%w: %s→%s on %s keypad", ErrNoPath, from, to, k.Name())
	}

	return w.out, nil
}

// walk extends the trail from key at until the target cell is reached.
func (w *walker[S]) walk(at S) error {
	here := w.kind.Position(at)

	// 1. Arrived: record trail + Activate
	if here == w.target {
		p := make(Path, len(w.trail)+1)
		copy(p, w.trail)
		p[len(w.trail)] = keypad.Activate

		if w.opts.OnPath != nil {
			if err := w.opts.OnPath(p); err != nil {
				return fmt.Errorf("paths: OnPath hook for %s: %w", p, err)
			}
		}
		w.out = append(w.out, p)
		if w.opts.Limit > 0 && len(w.out) >= w.opts.Limit {
			return errLimit
		}

		return nil
	}

	// 2. Try each move that closes an open axis
	var d keypad.Dir
	for _, d = range keypad.Moves {
		if !w.closes(here, d) {
			continue
		}
		next, ok := w.kind.Move(at, d)
		if !ok {
			continue // edge or gap
		}
		w.trail = append(w.trail, d)
		err := w.walk(next)
		w.trail = w.trail[:len(w.trail)-1]
		if err != nil {
			return err
		}
	}

	return nil
}

// closes reports whether moving d from here reduces the distance to the
// target on d's axis.
func (w *walker[S]) closes(here keypad.Cell, d keypad.Dir) bool {
	switch d {
	case keypad.Up:
		return w.target.Row < here.Row
	case keypad.Down:
		return w.target.Row > here.Row
	case keypad.Left:
		return w.target.Col < here.Col
	case keypad.Right:
		return w.target.Col > here.Col
	}

	return false
}
